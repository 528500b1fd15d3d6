package main

import (
	"workoutlog/cmd/client/cmd"
)

func main() {
	cmd.Execute()
}
