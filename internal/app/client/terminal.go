package client

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/fatih/color"

	"workoutlog/internal/domain/workout"
)

// TerminalSurface renders to stdout and reads confirmations from stdin.
type TerminalSurface struct {
	out io.Writer
	in  *bufio.Reader

	form      workout.Workout
	formError string

	// AssumeYes skips confirmation prompts (the --yes flag).
	AssumeYes bool
}

func NewTerminalSurface() *TerminalSurface {
	return &TerminalSurface{
		out: os.Stdout,
		in:  bufio.NewReader(os.Stdin),
	}
}

func (t *TerminalSurface) RenderList(items []workout.Workout) {
	if len(items) == 0 {
		fmt.Fprintln(t.out, "No workouts on this page")
		return
	}

	w := tabwriter.NewWriter(t.out, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "ID\tDate\tExercise\tType\tDuration\tSets\tReps\tWeight\t\n")
	fmt.Fprintf(w, "---\t---\t---\t---\t---\t---\t---\t---\t\n")

	for _, item := range items {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\t%s\t%s\t\n",
			shortID(item.ID),
			item.Date,
			truncate(item.Exercise, 30),
			item.Type,
			formatNumber(item.Duration),
			formatNumber(item.Sets),
			formatNumber(item.Reps),
			formatNumber(item.Weight),
		)
	}

	w.Flush()
}

func (t *TerminalSurface) SetPager(current, total int) {
	fmt.Fprintf(t.out, "\nPage %d of %d\n", current, total)
}

func (t *TerminalSurface) Show(view View) {
	switch view {
	case ViewList:
		color.New(color.Bold).Fprintln(t.out, "== Workouts ==")
	case ViewForm:
		color.New(color.Bold).Fprintln(t.out, "== Edit workout ==")
	case ViewStats:
		color.New(color.Bold).Fprintln(t.out, "== Stats ==")
	}
}

func (t *TerminalSurface) FillForm(w workout.Workout) {
	t.form = w
}

func (t *TerminalSurface) ReadForm() workout.Workout {
	return t.form
}

func (t *TerminalSurface) ClearForm() {
	t.form = workout.Workout{}
}

func (t *TerminalSurface) SetFormError(msg string) {
	t.formError = msg
	if msg != "" {
		color.New(color.FgRed).Fprintln(t.out, msg)
	}
}

// FormError returns the current inline error text
func (t *TerminalSurface) FormError() string {
	return t.formError
}

func (t *TerminalSurface) RenderStats(stats workout.Stats) {
	w := tabwriter.NewWriter(t.out, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "Total workouts:\t%d\t\n", stats.Total)
	fmt.Fprintf(w, "Most frequent type:\t%s\t\n", stats.MostFrequent)
	fmt.Fprintf(w, "Total time (min):\t%s\t\n", formatNumber(stats.TotalDuration))
	fmt.Fprintf(w, "Total weight (Strength):\t%s\t\n", formatNumber(stats.TotalWeight))
	w.Flush()
}

func (t *TerminalSurface) Confirm(prompt string) bool {
	if t.AssumeYes {
		return true
	}

	fmt.Fprintf(t.out, "%s [y/N]: ", prompt)
	line, err := t.in.ReadString('\n')
	if err != nil {
		return false
	}

	answer := strings.ToLower(strings.TrimSpace(line))
	return answer == "y" || answer == "yes"
}

func (t *TerminalSurface) Alert(msg string) {
	color.New(color.FgRed, color.Bold).Fprintf(t.out, "Error: %s\n", msg)
}

func shortID(id string) string {
	if len(id) <= 8 {
		return id
	}
	return id[:8]
}

func truncate(s string, length int) string {
	if len(s) <= length {
		return s
	}
	return s[:length-3] + "..."
}

func formatNumber(n float64) string {
	if n == float64(int64(n)) {
		return fmt.Sprintf("%d", int64(n))
	}
	return fmt.Sprintf("%.1f", n)
}
