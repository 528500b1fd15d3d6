// cmd/client/cmd/workout/browse.go
package workout

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
)

var BrowseCmd = &cobra.Command{
	Use:   "browse",
	Short: "Browse workouts interactively",
	Long: `Page through the journal interactively.

Commands:
  n        next page
  p        previous page
  g N      go to page N
  s        show statistics
  l        back to the list
  q        quit`,
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := appFrom(cmd)
		if err != nil {
			return err
		}

		session := app.Session()
		ctx := cmd.Context()

		if _, err := session.LoadPage(ctx, 1); err != nil {
			return fmt.Errorf("load page: %w", err)
		}

		scanner := bufio.NewScanner(os.Stdin)
		for {
			fmt.Print("> ")
			if !scanner.Scan() {
				return scanner.Err()
			}

			input := strings.Fields(strings.TrimSpace(scanner.Text()))
			if len(input) == 0 {
				continue
			}

			switch input[0] {
			case "n":
				if _, err := session.LoadPage(ctx, session.CurrentPage()+1); err != nil {
					fmt.Println(err)
				}
			case "p":
				if _, err := session.LoadPage(ctx, session.CurrentPage()-1); err != nil {
					fmt.Println(err)
				}
			case "g":
				if len(input) < 2 {
					fmt.Println("usage: g N")
					continue
				}
				n, err := strconv.Atoi(input[1])
				if err != nil {
					fmt.Println("usage: g N")
					continue
				}
				if _, err := session.LoadPage(ctx, n); err != nil {
					fmt.Println(err)
				}
			case "s":
				if err := session.ShowStats(ctx); err != nil {
					fmt.Println(err)
				}
			case "l":
				if err := session.ShowList(ctx); err != nil {
					fmt.Println(err)
				}
			case "q":
				return nil
			default:
				fmt.Println("commands: n, p, g N, s, l, q")
			}
		}
	},
}
