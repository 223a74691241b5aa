package cli

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/kiranj/helloguys/internal/cli/formatter"
)

func newAskCmd(app *App) *cobra.Command {
	var showSources bool

	cmd := &cobra.Command{
		Use:   "ask <question>",
		Short: "Ask a one-shot question and print the reply",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			question := strings.Join(args, " ")

			if showSources && app.Responder != nil {
				app.Responder.SetShowSources(true)
			}

			var stop func()
			if app.IsInteractive {
				stop = formatter.StartSpinner("Thinking...")
			}
			exchange, err := app.Chat.Send(cmd.Context(), question)
			if stop != nil {
				stop()
			}

			cmd.Println(exchange.Assistant.Text)
			if err != nil {
				cmd.PrintErrln(formatter.Dim("(history not saved: " + err.Error() + ")"))
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&showSources, "sources", false, "show which knowledge entries informed the reply")

	return cmd
}
