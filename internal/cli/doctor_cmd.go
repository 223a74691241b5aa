package cli

import (
	"github.com/spf13/cobra"

	"github.com/kiranj/helloguys/internal/cli/formatter"
	"github.com/kiranj/helloguys/internal/llm"
)

func newDoctorCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "doctor",
		Short: "Check backend connectivity and knowledge base health",
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.Println(formatter.Header("Hello Guys Doctor"))

			if app.Store != nil && app.Store.IsAvailable() {
				cmd.Printf("%s knowledge base loaded (%d entries)\n",
					formatter.StyleGreen.Render("✓"), app.Store.Size())
			} else {
				cmd.Printf("%s knowledge base is empty; replies rely on the backend and canned fallbacks\n",
					formatter.StyleYellow.Render("!"))
			}

			cmd.Printf("%s model: %s\n", formatter.Dim("·"), app.LLMConfig.Model)

			var stop func()
			if app.IsInteractive {
				stop = formatter.StartSpinner("Testing backend connection...")
			}
			result := app.Responder.TestConnection(cmd.Context())
			if stop != nil {
				stop()
			}

			style := formatter.StatusStyle(result.OK, result.Category != llm.ProbeUnconfigured)
			marker := "✗"
			if result.OK {
				marker = "✓"
			}
			cmd.Printf("%s backend %s: %s\n", style.Render(marker), string(result.Category), result.Detail)

			if !result.OK {
				cmd.Println(formatter.Dim("The chat still works: replies come from the knowledge base and canned fallbacks."))
			}
			return nil
		},
	}
}
