package cli

import "github.com/spf13/cobra"

// NewRootCmd creates the top-level "helloguys" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "helloguys",
		Short: "Friendly AI chat assistant with a local knowledge base",
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.IsInteractive {
				return runChat(cmd, app)
			}
			return cmd.Help()
		},
	}

	root.AddCommand(
		newChatCmd(app),
		newAskCmd(app),
		newKBCmd(app),
		newSetupCmd(app),
		newDoctorCmd(app),
	)

	return root
}
