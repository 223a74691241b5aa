package cli

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

func newChatCmd(app *App) *cobra.Command {
	theme := &themeValue{}

	cmd := &cobra.Command{
		Use:   "chat",
		Short: "Open the interactive chat view",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runChatWithTheme(app, theme.name)
		},
	}

	cmd.Flags().Var(theme, "theme", "visual theme for this session (overrides saved preference)")

	return cmd
}

// runChat opens the chat view with the saved theme.
func runChat(cmd *cobra.Command, app *App) error {
	return runChatWithTheme(app, "")
}

func runChatWithTheme(app *App, themeOverride string) error {
	model := newChatModel(app, themeOverride)
	_, err := tea.NewProgram(model).Run()
	return err
}
