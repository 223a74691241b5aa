package cli

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/kiranj/helloguys/internal/cli/formatter"
)

// modelCatalog lists the selectable backend models. Only one is live
// today; the rest are kept visible so the picker shows what's coming.
var modelCatalog = []struct {
	ID     string
	Label  string
	Active bool
}{
	{ID: "gemini-1.5-flash", Label: "Gemini 1.5 Flash (fast, recommended)", Active: true},
	{ID: "gemini-1.5-pro", Label: "Gemini 1.5 Pro (coming soon)", Active: false},
	{ID: "gemini-2.0-flash", Label: "Gemini 2.0 Flash (coming soon)", Active: false},
}

// helloguysHuhTheme returns a custom huh theme using the Gruvbox palette.
func helloguysHuhTheme() *huh.Theme {
	t := huh.ThemeBase()

	// Focused state: orange accent
	t.Focused.Title = lipgloss.NewStyle().Foreground(formatter.ColorHeader).Bold(true)
	t.Focused.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorGreen)
	t.Focused.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.FocusedButton = lipgloss.NewStyle().Foreground(formatter.ColorFg).Background(formatter.ColorHeader).Padding(0, 1)
	t.Focused.BlurredButton = lipgloss.NewStyle().Foreground(formatter.ColorDim).Padding(0, 1)
	t.Focused.TextInput.Cursor = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.TextInput.Placeholder = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Focused.Description = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	// Blurred state: dimmed
	t.Blurred.Title = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	return t
}

func validateVoiceLevel(s string) error {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || v < 0.5 || v > 2.0 {
		return fmt.Errorf("enter a number between 0.5 and 2.0")
	}
	return nil
}

func newSetupCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "setup",
		Short: "Configure backend access, theme, and voice preferences",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			settings, err := app.Settings.Get(ctx)
			if err != nil {
				return err
			}

			apiKey := ""
			model := settings.Model
			theme := settings.Theme
			voiceEnabled := settings.VoiceEnabled
			voiceRate := strconv.FormatFloat(settings.VoiceRate, 'f', -1, 64)
			voicePitch := strconv.FormatFloat(settings.VoicePitch, 'f', -1, 64)

			modelOptions := make([]huh.Option[string], 0, len(modelCatalog))
			for _, m := range modelCatalog {
				modelOptions = append(modelOptions, huh.NewOption(m.Label, m.ID))
			}
			themeOptions := make([]huh.Option[string], 0, len(themes))
			for _, t := range themes {
				themeOptions = append(themeOptions, huh.NewOption(t.Name+" — "+t.Tagline, t.Name))
			}

			form := huh.NewForm(
				huh.NewGroup(
					huh.NewInput().
						Title("Gemini API key").
						Description("Leave blank to keep the current configuration. The key is never stored on disk.").
						EchoMode(huh.EchoModePassword).
						Value(&apiKey),
					huh.NewSelect[string]().
						Title("Model").
						Options(modelOptions...).
						Validate(func(id string) error {
							for _, m := range modelCatalog {
								if m.ID == id && m.Active {
									return nil
								}
							}
							return fmt.Errorf("that model is not available yet")
						}).
						Value(&model),
				),
				huh.NewGroup(
					huh.NewSelect[string]().
						Title("Theme").
						Options(themeOptions...).
						Value(&theme),
					huh.NewConfirm().
						Title("Enable voice replies?").
						Description("Reads assistant replies aloud when a speech engine is configured.").
						Value(&voiceEnabled),
					huh.NewInput().
						Title("Voice rate").
						Description("Playback speed, 0.5 to 2.0.").
						Validate(validateVoiceLevel).
						Value(&voiceRate),
					huh.NewInput().
						Title("Voice pitch").
						Description("Voice pitch, 0.5 to 2.0.").
						Validate(validateVoiceLevel).
						Value(&voicePitch),
				),
			).WithTheme(helloguysHuhTheme()).WithShowHelp(false)

			if err := form.Run(); err != nil {
				return err
			}

			settings.Model = model
			settings.Theme = theme
			settings.VoiceEnabled = voiceEnabled
			if rate, err := strconv.ParseFloat(voiceRate, 64); err == nil {
				settings.VoiceRate = rate
			}
			if pitch, err := strconv.ParseFloat(voicePitch, 64); err == nil {
				settings.VoicePitch = pitch
			}
			if apiKey != "" {
				settings.APIKeyConfigured = true
			}
			if err := app.Settings.Update(ctx, settings); err != nil {
				return err
			}

			cmd.Println(formatter.StyleGreen.Render("✓ preferences saved"))
			if apiKey != "" {
				cmd.Println(formatter.Dim("API keys are read from the environment. Add this to your shell profile:"))
				cmd.Println(formatter.Bold("  export HELLOGUYS_API_KEY=<your key>"))
			}
			return nil
		},
	}
}
