package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/pflag"
)

// Theme is a named visual style for the chat view.
type Theme struct {
	Name      string
	Tagline   string
	Greeting  string
	Accent    lipgloss.Color
	User      lipgloss.Style
	Assistant lipgloss.Style
	Muted     lipgloss.Style
}

func makeTheme(name, tagline, greeting string, accent, user, assistant lipgloss.Color) Theme {
	return Theme{
		Name:      name,
		Tagline:   tagline,
		Greeting:  greeting,
		Accent:    accent,
		User:      lipgloss.NewStyle().Foreground(user).Bold(true),
		Assistant: lipgloss.NewStyle().Foreground(assistant),
		Muted:     lipgloss.NewStyle().Foreground(lipgloss.Color("#928374")),
	}
}

// themes is the fixed catalog, in display order. "classic" is the default.
var themes = []Theme{
	makeTheme("classic",
		"Clean and focused",
		"Hello! I'm Hello Guys, your friendly assistant. Ask me anything! 😊",
		lipgloss.Color("#fe8019"), lipgloss.Color("#83a598"), lipgloss.Color("#ebdbb2")),
	makeTheme("pastel-cute",
		"Soft colors and good vibes",
		"Hiya! ✨ So happy you're here. What shall we chat about?",
		lipgloss.Color("#f5a9b8"), lipgloss.Color("#b5e8d5"), lipgloss.Color("#f8e1f4")),
	makeTheme("sci-fi-pet",
		"Your robotic companion",
		"*beep boop* Companion unit online! How may I assist, friend? 🤖",
		lipgloss.Color("#00e5ff"), lipgloss.Color("#76ff03"), lipgloss.Color("#b3e5fc")),
	makeTheme("nature-spirit",
		"Calm forest energy",
		"Welcome, wanderer. 🌿 The grove is listening. What's on your mind?",
		lipgloss.Color("#8ec07c"), lipgloss.Color("#d8c97b"), lipgloss.Color("#c9e4ca")),
	makeTheme("electronics",
		"Circuit-board chic",
		"System ready. ⚡ Signal received loud and clear. Fire away!",
		lipgloss.Color("#ffb300"), lipgloss.Color("#40c4ff"), lipgloss.Color("#e0e0e0")),
}

// DefaultTheme returns the classic theme.
func DefaultTheme() Theme {
	return themes[0]
}

// ThemeByName looks up a theme by its name.
func ThemeByName(name string) (Theme, bool) {
	for _, t := range themes {
		if t.Name == name {
			return t, true
		}
	}
	return Theme{}, false
}

// ThemeNames returns the theme names in display order.
func ThemeNames() []string {
	names := make([]string, len(themes))
	for i, t := range themes {
		names[i] = t.Name
	}
	return names
}

// themeValue implements pflag.Value so --theme validates at parse time.
type themeValue struct {
	name string
}

var _ pflag.Value = (*themeValue)(nil)

func (v *themeValue) String() string { return v.name }

func (v *themeValue) Set(s string) error {
	if _, ok := ThemeByName(s); !ok {
		return fmt.Errorf("unknown theme %q (available: %s)", s, strings.Join(ThemeNames(), ", "))
	}
	v.name = s
	return nil
}

func (v *themeValue) Type() string { return "theme" }
