package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/kiranj/helloguys/internal/domain"
)

// chatModel is the bubbletea model for the interactive chat view.
type chatModel struct {
	app   *App
	theme Theme

	input    textinput.Model
	spin     spinner.Model
	messages []string
	waiting  bool
}

// replyMsg carries one completed chat exchange back into the update loop.
type replyMsg struct {
	reply string
	err   error
}

func newChatModel(app *App, themeOverride string) *chatModel {
	theme := DefaultTheme()
	if settings, err := app.Settings.Get(context.Background()); err == nil {
		if t, ok := ThemeByName(settings.Theme); ok {
			theme = t
		}
		if app.Responder != nil {
			app.Responder.SetShowSources(settings.ShowSources)
		}
	}
	if themeOverride != "" {
		if t, ok := ThemeByName(themeOverride); ok {
			theme = t
		}
	}

	ti := textinput.New()
	ti.Focus()
	ti.Prompt = ""
	ti.CharLimit = 4000

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(theme.Accent)

	m := &chatModel{
		app:   app,
		theme: theme,
		input: ti,
		spin:  sp,
	}
	m.messages = append(m.messages, theme.Assistant.Render(theme.Greeting))

	// Resume the recent transcript so the conversation picks up where it
	// left off.
	if history, err := app.Chat.History(context.Background(), 20); err == nil {
		for _, msg := range history {
			if msg.Role == domain.RoleUser {
				m.messages = append(m.messages, theme.User.Render("You: ")+msg.Text)
			} else {
				m.messages = append(m.messages, theme.Assistant.Render(msg.Text))
			}
		}
	}

	return m
}

func (m *chatModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *chatModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			return m, tea.Quit
		case tea.KeyEnter:
			if m.waiting {
				return m, nil
			}
			input := strings.TrimSpace(m.input.Value())
			m.input.Reset()
			if input == "" {
				return m, nil
			}
			return m.handleInput(input)
		}

	case replyMsg:
		m.waiting = false
		m.messages = append(m.messages, m.theme.Assistant.Render(msg.reply))
		if msg.err != nil {
			m.messages = append(m.messages, m.theme.Muted.Render("(history not saved: "+msg.err.Error()+")"))
		}
		return m, nil

	case spinner.TickMsg:
		if !m.waiting {
			return m, nil
		}
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *chatModel) View() string {
	var b strings.Builder

	b.WriteString(m.theme.User.Render("Hello Guys"))
	b.WriteString(m.theme.Muted.Render(" · " + m.theme.Name + " · /help for commands"))
	b.WriteString("\n\n")

	for _, msg := range m.messages {
		b.WriteString(msg)
		b.WriteString("\n")
	}

	if m.waiting {
		b.WriteString(m.spin.View())
		b.WriteString(m.theme.Muted.Render("thinking..."))
		b.WriteString("\n")
	}

	prompt := m.theme.User.Render("you") + m.theme.Muted.Render("> ")
	b.WriteString(prompt)
	b.WriteString(m.input.View())

	return b.String()
}

func (m *chatModel) handleInput(input string) (tea.Model, tea.Cmd) {
	if strings.HasPrefix(input, "/") {
		return m.handleSlashCommand(input)
	}

	m.messages = append(m.messages, m.theme.User.Render("You: ")+input)
	m.waiting = true

	send := func() tea.Msg {
		exchange, err := m.app.Chat.Send(context.Background(), input)
		return replyMsg{reply: exchange.Assistant.Text, err: err}
	}
	return m, tea.Batch(m.spin.Tick, send)
}

func (m *chatModel) handleSlashCommand(input string) (tea.Model, tea.Cmd) {
	fields := strings.Fields(strings.ToLower(input))
	switch fields[0] {
	case "/quit", "/exit", "/q":
		return m, tea.Quit

	case "/clear":
		if err := m.app.Chat.ClearHistory(context.Background()); err != nil {
			m.addNote("could not clear history: " + err.Error())
			return m, nil
		}
		m.messages = []string{m.theme.Assistant.Render(m.theme.Greeting)}
		return m, nil

	case "/theme":
		if len(fields) < 2 {
			m.addNote("themes: " + strings.Join(ThemeNames(), ", "))
			return m, nil
		}
		return m.switchTheme(fields[1])

	case "/kb":
		m.addNote(m.kbSummary())
		return m, nil

	case "/surprise":
		if entry, ok := m.app.Store.RandomEntry(); ok {
			m.messages = append(m.messages,
				m.theme.Muted.Render("Did you know? ("+entry.Category+")"),
				m.theme.Assistant.Render(entry.Question+"\n"+entry.Answer))
		} else {
			m.addNote("the knowledge base is empty")
		}
		return m, nil

	case "/sources":
		return m.toggleSources()

	case "/help":
		m.addNote("commands: /quit /clear /theme <name> /kb /surprise /sources /help")
		return m, nil

	default:
		m.addNote("unknown command " + fields[0] + " (try /help)")
		return m, nil
	}
}

func (m *chatModel) switchTheme(name string) (tea.Model, tea.Cmd) {
	theme, ok := ThemeByName(name)
	if !ok {
		m.addNote("unknown theme " + name + " (themes: " + strings.Join(ThemeNames(), ", ") + ")")
		return m, nil
	}
	m.theme = theme
	m.spin.Style = lipgloss.NewStyle().Foreground(theme.Accent)
	m.messages = append(m.messages, theme.Assistant.Render(theme.Greeting))

	m.persistSettings(func(s *domain.Settings) { s.Theme = name })
	return m, nil
}

func (m *chatModel) toggleSources() (tea.Model, tea.Cmd) {
	if m.app.Responder == nil {
		m.addNote("source display is unavailable")
		return m, nil
	}
	enabled := !m.app.Responder.ShowSources()
	m.app.Responder.SetShowSources(enabled)
	if enabled {
		m.addNote("source citations on")
	} else {
		m.addNote("source citations off")
	}

	m.persistSettings(func(s *domain.Settings) { s.ShowSources = enabled })
	return m, nil
}

func (m *chatModel) kbSummary() string {
	store := m.app.Store
	if store == nil || !store.IsAvailable() {
		return "knowledge base: empty"
	}
	return fmt.Sprintf("knowledge base: %d entries, categories: %s",
		store.Size(), strings.Join(store.Categories(), ", "))
}

func (m *chatModel) addNote(text string) {
	m.messages = append(m.messages, m.theme.Muted.Render(text))
}

func (m *chatModel) persistSettings(mutate func(*domain.Settings)) {
	ctx := context.Background()
	settings, err := m.app.Settings.Get(ctx)
	if err != nil {
		return
	}
	mutate(&settings)
	if err := m.app.Settings.Update(ctx, settings); err != nil {
		m.addNote("preference not saved: " + err.Error())
	}
}
