package cli

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kiranj/helloguys/internal/assistant"
	"github.com/kiranj/helloguys/internal/knowledge"
	"github.com/kiranj/helloguys/internal/repository"
	"github.com/kiranj/helloguys/internal/service"
	"github.com/kiranj/helloguys/internal/testutil"
)

const chatTestKB = `id,category,question,answer
1,iot,What is MQTT?,MQTT is a lightweight pub/sub protocol.
2,programming,What is a goroutine?,A goroutine is a lightweight thread managed by the Go runtime.`

func newTestApp(t *testing.T) *App {
	t.Helper()
	database := testutil.NewTestDB(t)

	store := knowledge.NewStore(knowledge.DefaultConfig())
	store.Initialize(chatTestKB)

	responder := assistant.NewResponder(store, nil, assistant.Options{})

	return &App{
		Chat:      service.NewChatService(repository.NewSQLiteTranscriptRepo(database), responder),
		Settings:  service.NewSettingsService(repository.NewSQLiteSettingsRepo(database)),
		Responder: responder,
		Store:     store,
	}
}

func typeAndEnter(m tea.Model, text string) (tea.Model, tea.Cmd) {
	for _, r := range text {
		m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	return m.Update(tea.KeyMsg{Type: tea.KeyEnter})
}

func TestChatModel_GreetingShown(t *testing.T) {
	m := newChatModel(newTestApp(t), "")

	view := m.View()
	assert.Contains(t, view, "Hello Guys")
	assert.Contains(t, view, DefaultTheme().Greeting)
}

func TestChatModel_ThemeOverride(t *testing.T) {
	m := newChatModel(newTestApp(t), "sci-fi-pet")
	assert.Equal(t, "sci-fi-pet", m.theme.Name)
}

func TestChatModel_SendAndReply(t *testing.T) {
	m := newChatModel(newTestApp(t), "")

	model, cmd := typeAndEnter(m, "hello")
	cm := model.(*chatModel)
	require.NotNil(t, cmd)
	assert.True(t, cm.waiting)

	// Drain the batch to find the reply message.
	reply := drainForReply(t, cmd)
	model, _ = cm.Update(reply)
	cm = model.(*chatModel)

	assert.False(t, cm.waiting)
	assert.Contains(t, cm.View(), "You: hello")
	require.NotEmpty(t, reply.reply)
	assert.Contains(t, cm.View(), reply.reply)
}

func TestChatModel_SlashQuit(t *testing.T) {
	m := newChatModel(newTestApp(t), "")

	_, cmd := typeAndEnter(m, "/quit")
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}

func TestChatModel_SlashTheme(t *testing.T) {
	app := newTestApp(t)
	m := newChatModel(app, "")

	model, _ := typeAndEnter(m, "/theme electronics")
	cm := model.(*chatModel)

	assert.Equal(t, "electronics", cm.theme.Name)

	// The preference survives into a fresh model.
	m2 := newChatModel(app, "")
	assert.Equal(t, "electronics", m2.theme.Name)
}

func TestChatModel_SlashKB(t *testing.T) {
	m := newChatModel(newTestApp(t), "")

	model, _ := typeAndEnter(m, "/kb")
	view := model.View()

	assert.Contains(t, view, "2 entries")
	assert.Contains(t, view, "iot")
	assert.Contains(t, view, "programming")
}

func TestChatModel_SlashSourcesToggles(t *testing.T) {
	app := newTestApp(t)
	m := newChatModel(app, "")
	require.False(t, app.Responder.ShowSources())

	model, _ := typeAndEnter(m, "/sources")
	assert.True(t, app.Responder.ShowSources())

	model, _ = typeAndEnter(model, "/sources")
	_ = model
	assert.False(t, app.Responder.ShowSources())
}

func TestChatModel_SlashClear(t *testing.T) {
	app := newTestApp(t)
	m := newChatModel(app, "")

	model, cmd := typeAndEnter(m, "hi there")
	cm := model.(*chatModel)
	reply := drainForReply(t, cmd)
	model, _ = cm.Update(reply)

	model, _ = typeAndEnter(model, "/clear")
	cm = model.(*chatModel)

	assert.NotContains(t, cm.View(), "You: hi there")
}

func TestChatModel_UnknownSlashCommand(t *testing.T) {
	m := newChatModel(newTestApp(t), "")

	model, _ := typeAndEnter(m, "/teleport")
	assert.Contains(t, model.View(), "unknown command /teleport")
}

// drainForReply executes a tea.Cmd (possibly a batch) and returns the
// replyMsg it produces.
func drainForReply(t *testing.T, cmd tea.Cmd) replyMsg {
	t.Helper()
	queue := []tea.Cmd{cmd}
	for len(queue) > 0 {
		next := queue[0]
		queue = queue[1:]
		if next == nil {
			continue
		}
		switch msg := next().(type) {
		case replyMsg:
			return msg
		case tea.BatchMsg:
			for _, c := range msg {
				queue = append(queue, c)
			}
		}
	}
	t.Fatal("no replyMsg produced")
	return replyMsg{}
}
