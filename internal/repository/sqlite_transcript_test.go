package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kiranj/helloguys/internal/domain"
	"github.com/kiranj/helloguys/internal/testutil"
)

func seedMessage(t *testing.T, repo *SQLiteTranscriptRepo, role domain.Role, text string, at time.Time) *domain.Message {
	t.Helper()
	m := domain.NewMessage(role, text)
	m.CreatedAt = at
	require.NoError(t, repo.Append(context.Background(), m))
	return m
}

func TestTranscriptRepo_AppendAndList(t *testing.T) {
	repo := NewSQLiteTranscriptRepo(testutil.NewTestDB(t))
	base := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

	seedMessage(t, repo, domain.RoleUser, "hello", base)
	seedMessage(t, repo, domain.RoleAssistant, "hi there", base.Add(time.Second))

	got, err := repo.List(context.Background(), 0)
	require.NoError(t, err)
	require.Len(t, got, 2)

	assert.Equal(t, domain.RoleUser, got[0].Role)
	assert.Equal(t, "hello", got[0].Text)
	assert.Equal(t, base, got[0].CreatedAt)
	assert.Equal(t, domain.RoleAssistant, got[1].Role)
	assert.Equal(t, "hi there", got[1].Text)
}

func TestTranscriptRepo_ListLimitKeepsMostRecent(t *testing.T) {
	repo := NewSQLiteTranscriptRepo(testutil.NewTestDB(t))
	base := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

	for i := 0; i < 5; i++ {
		seedMessage(t, repo, domain.RoleUser, string(rune('a'+i)), base.Add(time.Duration(i)*time.Second))
	}

	got, err := repo.List(context.Background(), 2)
	require.NoError(t, err)
	require.Len(t, got, 2)

	// Still chronological, but only the newest two.
	assert.Equal(t, "d", got[0].Text)
	assert.Equal(t, "e", got[1].Text)
}

func TestTranscriptRepo_Clear(t *testing.T) {
	repo := NewSQLiteTranscriptRepo(testutil.NewTestDB(t))
	seedMessage(t, repo, domain.RoleUser, "hello", time.Now().UTC())

	require.NoError(t, repo.Clear(context.Background()))

	got, err := repo.List(context.Background(), 0)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestTranscriptRepo_ListEmpty(t *testing.T) {
	repo := NewSQLiteTranscriptRepo(testutil.NewTestDB(t))

	got, err := repo.List(context.Background(), 0)
	require.NoError(t, err)
	assert.Empty(t, got)
}
