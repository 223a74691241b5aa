package knowledge

import (
	"fmt"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T, rawCSV string) *Store {
	t.Helper()
	s := NewStore(DefaultConfig())
	s.Initialize(rawCSV)
	return s
}

func TestStore_Initialize_SetsAvailability(t *testing.T) {
	s := newTestStore(t, sampleCSV)
	assert.True(t, s.IsAvailable())
	assert.Equal(t, 3, s.Size())

	empty := newTestStore(t, "id,category,question,answer\ngarbage line")
	assert.False(t, empty.IsAvailable())
	assert.Equal(t, 0, empty.Size())
}

func TestStore_Initialize_TotalParseFailureLeavesStoreEmpty(t *testing.T) {
	s := newTestStore(t, "complete nonsense\nmore nonsense")
	assert.False(t, s.IsAvailable())
	assert.Empty(t, s.FindRelevant("anything", 5))

	_, ok := s.FindBestMatch("anything")
	assert.False(t, ok)
}

func TestStore_AppendCSV_CountsMatchingLinesOnly(t *testing.T) {
	s := newTestStore(t, sampleCSV)
	before := s.Size()

	added, err := s.AppendCSV(`id,category,question,answer
10,iot,What is Zigbee?,A mesh networking standard.
broken line
11,iot,What is CoAP?,A UDP transfer protocol for constrained devices.
`)
	require.NoError(t, err)
	assert.Equal(t, 2, added)
	assert.Equal(t, before+2, s.Size())
}

func TestStore_AppendCSV_GeneratedIDsNeverCollide(t *testing.T) {
	s := newTestStore(t, sampleCSV)

	csv := `id,category,question,answer
10,iot,What is Zigbee?,A mesh networking standard.
11,iot,What is CoAP?,A UDP transfer protocol.
`
	added1, err := s.AppendCSV(csv)
	require.NoError(t, err)
	added2, err := s.AppendCSV(csv)
	require.NoError(t, err)
	assert.Equal(t, 2, added1)
	assert.Equal(t, 2, added2)

	seen := make(map[string]bool)
	for _, e := range s.snapshot() {
		assert.False(t, seen[e.ID], "duplicate id %s", e.ID)
		seen[e.ID] = true
	}
	assert.Equal(t, 3+2*2, s.Size())
}

func TestStore_AppendCSV_GeneratedIDShape(t *testing.T) {
	s := newTestStore(t, sampleCSV)
	_, err := s.AppendCSV("id,category,question,answer\n10,iot,What is Zigbee?,A mesh standard.")
	require.NoError(t, err)

	last := s.snapshot()[s.Size()-1]
	assert.True(t, strings.HasPrefix(last.ID, "custom_"), "got id %s", last.ID)
}

func TestStore_AppendCSV_MakesEmptyStoreAvailable(t *testing.T) {
	s := NewStore(DefaultConfig())
	s.Initialize("")
	require.False(t, s.IsAvailable())

	added, err := s.AppendCSV("id,category,question,answer\n1,iot,What is MQTT?,Pub/sub.")
	require.NoError(t, err)
	assert.Equal(t, 1, added)
	assert.True(t, s.IsAvailable())
}

func TestStore_FindRelevant_MQTTScenario(t *testing.T) {
	s := newTestStore(t, "id,category,question,answer\n1,iot,What is MQTT?,MQTT is a lightweight pub/sub protocol.")

	results := s.FindRelevant("explain mqtt", 5)
	require.Len(t, results, 1)
	assert.Equal(t, "MQTT is a lightweight pub/sub protocol.", results[0].Answer)
}

func TestStore_FindRelevant_RespectsKAndOrdering(t *testing.T) {
	s := newTestStore(t, `id,category,question,answer
1,iot,what is mqtt,Exact-ish match.
2,iot,tell me about mqtt brokers,Partial match.
3,networking,completely unrelated topic,No match.
4,iot,mqtt,Substring match.
`)

	results := s.FindRelevant("what is mqtt", 2)
	require.Len(t, results, 2)
	// Exact match outranks the substring match.
	assert.Equal(t, "1", results[0].ID)
	assert.Equal(t, "4", results[1].ID)

	all := s.FindRelevant("what is mqtt", 10)
	for i := 1; i < len(all); i++ {
		prev := s.cfg.similarity("what is mqtt", all[i-1].Question)
		cur := s.cfg.similarity("what is mqtt", all[i].Question)
		assert.GreaterOrEqual(t, prev, cur, "results must be non-increasing by score")
	}
	for _, e := range all {
		assert.Greater(t, s.cfg.similarity("what is mqtt", e.Question), s.cfg.MinScore)
	}
}

func TestStore_FindBestMatch_AgreesWithFindRelevant(t *testing.T) {
	s := newTestStore(t, sampleCSV)

	queries := []string{"what is mqtt", "explain tcp", "zzz qqq xxx", ""}
	for _, q := range queries {
		best, ok := s.FindBestMatch(q)
		top := s.FindRelevant(q, 1)
		if ok {
			require.Len(t, top, 1, "query %q", q)
			assert.Equal(t, top[0].ID, best.ID, "query %q", q)
		} else {
			assert.Empty(t, top, "query %q", q)
		}
	}
}

func TestStore_Categories_SortedDistinct(t *testing.T) {
	s := newTestStore(t, sampleCSV)
	assert.Equal(t, []string{"iot", "networking"}, s.Categories())
}

func TestStore_SearchByCategory_CaseInsensitiveSubstring(t *testing.T) {
	s := newTestStore(t, sampleCSV)
	assert.Len(t, s.SearchByCategory("IOT"), 2)
	assert.Len(t, s.SearchByCategory("net"), 1)
	assert.Empty(t, s.SearchByCategory("cooking"))
}

func TestStore_RandomEntry(t *testing.T) {
	s := newTestStore(t, sampleCSV)
	e, ok := s.RandomEntry()
	require.True(t, ok)
	assert.NotEmpty(t, e.Question)

	_, ok = NewStore(DefaultConfig()).RandomEntry()
	assert.False(t, ok)
}

func TestStore_ConcurrentAppendAndQuery(t *testing.T) {
	s := newTestStore(t, sampleCSV)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(2)
		go func(n int) {
			defer wg.Done()
			csv := fmt.Sprintf("id,category,question,answer\n%d,iot,Question number %d?,Answer number %d.", n, n, n)
			_, err := s.AppendCSV(csv)
			assert.NoError(t, err)
		}(100 + i)
		go func() {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				results := s.FindRelevant("what is mqtt", 5)
				for _, e := range results {
					// A reader must never observe a half-written entry.
					assert.NotEmpty(t, e.ID)
					assert.NotEmpty(t, e.Question)
				}
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 3+8, s.Size())
}

func TestLoadBundled_StarterDataset(t *testing.T) {
	s := LoadBundled(DefaultConfig())
	assert.True(t, s.IsAvailable())
	assert.Greater(t, s.Size(), 20)
	assert.Contains(t, s.Categories(), "iot")
}
