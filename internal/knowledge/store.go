package knowledge

import (
	"fmt"
	"math/rand/v2"
	"sort"
	"strings"
	"sync"
	"time"
)

// Entry is one question/answer record in the knowledge base.
type Entry struct {
	ID       string
	Category string
	Question string
	Answer   string
}

// Config holds the similarity thresholds used when ranking entries.
// The values are empirical; they are configuration, not invariants.
type Config struct {
	// MinScore is the relevance floor. Entries scoring at or below it are
	// never returned.
	MinScore float64

	// SubstringScore is assigned when one string contains the other.
	SubstringScore float64

	// ExactScore is assigned when both strings are equal after lower-casing.
	ExactScore float64
}

// DefaultConfig returns the thresholds the store ships with.
func DefaultConfig() Config {
	return Config{
		MinScore:       0.3,
		SubstringScore: 0.8,
		ExactScore:     1.0,
	}
}

// Store holds an append-only collection of question/answer entries queried
// by lexical similarity. Appends replace the backing slice wholesale, so a
// reader holding a snapshot never observes a partially appended state.
type Store struct {
	cfg Config

	mu        sync.RWMutex
	entries   []Entry
	available bool
}

// NewStore creates an empty store with the given thresholds.
func NewStore(cfg Config) *Store {
	return &Store{cfg: cfg}
}

// Initialize bulk-loads entries from raw CSV text, replacing any existing
// contents. Malformed lines are skipped; the store becomes available only
// if at least one entry parsed. Initialize never fails, an unparseable
// input simply leaves the store empty but initialized.
func (s *Store) Initialize(rawCSV string) {
	entries := parseCSV(rawCSV, func(m csvMatch, _ int) string { return m.id })

	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries = entries
	s.available = len(entries) > 0
}

// AppendCSV parses raw CSV text and appends the matching lines to the
// existing collection. Every appended entry receives a generated id of the
// form custom_<timestamp>_<index> so it cannot collide with the numeric
// ids assigned by a source file. Returns the number of entries added.
// Per-line parse failures are not errors; err is reserved for a total
// failure to process the input.
func (s *Store) AppendCSV(rawCSV string) (int, error) {
	stamp := time.Now().UnixMilli()

	s.mu.Lock()
	defer s.mu.Unlock()

	// Index past the current size so two appends landing in the same
	// millisecond still produce disjoint id sets.
	offset := len(s.entries)
	added := parseCSV(rawCSV, func(_ csvMatch, i int) string {
		return fmt.Sprintf("custom_%d_%d", stamp, offset+i)
	})
	if len(added) == 0 {
		return 0, nil
	}

	merged := make([]Entry, 0, len(s.entries)+len(added))
	merged = append(merged, s.entries...)
	merged = append(merged, added...)
	s.entries = merged
	s.available = true

	return len(added), nil
}

// snapshot returns the current backing slice. Appends never mutate a
// published slice, so the caller may read it without holding the lock.
func (s *Store) snapshot() []Entry {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.entries
}

// FindRelevant returns up to k entries whose question scores above the
// relevance floor against the query, ordered by descending score. Ties
// keep their original load order.
func (s *Store) FindRelevant(query string, k int) []Entry {
	if !s.IsAvailable() || k <= 0 {
		return nil
	}

	type scored struct {
		entry Entry
		score float64
	}

	var matches []scored
	for _, e := range s.snapshot() {
		score := s.cfg.similarity(query, e.Question)
		if score > s.cfg.MinScore {
			matches = append(matches, scored{entry: e, score: score})
		}
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].score > matches[j].score
	})

	if len(matches) > k {
		matches = matches[:k]
	}
	result := make([]Entry, len(matches))
	for i, m := range matches {
		result[i] = m.entry
	}
	return result
}

// FindBestMatch returns the single highest-scoring entry above the
// relevance floor, or ok=false when nothing qualifies. The first entry
// with the maximum score wins.
func (s *Store) FindBestMatch(query string) (Entry, bool) {
	if !s.IsAvailable() {
		return Entry{}, false
	}

	var best Entry
	bestScore := 0.0
	found := false
	for _, e := range s.snapshot() {
		score := s.cfg.similarity(query, e.Question)
		if score > s.cfg.MinScore && score > bestScore {
			best = e
			bestScore = score
			found = true
		}
	}
	return best, found
}

// SearchByCategory returns entries whose category contains the given label,
// case-insensitively.
func (s *Store) SearchByCategory(category string) []Entry {
	needle := strings.ToLower(category)
	var result []Entry
	for _, e := range s.snapshot() {
		if strings.Contains(strings.ToLower(e.Category), needle) {
			result = append(result, e)
		}
	}
	return result
}

// RandomEntry returns a uniformly random entry, or ok=false on an empty
// store.
func (s *Store) RandomEntry() (Entry, bool) {
	entries := s.snapshot()
	if len(entries) == 0 {
		return Entry{}, false
	}
	return entries[rand.IntN(len(entries))], true
}

// IsAvailable reports whether the store has been initialized and holds at
// least one entry.
func (s *Store) IsAvailable() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.available && len(s.entries) > 0
}

// Size returns the current entry count.
func (s *Store) Size() int {
	return len(s.snapshot())
}

// Categories returns the distinct category labels currently present,
// sorted alphabetically.
func (s *Store) Categories() []string {
	seen := make(map[string]bool)
	var categories []string
	for _, e := range s.snapshot() {
		if !seen[e.Category] {
			seen[e.Category] = true
			categories = append(categories, e.Category)
		}
	}
	sort.Strings(categories)
	return categories
}
