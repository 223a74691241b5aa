package knowledge

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSimilarity_ExactAndSubstringScores(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, cfg.ExactScore, cfg.similarity("what is mqtt", "what is mqtt"))
	assert.Equal(t, cfg.ExactScore, cfg.similarity("What is MQTT", "what is mqtt"))
	assert.Equal(t, cfg.SubstringScore, cfg.similarity("mqtt", "what is mqtt"))
	assert.Equal(t, cfg.SubstringScore, cfg.similarity("tell me about lorawan please", "lorawan please"))
}

func TestSimilarity_SymmetricForExactAndSubstring(t *testing.T) {
	cfg := DefaultConfig()

	pairs := []struct {
		name string
		a, b string
	}{
		{"identical", "what is mqtt", "what is mqtt"},
		{"identical ignoring case", "What is MQTT?", "what is mqtt?"},
		{"one contains the other", "mqtt", "what is mqtt"},
		{"containment with spaces", "tell me about lorawan", "lorawan"},
		{"empty against non-empty", "", "what is mqtt"},
	}
	for _, p := range pairs {
		t.Run(p.name, func(t *testing.T) {
			assert.Equal(t, cfg.similarity(p.a, p.b), cfg.similarity(p.b, p.a))
		})
	}
}

func TestSimilarity_WordOverlapBelowSubstringScore(t *testing.T) {
	cfg := DefaultConfig()

	score := cfg.similarity("explain mqtt brokers", "what is mqtt")
	assert.Greater(t, score, 0.0)
	assert.Less(t, score, cfg.SubstringScore)
}
