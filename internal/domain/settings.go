package domain

// Settings holds user-adjustable preferences persisted across sessions.
type Settings struct {
	Theme            string
	Model            string
	APIKeyConfigured bool
	VoiceEnabled     bool
	VoiceRate        float64
	VoicePitch       float64
	ShowSources      bool
}

// DefaultSettings returns the preferences used before the user has saved
// anything.
func DefaultSettings() Settings {
	return Settings{
		Theme:      "classic",
		Model:      "gemini-1.5-flash",
		VoiceRate:  1.0,
		VoicePitch: 1.0,
	}
}
