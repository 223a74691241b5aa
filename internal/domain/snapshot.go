package domain

import (
	"encoding/json"
	"fmt"
)

// settingsSchemaVersion is bumped whenever the persisted settings shape
// changes incompatibly.
const settingsSchemaVersion = 1

// SettingsSnapshot is the stored form of Settings. The schema version lets
// future readers detect and migrate old snapshots.
type SettingsSnapshot struct {
	SchemaVersion    int     `json:"schema_version"`
	Theme            string  `json:"theme"`
	Model            string  `json:"model"`
	APIKeyConfigured bool    `json:"api_key_configured"`
	VoiceEnabled     bool    `json:"voice_enabled"`
	VoiceRate        float64 `json:"voice_rate"`
	VoicePitch       float64 `json:"voice_pitch"`
	ShowSources      bool    `json:"show_sources"`
}

// Snapshot serializes s for storage.
func Snapshot(s Settings) ([]byte, error) {
	snap := SettingsSnapshot{
		SchemaVersion:    settingsSchemaVersion,
		Theme:            s.Theme,
		Model:            s.Model,
		APIKeyConfigured: s.APIKeyConfigured,
		VoiceEnabled:     s.VoiceEnabled,
		VoiceRate:        s.VoiceRate,
		VoicePitch:       s.VoicePitch,
		ShowSources:      s.ShowSources,
	}
	data, err := json.Marshal(snap)
	if err != nil {
		return nil, fmt.Errorf("marshaling settings snapshot: %w", err)
	}
	return data, nil
}

// RestoreSettings deserializes a stored snapshot. Missing fields fall back
// to defaults so old snapshots keep loading after new fields are added.
func RestoreSettings(data []byte) (Settings, error) {
	defaults := DefaultSettings()
	snap := SettingsSnapshot{
		Theme:      defaults.Theme,
		Model:      defaults.Model,
		VoiceRate:  defaults.VoiceRate,
		VoicePitch: defaults.VoicePitch,
	}
	if err := json.Unmarshal(data, &snap); err != nil {
		return Settings{}, fmt.Errorf("unmarshaling settings snapshot: %w", err)
	}
	if snap.SchemaVersion > settingsSchemaVersion {
		return Settings{}, fmt.Errorf("settings schema version %d is newer than supported version %d",
			snap.SchemaVersion, settingsSchemaVersion)
	}

	s := Settings{
		Theme:            snap.Theme,
		Model:            snap.Model,
		APIKeyConfigured: snap.APIKeyConfigured,
		VoiceEnabled:     snap.VoiceEnabled,
		VoiceRate:        snap.VoiceRate,
		VoicePitch:       snap.VoicePitch,
		ShowSources:      snap.ShowSources,
	}
	if s.Theme == "" {
		s.Theme = defaults.Theme
	}
	if s.Model == "" {
		s.Model = defaults.Model
	}
	return s, nil
}
