package game

import (
	"path/filepath"
	"testing"
)

func TestAudioManager_NilResourceManager(t *testing.T) {
	am := NewAudioManager(nil, nil)

	if am.PlaySound("SOUND_HIT") {
		t.Error("PlaySound without resources: got true, want false")
	}
	if am.PlayMusic("SOUND_MUSIC") {
		t.Error("PlayMusic without resources: got true, want false")
	}
	am.ApplySettings() // must not panic
	am.StopMusic()
}

func TestAudioManager_UnknownIDReportedOnce(t *testing.T) {
	rm := NewResourceManager(testAudioContext)
	if err := rm.LoadResourceConfig(writeManifest(t, t.TempDir())); err != nil {
		t.Fatalf("LoadResourceConfig failed: %v", err)
	}
	am := NewAudioManager(rm, nil)

	if am.PlaySound("SOUND_UNKNOWN") {
		t.Error("PlaySound(unknown): got true, want false")
	}
	if !am.missing["SOUND_UNKNOWN"] {
		t.Error("unknown ID should be remembered as missing")
	}

	// SOUND_HIT is declared but the file does not exist
	if am.PlaySound("SOUND_HIT") {
		t.Error("PlaySound(missing file): got true, want false")
	}
	if !am.missing["SOUND_HIT"] {
		t.Error("failed load should be remembered as missing")
	}
}

func TestAudioManager_PreloadSounds(t *testing.T) {
	dir := t.TempDir()
	if err := createTestWAV(filepath.Join(dir, "sounds", "hit.wav"), 100); err != nil {
		t.Fatalf("Failed to create test WAV: %v", err)
	}
	rm := NewResourceManager(testAudioContext)
	if err := rm.LoadResourceConfig(writeManifest(t, dir)); err != nil {
		t.Fatalf("LoadResourceConfig failed: %v", err)
	}
	am := NewAudioManager(rm, nil)

	am.PreloadSounds([]string{"SOUND_HIT", "SOUND_UNKNOWN"})

	if _, ok := am.soundPlayers["SOUND_HIT"]; !ok {
		t.Error("SOUND_HIT should be cached after preload")
	}
	if _, ok := am.soundPlayers["SOUND_UNKNOWN"]; ok {
		t.Error("SOUND_UNKNOWN should not be cached")
	}
}

func TestAudioManager_MutedMusicIsRemembered(t *testing.T) {
	sm := NewSettingsManager(nil)
	sm.ToggleMute()
	am := NewAudioManager(nil, sm)

	if am.PlayMusic("SOUND_MUSIC") {
		t.Error("PlayMusic while muted: got true, want false")
	}
	if got := am.currentMusicID; got != "SOUND_MUSIC" {
		t.Errorf("currentMusicID: got %q, want %q", got, "SOUND_MUSIC")
	}
	if am.PlaySound("SOUND_HIT") {
		t.Error("PlaySound while muted: got true, want false")
	}

	am.StopMusic()
	if got := am.currentMusicID; got != "" {
		t.Errorf("currentMusicID after StopMusic: got %q, want empty", got)
	}
}
