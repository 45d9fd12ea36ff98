package tui

import (
	"github.com/ametelin/tui-runner/internal/runner"
	"github.com/ametelin/tui-runner/internal/storage"
)

// Prefs is an in-memory snapshot of the player preferences.
type Prefs struct {
	Username   string
	AdsEnabled bool
	Skin       string
	Layout     string
}

// DefaultPrefs returns the preferences used when no store is available.
func DefaultPrefs() Prefs {
	return Prefs{
		Username:   "player",
		AdsEnabled: true,
		Skin:       string(runner.SkinGopher),
		Layout:     "wide",
	}
}

// LoadPrefs reads the preferences from the store, falling back to defaults
// when the store is unavailable or a key is unreadable.
func LoadPrefs(store *storage.Store) Prefs {
	p := DefaultPrefs()
	if store == nil {
		return p
	}
	p.Username = store.Pref(storage.PrefUsername, p.Username)
	p.AdsEnabled = store.BoolPref(storage.PrefAdsEnabled, p.AdsEnabled)
	p.Skin = store.Pref(storage.PrefSkin, p.Skin)
	p.Layout = store.Pref(storage.PrefLayout, p.Layout)
	return p
}

// PlayerSkin maps the skin preference to the game's cosmetic skin.
func (p Prefs) PlayerSkin() runner.Skin {
	if p.Skin == string(runner.SkinRobot) {
		return runner.SkinRobot
	}
	return runner.SkinGopher
}

// Compact reports whether the compact layout was chosen.
func (p Prefs) Compact() bool {
	return p.Layout == "compact"
}
