package history

import (
	"encoding/json"
	"fmt"

	"github.com/Lele-bigLe/chrome-DevTools-JSON/pkg/shape"
)

// Theme values accepted by SetTheme.
const (
	ThemeLight = "light"
	ThemeDark  = "dark"
)

// Options returns the persisted display policy, or ok=false when none was
// saved yet.
func (h *History) Options() (*shape.Policy, bool, error) {
	blob, ok, err := h.store.Get(keyOptions)
	if err != nil {
		return nil, false, fmt.Errorf("loading options: %w", err)
	}
	if !ok {
		return nil, false, nil
	}
	var p shape.Policy
	if err := json.Unmarshal(blob, &p); err != nil {
		return nil, false, fmt.Errorf("decoding options: %w", err)
	}
	return &p, true, nil
}

// SetOptions persists the display policy.
func (h *History) SetOptions(p *shape.Policy) error {
	blob, err := json.Marshal(p)
	if err != nil {
		return err
	}
	if err := h.store.Set(keyOptions, blob); err != nil {
		return fmt.Errorf("saving options: %w", err)
	}
	return nil
}

// Theme returns the persisted theme flag, defaulting to light.
func (h *History) Theme() (string, error) {
	blob, ok, err := h.store.Get(keyTheme)
	if err != nil {
		return "", fmt.Errorf("loading theme: %w", err)
	}
	if !ok {
		return ThemeLight, nil
	}
	return string(blob), nil
}

// SetTheme persists the theme flag.
func (h *History) SetTheme(theme string) error {
	if theme != ThemeLight && theme != ThemeDark {
		return fmt.Errorf("unknown theme %q", theme)
	}
	if err := h.store.Set(keyTheme, []byte(theme)); err != nil {
		return fmt.Errorf("saving theme: %w", err)
	}
	return nil
}
