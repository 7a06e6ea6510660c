package menu

import (
	"errors"
	"fmt"
	"strings"
)

// Accelerator is a keyboard chord in the "CmdOrCtrl+Shift+N" notation.
type Accelerator string

// Modifier is a bit set of chord modifiers.
type Modifier uint8

const (
	// ModPrimary is Cmd on macOS and Ctrl elsewhere.
	ModPrimary Modifier = 1 << iota
	ModCtrl
	ModAlt
	ModShift
	ModSuper
)

var modifierNames = []struct {
	mod  Modifier
	name string
}{
	{ModPrimary, "CmdOrCtrl"},
	{ModCtrl, "Ctrl"},
	{ModAlt, "Alt"},
	{ModShift, "Shift"},
	{ModSuper, "Super"},
}

var modifierAliases = map[string]Modifier{
	"cmdorctrl":        ModPrimary,
	"commandorcontrol": ModPrimary,
	"ctrl":             ModCtrl,
	"control":          ModCtrl,
	"alt":              ModAlt,
	"option":           ModAlt,
	"shift":            ModShift,
	"super":            ModSuper,
	"cmd":              ModSuper,
	"command":          ModSuper,
	"meta":             ModSuper,
}

var namedKeys = map[string]string{
	"enter":     "Enter",
	"return":    "Enter",
	"tab":       "Tab",
	"space":     "Space",
	"escape":    "Escape",
	"esc":       "Escape",
	"backspace": "Backspace",
	"delete":    "Delete",
	"up":        "Up",
	"down":      "Down",
	"left":      "Left",
	"right":     "Right",
	"home":      "Home",
	"end":       "End",
	"pageup":    "PageUp",
	"pagedown":  "PageDown",
	"plus":      "Plus",
}

func init() {
	for i := 1; i <= 12; i++ {
		name := fmt.Sprintf("F%d", i)
		namedKeys[strings.ToLower(name)] = name
	}
}

var errEmptyAccelerator = errors.New("empty accelerator")

// Chord is a parsed accelerator.
type Chord struct {
	Modifiers Modifier
	Key       string
}

// Has reports whether the chord includes mod.
func (c Chord) Has(mod Modifier) bool {
	return c.Modifiers&mod != 0
}

// String renders the chord with modifiers in a fixed order.
func (c Chord) String() string {
	parts := make([]string, 0, len(modifierNames)+1)
	for _, m := range modifierNames {
		if c.Has(m.mod) {
			parts = append(parts, m.name)
		}
	}
	parts = append(parts, c.Key)
	return strings.Join(parts, "+")
}

// Resolutions returns the chord as each platform binds it: CmdOrCtrl is Ctrl
// off macOS and Cmd (Super) on it. Chords without CmdOrCtrl resolve to
// themselves.
func (c Chord) Resolutions() []Chord {
	if !c.Has(ModPrimary) {
		return []Chord{c}
	}
	base := c.Modifiers &^ ModPrimary
	return []Chord{
		{Modifiers: base | ModCtrl, Key: c.Key},
		{Modifiers: base | ModSuper, Key: c.Key},
	}
}

// Parse splits the accelerator into modifiers and key. Matching is
// case-insensitive and modifier order does not matter.
func (a Accelerator) Parse() (Chord, error) {
	raw := strings.TrimSpace(string(a))
	if raw == "" {
		return Chord{}, errEmptyAccelerator
	}

	tokens := strings.Split(raw, "+")
	var chord Chord
	for idx, tok := range tokens {
		tok = strings.TrimSpace(tok)
		if tok == "" {
			return Chord{}, fmt.Errorf("accelerator %q has an empty segment", raw)
		}
		last := idx == len(tokens)-1
		if !last {
			mod, ok := modifierAliases[strings.ToLower(tok)]
			if !ok {
				return Chord{}, fmt.Errorf("accelerator %q: unknown modifier %q", raw, tok)
			}
			if chord.Has(mod) {
				return Chord{}, fmt.Errorf("accelerator %q: repeated modifier %q", raw, tok)
			}
			chord.Modifiers |= mod
			continue
		}
		key, err := normalizeKey(tok)
		if err != nil {
			return Chord{}, fmt.Errorf("accelerator %q: %w", raw, err)
		}
		chord.Key = key
	}
	return chord, nil
}

// Canonical returns the normalised notation, or an empty string when the
// accelerator does not parse.
func (a Accelerator) Canonical() string {
	chord, err := a.Parse()
	if err != nil {
		return ""
	}
	return chord.String()
}

func normalizeKey(tok string) (string, error) {
	if named, ok := namedKeys[strings.ToLower(tok)]; ok {
		return named, nil
	}
	if len(tok) == 1 {
		c := tok[0]
		switch {
		case c >= 'a' && c <= 'z':
			return string(c - 'a' + 'A'), nil
		case c >= 'A' && c <= 'Z', c >= '0' && c <= '9':
			return tok, nil
		case strings.ContainsRune("-=[];',./\\`", rune(c)):
			return tok, nil
		}
	}
	return "", fmt.Errorf("unsupported key %q", tok)
}
