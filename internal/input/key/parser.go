package key

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
)

// Parse errors
var (
	ErrEmptySpec  = errors.New("empty key specification")
	ErrUnknownKey = errors.New("unknown key")
)

// aliases maps alternative spellings (lowercase) to codes.
var aliases = map[string]Code{
	"esc":        Escape,
	"return":     Enter,
	"cr":         Enter,
	"bs":         Backspace,
	"del":        Delete,
	"ins":        Insert,
	"pgup":       PageUp,
	"pgdn":       PageDown,
	"pagedn":     PageDown,
	"prtsc":      PrintScreen,
	"lshift":     LeftShift,
	"rshift":     RightShift,
	"lctrl":      LeftCtrl,
	"rctrl":      RightCtrl,
	"lalt":       LeftAlt,
	"ralt":       RightAlt,
	"lsuper":     LeftSuper,
	"rsuper":     RightSuper,
	"kpenter":    KPEnter,
	"kpadd":      KPAdd,
	"kpsubtract": KPSubtract,
	"kpmultiply": KPMultiply,
	"kpdivide":   KPDivide,
	"kpdecimal":  KPDecimal,
	"kpequal":    KPEqual,
}

// nameIndex maps lowercase canonical names to codes.
var nameIndex map[string]Code

func init() {
	nameIndex = make(map[string]Code, len(codeNames)+len(aliases))
	for c, name := range codeNames {
		nameIndex[strings.ToLower(name)] = c
	}
	for alias, c := range aliases {
		nameIndex[alias] = c
	}
}

// Parse returns the code for a key name such as "W", "Escape" or "F5".
//
// Supported formats:
//   - Single character: "a", "W", "1", "/"
//   - Special keys: "Enter", "Escape", "Tab", "Backspace", "Space"
//   - Aliases: "Esc", "CR", "Return", "BS", "PgUp"
func Parse(name string) (Code, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return Unknown, ErrEmptySpec
	}

	if runes := []rune(name); len(runes) == 1 {
		if c := FromRune(runes[0]); c != Unknown {
			return c, nil
		}
	}

	if c, ok := nameIndex[strings.ToLower(name)]; ok {
		return c, nil
	}
	return Unknown, fmt.Errorf("%w: %q", ErrUnknownKey, name)
}

// MustParse is like Parse but panics on error.
// Use only for compile-time constant key names.
func MustParse(name string) Code {
	c, err := Parse(name)
	if err != nil {
		panic(err)
	}
	return c
}

// ParseChord parses a modifier chord like "Ctrl+Shift+W" into its key and
// modifiers. A trailing "+" belongs to the key name, so "Shift+KP+" is
// Shift with the keypad plus key.
func ParseChord(chord string) (Code, Modifier, error) {
	chord = strings.TrimSpace(chord)
	if chord == "" {
		return Unknown, ModNone, ErrEmptySpec
	}

	end := len(chord)
	if strings.HasSuffix(chord, "+") {
		end--
	}
	idx := strings.LastIndex(chord[:end], "+")
	if idx <= 0 {
		c, err := Parse(chord)
		return c, ModNone, err
	}

	mods := ModNone
	for _, part := range strings.Split(chord[:idx], "+") {
		mod := ModifierFromName(part)
		if mod.IsEmpty() {
			return Unknown, ModNone, fmt.Errorf("%w: unknown modifier %q", ErrUnknownKey, part)
		}
		mods = mods.With(mod)
	}

	c, err := Parse(chord[idx+1:])
	if err != nil {
		return Unknown, ModNone, err
	}
	return c, mods, nil
}

// FromRune returns the code for the key that types r.
// Letters map to their uppercase code; unmapped runes return Unknown.
func FromRune(r rune) Code {
	if r >= 'a' && r <= 'z' {
		r = unicode.ToUpper(r)
	}
	switch {
	case r == ' ':
		return Space
	case r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
		return Code(r)
	}
	switch r {
	case '\'', ',', '-', '.', '/', ';', '=', '[', '\\', ']', '`':
		return Code(r)
	}
	return Unknown
}
