package key

import "fmt"

// Code identifies a physical or logical keyboard key.
// Valid codes lie in [0, MaxKeys) and use GLFW numbering.
type Code int

// MaxKeys is the number of distinct key identifiers.
const MaxKeys = 350

// Unknown is reported by backends for keys they cannot map.
const Unknown Code = -1

// Printable keys.
const (
	Space        Code = 32
	Apostrophe   Code = 39
	Comma        Code = 44
	Minus        Code = 45
	Period       Code = 46
	Slash        Code = 47
	Num0         Code = 48
	Num1         Code = 49
	Num2         Code = 50
	Num3         Code = 51
	Num4         Code = 52
	Num5         Code = 53
	Num6         Code = 54
	Num7         Code = 55
	Num8         Code = 56
	Num9         Code = 57
	Semicolon    Code = 59
	Equal        Code = 61
	A            Code = 65
	B            Code = 66
	C            Code = 67
	D            Code = 68
	E            Code = 69
	F            Code = 70
	G            Code = 71
	H            Code = 72
	I            Code = 73
	J            Code = 74
	K            Code = 75
	L            Code = 76
	M            Code = 77
	N            Code = 78
	O            Code = 79
	P            Code = 80
	Q            Code = 81
	R            Code = 82
	S            Code = 83
	T            Code = 84
	U            Code = 85
	V            Code = 86
	W            Code = 87
	X            Code = 88
	Y            Code = 89
	Z            Code = 90
	LeftBracket  Code = 91
	Backslash    Code = 92
	RightBracket Code = 93
	GraveAccent  Code = 96
	World1       Code = 161
	World2       Code = 162
)

// Special keys.
const (
	Escape      Code = 256
	Enter       Code = 257
	Tab         Code = 258
	Backspace   Code = 259
	Insert      Code = 260
	Delete      Code = 261
	Right       Code = 262
	Left        Code = 263
	Down        Code = 264
	Up          Code = 265
	PageUp      Code = 266
	PageDown    Code = 267
	Home        Code = 268
	End         Code = 269
	CapsLock    Code = 280
	ScrollLock  Code = 281
	NumLock     Code = 282
	PrintScreen Code = 283
	Pause       Code = 284
	F1          Code = 290
	F2          Code = 291
	F3          Code = 292
	F4          Code = 293
	F5          Code = 294
	F6          Code = 295
	F7          Code = 296
	F8          Code = 297
	F9          Code = 298
	F10         Code = 299
	F11         Code = 300
	F12         Code = 301
	F13         Code = 302
	F14         Code = 303
	F15         Code = 304
	F16         Code = 305
	F17         Code = 306
	F18         Code = 307
	F19         Code = 308
	F20         Code = 309
	F21         Code = 310
	F22         Code = 311
	F23         Code = 312
	F24         Code = 313
	F25         Code = 314
	KP0         Code = 320
	KP1         Code = 321
	KP2         Code = 322
	KP3         Code = 323
	KP4         Code = 324
	KP5         Code = 325
	KP6         Code = 326
	KP7         Code = 327
	KP8         Code = 328
	KP9         Code = 329
	KPDecimal   Code = 330
	KPDivide    Code = 331
	KPMultiply  Code = 332
	KPSubtract  Code = 333
	KPAdd       Code = 334
	KPEnter     Code = 335
	KPEqual     Code = 336
	LeftShift   Code = 340
	LeftCtrl    Code = 341
	LeftAlt     Code = 342
	LeftSuper   Code = 343
	RightShift  Code = 344
	RightCtrl   Code = 345
	RightAlt    Code = 346
	RightSuper  Code = 347
	Menu        Code = 348
)

// Valid returns true if c can be used as a key identifier.
func (c Code) Valid() bool {
	return c >= 0 && c < MaxKeys
}

// IsPrintable returns true for keys that produce a character.
func (c Code) IsPrintable() bool {
	return c >= Space && c <= World2
}

// IsFunctionKey returns true if this is a function key (F1-F25).
func (c Code) IsFunctionKey() bool {
	return c >= F1 && c <= F25
}

// IsArrowKey returns true if this is an arrow key.
func (c Code) IsArrowKey() bool {
	return c >= Right && c <= Up
}

// IsKeypad returns true if this is a keypad key.
func (c Code) IsKeypad() bool {
	return c >= KP0 && c <= KPEqual
}

// IsModifierKey returns true if the key itself is a modifier key.
func (c Code) IsModifierKey() bool {
	return c >= LeftShift && c <= RightSuper
}

// String returns a human-readable name for the key.
func (c Code) String() string {
	if name, ok := codeNames[c]; ok {
		return name
	}
	if c == Unknown {
		return "Unknown"
	}
	return fmt.Sprintf("Key(%d)", int(c))
}

// codeNames holds the canonical name of each defined key.
var codeNames = map[Code]string{
	Space:        "Space",
	Apostrophe:   "'",
	Comma:        ",",
	Minus:        "-",
	Period:       ".",
	Slash:        "/",
	Semicolon:    ";",
	Equal:        "=",
	LeftBracket:  "[",
	Backslash:    "\\",
	RightBracket: "]",
	GraveAccent:  "`",
	World1:       "World1",
	World2:       "World2",
	Escape:       "Escape",
	Enter:        "Enter",
	Tab:          "Tab",
	Backspace:    "Backspace",
	Insert:       "Insert",
	Delete:       "Delete",
	Right:        "Right",
	Left:         "Left",
	Down:         "Down",
	Up:           "Up",
	PageUp:       "PageUp",
	PageDown:     "PageDown",
	Home:         "Home",
	End:          "End",
	CapsLock:     "CapsLock",
	ScrollLock:   "ScrollLock",
	NumLock:      "NumLock",
	PrintScreen:  "PrintScreen",
	Pause:        "Pause",
	KPDecimal:    "KP.",
	KPDivide:     "KP/",
	KPMultiply:   "KP*",
	KPSubtract:   "KP-",
	KPAdd:        "KP+",
	KPEnter:      "KPEnter",
	KPEqual:      "KP=",
	LeftShift:    "LeftShift",
	LeftCtrl:     "LeftCtrl",
	LeftAlt:      "LeftAlt",
	LeftSuper:    "LeftSuper",
	RightShift:   "RightShift",
	RightCtrl:    "RightCtrl",
	RightAlt:     "RightAlt",
	RightSuper:   "RightSuper",
	Menu:         "Menu",
}

func init() {
	for c := Num0; c <= Num9; c++ {
		codeNames[c] = string(rune(c))
	}
	for c := A; c <= Z; c++ {
		codeNames[c] = string(rune(c))
	}
	for c := F1; c <= F25; c++ {
		codeNames[c] = fmt.Sprintf("F%d", int(c-F1)+1)
	}
	for c := KP0; c <= KP9; c++ {
		codeNames[c] = fmt.Sprintf("KP%d", int(c-KP0))
	}
}
