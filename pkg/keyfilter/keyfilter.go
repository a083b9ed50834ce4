package keyfilter

import (
	"slices"
	"unicode/utf8"
)

// Event is the subset of a keyboard event needed to filter numeric input.
type Event interface {
	// Key is the key value, e.g. "7", "a", "Backspace".
	Key() string
	CtrlKey() bool
	MetaKey() bool
	// Value is the current value of the input receiving the key press.
	Value() string
	// PreventDefault stops the key press from changing the input.
	PreventDefault()
}

var (
	editingKeys   = []string{"Backspace", "Delete", "Tab", "ArrowLeft", "ArrowRight", "Enter"}
	clipboardKeys = []string{"a", "c", "v", "x"}
)

// FilterKey restricts a numeric input to digits and at most maxLength
// characters. Editing and navigation keys and Ctrl/Meta + A, C, V, X always
// pass. Any other key that is not a single ASCII digit is suppressed, and
// once the input holds maxLength characters every such key is suppressed as
// well. maxLength <= 0 disables the length limit. Length is counted in
// runes, which differs from UTF-16 units only for astral-plane characters.
func FilterKey(ev Event, maxLength int) {
	if !Allowed(ev, maxLength) {
		ev.PreventDefault()
	}
}

// Allowed reports whether FilterKey would let the key press through.
func Allowed(ev Event, maxLength int) bool {
	key := ev.Key()
	if isPassthrough(key, ev.CtrlKey() || ev.MetaKey()) {
		return true
	}
	if !isDigit(key) {
		return false
	}
	if maxLength > 0 && utf8.RuneCountInString(ev.Value()) >= maxLength {
		return false
	}
	return true
}

func isPassthrough(key string, modifier bool) bool {
	if slices.Contains(editingKeys, key) {
		return true
	}
	return modifier && slices.Contains(clipboardKeys, key)
}

func isDigit(key string) bool {
	return len(key) == 1 && key[0] >= '0' && key[0] <= '9'
}
