// Package sanitizer normalizes user input before it is validated or stored.
//
// The phone helpers implement the input mask used by the web forms:
// NormalizePhone reduces whatever the user typed or pasted to at most eleven
// digits, and FormatPhone renders those digits as "+7 (XXX) XXX-XX-XX",
// growing the mask as more digits arrive. Composed together they give the
// value that validator.IsPhone accepts:
//
//	clean := sanitizer.Compose(sanitizer.NormalizePhone, sanitizer.FormatPhone)
//	clean("8 999 123 45 67") // "+7 (999) 123-45-67"
//
// All functions are pure and safe for concurrent use.
package sanitizer
