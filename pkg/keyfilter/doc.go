// Package keyfilter decides which key presses a numeric form input accepts.
//
// It mirrors the keydown handler used by the phone and INN inputs: digits
// are accepted until the input is full, editing keys and clipboard
// shortcuts are always accepted, everything else is suppressed through the
// event's PreventDefault.
package keyfilter
