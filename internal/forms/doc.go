// Package forms serves the company registration form rules over HTTP so
// submissions are checked with the same rules the browser applies.
//
// Validation messages are rendered in the request locale, picked from the
// "lang" cookie, the "lang" query parameter or Accept-Language, and default
// to Russian. Translations are embedded from locales/*.yaml.
package forms
