package sanitizer

import "strings"

// NormalizeEmail trims and lowercases an address and collapses repeated dots
// in the local part. Values that are not of the form local@domain are only
// trimmed and lowercased.
func NormalizeEmail(email string) string {
	email = strings.ToLower(strings.TrimSpace(email))

	local, domain, ok := strings.Cut(email, "@")
	if !ok || strings.Contains(domain, "@") {
		return email
	}

	local = dotRegex.ReplaceAllString(local, ".")
	local = strings.Trim(local, ".")
	return local + "@" + domain
}

// SingleLine trims s and replaces every whitespace run, newlines included,
// with a single space.
func SingleLine(s string) string {
	return strings.TrimSpace(whitespaceRegex.ReplaceAllString(s, " "))
}
