package sanitizer

// Apply runs value through transforms from left to right.
func Apply[T any](value T, transforms ...func(T) T) T {
	for _, transform := range transforms {
		value = transform(value)
	}
	return value
}

// Compose bundles transforms into one function for reuse, e.g. as the
// input handler of a form field.
func Compose[T any](transforms ...func(T) T) func(T) T {
	return func(value T) T {
		return Apply(value, transforms...)
	}
}
