// Package must turns (value, error) results into values, panicking on
// a non-nil error. It is meant for tests, demos and setup code where an
// error can only mean a bug.
package must

// Do panics if err is not nil.
func Do(err error) {
	if err != nil {
		panic(err)
	}
}

// Get returns v, or panics if err is not nil.
func Get[T any](v T, err error) T {
	Do(err)
	return v
}
