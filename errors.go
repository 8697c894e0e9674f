package localize

import "fmt"

// LoadError reports a locale whose translation file could not be found, read
// or parsed. It surfaces from New for the default locale and from SetLocale
// for any other locale; lookups never produce it.
type LoadError struct {
	Locale string
	Path   string
	Err    error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("localize: load locale %q from %s: %v", e.Locale, e.Path, e.Err)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}
