// Package localize is a small translation lookup library. It loads one
// translation table per locale from structured text files, resolves
// dot-separated message keys against the active locale with fallback to a
// default locale and finally to the key itself, and substitutes named
// {placeholder} tokens with caller supplied values.
package localize

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/pitabwire/util"
)

const (
	defaultTranslationsDir = "locales"
	defaultLocale          = "en"
)

// Table holds one locale's translations: string keys mapping to nested
// tables or to leaf message templates. Tables are never mutated after load.
type Table map[string]any

// Translator resolves message keys against cached per-locale tables.
//
// A single RWMutex guards the locale cache and the active locale so a
// Translator can be shared across goroutines. Cache entries are inserted
// under the write lock and never replaced, so readers only ever observe
// complete tables.
type Translator struct {
	mu sync.RWMutex

	loader        Loader
	defaultLocale string
	currentLocale string
	cache         map[string]Table
	log           *util.LogEntry

	// construction knobs, consumed by New before the loader is built
	translationsDir string
	format          string
	unmarshalFuncs  map[string]UnmarshalFunc
}

// New creates a Translator and eagerly loads the default locale's table.
// Construction fails with a *LoadError when that table cannot be read or
// parsed; no partially initialised Translator is returned.
func New(ctx context.Context, opts ...Option) (*Translator, error) {
	t := &Translator{
		translationsDir: defaultTranslationsDir,
		defaultLocale:   defaultLocale,
		format:          FormatYAML,
		unmarshalFuncs:  defaultUnmarshalFuncs(),
		cache:           make(map[string]Table),
		log:             util.Log(ctx),
	}

	for _, opt := range opts {
		opt(ctx, t)
	}

	t.currentLocale = t.defaultLocale

	if t.loader == nil {
		unmarshal, ok := t.unmarshalFuncs[t.format]
		if !ok {
			return nil, fmt.Errorf("localize: no unmarshal function registered for format %q", t.format)
		}
		t.loader = NewFileLoader(t.translationsDir, t.format, unmarshal)
	}

	if _, err := t.load(t.defaultLocale); err != nil {
		return nil, err
	}

	return t, nil
}

// DefaultLocale returns the locale used as the fallback for lookups.
func (t *Translator) DefaultLocale() string {
	return t.defaultLocale
}

// CurrentLocale returns the locale active for lookups.
func (t *Translator) CurrentLocale() string {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.currentLocale
}

// SetLocale makes locale the active locale and ensures its table is loaded.
// The active locale is updated before the load is attempted: on a failed
// load the switch sticks and lookups against the new locale miss, falling
// through to the default locale and then to the key. Callers that want the
// previous locale back on failure must restore it themselves.
func (t *Translator) SetLocale(locale string) error {
	t.mu.Lock()
	t.currentLocale = locale
	t.mu.Unlock()

	_, err := t.load(locale)
	return err
}

// load returns the cached table for locale, fetching it through the loader
// on first use. A locale is read at most once per Translator lifetime;
// failures propagate and nothing is cached.
func (t *Translator) load(locale string) (Table, error) {
	t.mu.RLock()
	table, ok := t.cache[locale]
	t.mu.RUnlock()
	if ok {
		return table, nil
	}

	t.mu.Lock()
	defer t.mu.Unlock()
	if table, ok = t.cache[locale]; ok {
		return table, nil
	}

	table, err := t.loader.Load(locale)
	if err != nil {
		return nil, err
	}
	t.cache[locale] = table

	t.log.WithField("locale", locale).Debug("loaded translations")
	return table, nil
}

// Translate resolves key for the active locale.
func (t *Translator) Translate(key string) string {
	return t.TranslateWithMap(key, nil)
}

// TranslateWithMap resolves key for the active locale and substitutes the
// supplied variables into the message. Lookup misses the active locale's
// table, then the default locale's table, then resolves to the key itself,
// unchanged. Substitution is applied entry by entry over the accumulating
// string, so when a value's text collides with another placeholder name the
// outcome depends on map iteration order.
func (t *Translator) TranslateWithMap(key string, variables map[string]any) string {
	t.mu.RLock()
	locale := t.currentLocale
	t.mu.RUnlock()

	return t.translate(locale, key, variables)
}

// TranslateContext behaves like TranslateWithMap but prefers the first
// language found in ctx (see ToContext) over the active locale. Only cached
// tables are consulted, a context language never triggers a load.
func (t *Translator) TranslateContext(ctx context.Context, key string, variables map[string]any) string {
	var locale string
	if languages := FromContext(ctx); len(languages) > 0 {
		locale = languages[0]
	}
	if locale == "" {
		t.mu.RLock()
		locale = t.currentLocale
		t.mu.RUnlock()
	}

	return t.translate(locale, key, variables)
}

func (t *Translator) translate(locale, key string, variables map[string]any) string {
	t.mu.RLock()
	message, ok := lookup(t.cache[locale], key)
	if !ok && locale != t.defaultLocale {
		message, ok = lookup(t.cache[t.defaultLocale], key)
	}
	t.mu.RUnlock()

	if !ok {
		t.log.WithField("locale", locale).WithField("key", key).
			Debug("no translation found, returning key")
		return key
	}

	return substitute(t.log, message, variables)
}

// lookup walks the dot-separated key through table. It succeeds only when
// every segment descends into a nested table and the final segment lands on
// a string leaf; anything else is a miss.
func lookup(table Table, key string) (string, bool) {
	if table == nil {
		return "", false
	}

	var node any = map[string]any(table)
	for _, segment := range strings.Split(key, ".") {
		nested, ok := node.(map[string]any)
		if !ok {
			return "", false
		}
		if node, ok = nested[segment]; !ok {
			return "", false
		}
	}

	message, ok := node.(string)
	return message, ok
}

// substitute replaces placeholders in message with the supplied variables.
// For each entry the quoted forms '{name}' and "{name}" are replaced first,
// dropping the quotes, then the bare {name}. Any panic while rendering a
// value yields the message unsubstituted rather than an error.
func substitute(log *util.LogEntry, message string, variables map[string]any) (result string) {
	result = message
	defer func() {
		if r := recover(); r != nil {
			log.WithField("cause", r).Warn("placeholder substitution failed, returning message unsubstituted")
			result = message
		}
	}()

	for name, value := range variables {
		rendered := fmt.Sprintf("%v", value)
		result = strings.ReplaceAll(result, "'{"+name+"}'", rendered)
		result = strings.ReplaceAll(result, `"{`+name+`}"`, rendered)
		result = strings.ReplaceAll(result, "{"+name+"}", rendered)
	}

	return result
}
