package localize

import (
	"context"

	"github.com/pitabwire/util"

	"github.com/pitabwire/localize/config"
)

// Option configures a Translator before its default locale is loaded.
type Option func(ctx context.Context, t *Translator)

// WithTranslationsDir sets the directory translation files are read from.
func WithTranslationsDir(dir string) Option {
	return func(_ context.Context, t *Translator) {
		t.translationsDir = dir
	}
}

// WithDefaultLocale sets the fallback locale, which is also the active
// locale until SetLocale is called.
func WithDefaultLocale(locale string) Option {
	return func(_ context.Context, t *Translator) {
		t.defaultLocale = locale
	}
}

// WithFormat selects the translation file format, one of the Format
// constants or a format registered via WithUnmarshalFunc.
func WithFormat(format string) Option {
	return func(_ context.Context, t *Translator) {
		t.format = format
	}
}

// WithUnmarshalFunc registers fn as the deserializer for format and selects
// that format.
func WithUnmarshalFunc(format string, fn UnmarshalFunc) Option {
	return func(_ context.Context, t *Translator) {
		t.unmarshalFuncs[format] = fn
		t.format = format
	}
}

// WithLoader replaces the file based loader entirely. The translations
// directory and format options are ignored when a loader is supplied.
func WithLoader(loader Loader) Option {
	return func(_ context.Context, t *Translator) {
		t.loader = loader
	}
}

// WithLogger overrides the logger picked up from the construction context.
func WithLogger(log *util.LogEntry) Option {
	return func(_ context.Context, t *Translator) {
		t.log = log
	}
}

// WithConfig applies environment driven configuration, see config.FromEnv.
func WithConfig(cfg config.ConfigurationTranslations) Option {
	return func(ctx context.Context, t *Translator) {
		if dir := cfg.TranslationsFolder(); dir != "" {
			t.translationsDir = dir
		}
		if locale := cfg.FallbackLocale(); locale != "" {
			t.defaultLocale = locale
		}
		if format := cfg.TranslationsFileFormat(); format != "" {
			t.format = format
		}

		logCfg, ok := cfg.(config.ConfigurationLogLevel)
		if !ok {
			return
		}
		logLevel, err := util.ParseLevel(logCfg.LoggingLevel())
		if err != nil {
			return
		}
		t.log = util.NewLogger(ctx, util.WithLogLevel(logLevel))
	}
}
