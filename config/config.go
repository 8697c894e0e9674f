package config

import (
	"context"

	"github.com/caarlos0/env/v11"
)

type contextKey string

func (c contextKey) String() string {
	return "localize/config/" + string(c)
}

const ctxKeyConfiguration = contextKey("configurationKey")

// ToContext adds configuration to the current supplied context.
func ToContext(ctx context.Context, config any) context.Context {
	return context.WithValue(ctx, ctxKeyConfiguration, config)
}

// FromContext extracts configuration from the supplied context if any exist.
func FromContext[T any](ctx context.Context) T {
	if cfg, ok := ctx.Value(ctxKeyConfiguration).(T); ok {
		return cfg
	}
	var zero T
	return zero
}

// FromEnv convenience method to process configs.
func FromEnv[T any]() (T, error) {
	return env.ParseAs[T]()
}

// FillEnv convenience method to fill a config object with environment data.
func FillEnv(v any) error {
	return env.Parse(v)
}

// ConfigurationDefault carries the translation settings a host application
// typically sources from its environment.
type ConfigurationDefault struct {
	TranslationsDir    string `envDefault:"locales" env:"TRANSLATIONS_DIR"    yaml:"translations_dir"`
	DefaultLocale      string `envDefault:"en"      env:"DEFAULT_LOCALE"      yaml:"default_locale"`
	TranslationsFormat string `envDefault:"yaml"    env:"TRANSLATIONS_FORMAT" yaml:"translations_format"`

	LogLevel string `envDefault:"info" env:"LOG_LEVEL" yaml:"log_level"`
}

// ConfigurationTranslations is implemented by configurations that carry
// translation settings.
type ConfigurationTranslations interface {
	TranslationsFolder() string
	FallbackLocale() string
	TranslationsFileFormat() string
}

// ConfigurationLogLevel is implemented by configurations that carry a log
// level.
type ConfigurationLogLevel interface {
	LoggingLevel() string
}

// TranslationsFolder returns the directory translation files live in.
func (c *ConfigurationDefault) TranslationsFolder() string {
	return c.TranslationsDir
}

// FallbackLocale returns the locale used when a message misses the active
// locale.
func (c *ConfigurationDefault) FallbackLocale() string {
	return c.DefaultLocale
}

// TranslationsFileFormat returns the translation file format.
func (c *ConfigurationDefault) TranslationsFileFormat() string {
	return c.TranslationsFormat
}

// LoggingLevel returns the log level.
func (c *ConfigurationDefault) LoggingLevel() string {
	return c.LogLevel
}
