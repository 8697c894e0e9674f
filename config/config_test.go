package config

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"
)

type ConfigSuite struct {
	suite.Suite
}

func TestConfigSuite(t *testing.T) {
	suite.Run(t, new(ConfigSuite))
}

func (s *ConfigSuite) TestContextHelpersAndKeyString() {
	ctx := context.Background()
	cfg := ConfigurationDefault{DefaultLocale: "fr"}

	s.Equal("localize/config/configurationKey", ctxKeyConfiguration.String())

	ctx = ToContext(ctx, cfg)
	fromCtx := FromContext[ConfigurationDefault](ctx)
	s.Equal("fr", fromCtx.DefaultLocale)

	missing := FromContext[*ConfigurationDefault](context.Background())
	s.Nil(missing)
}

func (s *ConfigSuite) TestFromEnvDefaults() {
	cfg, err := FromEnv[ConfigurationDefault]()
	s.Require().NoError(err)

	s.Equal("locales", cfg.TranslationsFolder())
	s.Equal("en", cfg.FallbackLocale())
	s.Equal("yaml", cfg.TranslationsFileFormat())
	s.Equal("info", cfg.LoggingLevel())
}

func (s *ConfigSuite) TestFromEnvOverrides() {
	s.T().Setenv("TRANSLATIONS_DIR", "i18n")
	s.T().Setenv("DEFAULT_LOCALE", "sw")
	s.T().Setenv("TRANSLATIONS_FORMAT", "toml")
	s.T().Setenv("LOG_LEVEL", "debug")

	cfg, err := FromEnv[ConfigurationDefault]()
	s.Require().NoError(err)

	s.Equal("i18n", cfg.TranslationsFolder())
	s.Equal("sw", cfg.FallbackLocale())
	s.Equal("toml", cfg.TranslationsFileFormat())
	s.Equal("debug", cfg.LoggingLevel())
}

func (s *ConfigSuite) TestFillEnv() {
	s.T().Setenv("DEFAULT_LOCALE", "de")

	var cfg ConfigurationDefault
	s.Require().NoError(FillEnv(&cfg))
	s.Equal("de", cfg.FallbackLocale())
}
