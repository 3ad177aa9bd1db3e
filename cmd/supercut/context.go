package main

import (
	"log/slog"
	"os"
	"strings"
	"sync"

	"supercut/internal/config"
	"supercut/internal/logging"
)

type commandContext struct {
	configFlag   *string
	cacheDirFlag *string
	languageFlag *string
	externalFlag *bool

	configOnce sync.Once
	config     *config.Config
	configErr  error

	loggerOnce sync.Once
	logger     *slog.Logger
}

func newCommandContext(configFlag, cacheDirFlag, languageFlag *string, externalFlag *bool) *commandContext {
	return &commandContext{
		configFlag:   configFlag,
		cacheDirFlag: cacheDirFlag,
		languageFlag: languageFlag,
		externalFlag: externalFlag,
	}
}

func (c *commandContext) ensureConfig() (*config.Config, error) {
	c.configOnce.Do(func() {
		var path string
		if c.configFlag != nil {
			path = strings.TrimSpace(*c.configFlag)
		}
		cfg, _, _, err := config.Load(path)
		if err != nil {
			c.configErr = err
			return
		}
		if err := c.applyFlagOverrides(cfg); err != nil {
			c.configErr = err
			return
		}
		if err := cfg.EnsureDirectories(); err != nil {
			c.configErr = err
			return
		}
		c.config = cfg
	})
	return c.config, c.configErr
}

// applyFlagOverrides layers persistent flags on top of the loaded file so
// command behavior follows the invocation, not just the config on disk.
func (c *commandContext) applyFlagOverrides(cfg *config.Config) error {
	if c.cacheDirFlag != nil && strings.TrimSpace(*c.cacheDirFlag) != "" {
		expanded, err := config.ExpandPath(strings.TrimSpace(*c.cacheDirFlag))
		if err != nil {
			return err
		}
		cfg.Paths.CacheDir = expanded
	}
	if c.languageFlag != nil && strings.TrimSpace(*c.languageFlag) != "" {
		cfg.Subtitles.Language = strings.TrimSpace(*c.languageFlag)
		if err := cfg.Validate(); err != nil {
			return err
		}
	}
	if c.externalFlag != nil && *c.externalFlag {
		cfg.Subtitles.External = true
	}
	return nil
}

func (c *commandContext) ensureLogger() *slog.Logger {
	c.loggerOnce.Do(func() {
		cfg, err := c.ensureConfig()
		if err != nil {
			c.logger = logging.NewNop()
			return
		}
		logger, err := logging.New(logging.Options{
			Level:  cfg.Logging.Level,
			Format: cfg.Logging.Format,
			Writer: os.Stderr,
		})
		if err != nil {
			c.logger = logging.NewNop()
			return
		}
		c.logger = logger
	})
	return c.logger
}
