package logging

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/snowzach/rotatefilehook"

	"github.com/vancomm/minefield/internal/config"
)

// Setup configures log for the given mode: debug level and colours in
// development, info level otherwise. An explicit level in the config wins.
// When a log file is configured, entries are also written there as JSON with
// size based rotation.
func Setup(log *logrus.Logger, c *config.Config) error {
	level := logrus.InfoLevel
	if c.Development() {
		level = logrus.DebugLevel
	}
	if c.Log.Level != "" {
		var err error
		level, err = logrus.ParseLevel(c.Log.Level)
		if err != nil {
			return fmt.Errorf("invalid log level: %w", err)
		}
	}
	log.SetLevel(level)

	log.SetFormatter(&logrus.TextFormatter{
		ForceColors:   c.Development(),
		FullTimestamp: true,
	})

	if c.Log.File == "" {
		return nil
	}

	hook, err := rotatefilehook.NewRotateFileHook(rotatefilehook.RotateFileConfig{
		Filename:   c.Log.File,
		MaxSize:    c.Log.MaxSize,
		MaxBackups: c.Log.MaxBackups,
		MaxAge:     c.Log.MaxAge,
		Level:      level,
		Formatter:  &logrus.JSONFormatter{},
	})
	if err != nil {
		return fmt.Errorf("unable to open log file %s: %w", c.Log.File, err)
	}
	log.AddHook(hook)

	return nil
}
