package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

type Duration struct{ time.Duration }

// [Duration] implements [json.Marshaler]
func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

func (d *Duration) UnmarshalJSON(data []byte) error {
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	switch value := v.(type) {
	case float64:
		d.Duration = time.Duration(value)
		return nil
	case string:
		var err error
		d.Duration, err = time.ParseDuration(value)
		if err != nil {
			return err
		}
		return nil

	default:
		return errors.New("invalid duration")
	}
}

type BoardConfig struct {
	Side  int `json:"side"`
	Mines int `json:"mines"`
}

type SessionConfig struct {
	TTL           Duration `json:"ttl"`
	SweepInterval Duration `json:"sweep_interval"`
	Secret        string   `json:"secret"`
}

type LogConfig struct {
	Level      string `json:"level"`
	File       string `json:"file"`
	MaxSize    int    `json:"max_size_mb"`
	MaxBackups int    `json:"max_backups"`
	MaxAge     int    `json:"max_age_days"`
}

type Config struct {
	Mode    string        `json:"mode"`
	Addr    string        `json:"addr"`
	Board   BoardConfig   `json:"board"`
	Session SessionConfig `json:"session"`
	Log     LogConfig     `json:"log"`
}

func Default() *Config {
	return &Config{
		Mode: "development",
		Addr: ":8080",
		Board: BoardConfig{
			Side:  9,
			Mines: 10,
		},
		Session: SessionConfig{
			TTL:           Duration{time.Hour},
			SweepInterval: Duration{time.Minute},
		},
		Log: LogConfig{
			MaxSize:    50,
			MaxBackups: 3,
			MaxAge:     28,
		},
	}
}

// Load builds the configuration from defaults, the JSON file at path (if not
// empty) and MINEFIELD_* environment variables, in that order. A .env file in
// the working directory is loaded into the environment first.
func Load(path string) (*Config, error) {
	_ = godotenv.Load()

	config := Default()
	if path != "" {
		if err := ReadConfig(path, config); err != nil {
			return nil, fmt.Errorf("unable to read config %s: %w", path, err)
		}
	}
	if err := config.applyEnv(); err != nil {
		return nil, err
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}

func ReadConfig(path string, config *Config) error {
	if b, err := os.ReadFile(path); err != nil {
		return err
	} else {
		return json.Unmarshal(b, config)
	}
}

func lookupInt(key string, dst *int) error {
	s, ok := os.LookupEnv(key)
	if !ok {
		return nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return fmt.Errorf("%s must be an int: %w", key, err)
	}
	*dst = n
	return nil
}

func lookupString(key string, dst *string) {
	if s, ok := os.LookupEnv(key); ok {
		*dst = s
	}
}

func (c *Config) applyEnv() error {
	lookupString("MINEFIELD_MODE", &c.Mode)
	lookupString("MINEFIELD_ADDR", &c.Addr)
	lookupString("MINEFIELD_SECRET", &c.Session.Secret)
	lookupString("MINEFIELD_LOG_LEVEL", &c.Log.Level)
	lookupString("MINEFIELD_LOG_FILE", &c.Log.File)
	if err := lookupInt("MINEFIELD_SIDE", &c.Board.Side); err != nil {
		return err
	}
	if err := lookupInt("MINEFIELD_MINES", &c.Board.Mines); err != nil {
		return err
	}
	if s, ok := os.LookupEnv("MINEFIELD_SESSION_TTL"); ok {
		d, err := time.ParseDuration(s)
		if err != nil {
			return fmt.Errorf("MINEFIELD_SESSION_TTL must be a duration: %w", err)
		}
		c.Session.TTL = Duration{d}
	}
	return nil
}

func (c Config) Validate() error {
	if c.Board.Side < 1 {
		return fmt.Errorf("board side must be positive, got %d", c.Board.Side)
	}
	if c.Board.Mines < 0 || c.Board.Mines > c.Board.Side*c.Board.Side {
		return fmt.Errorf(
			"cannot place %d mines on a %dx%d board",
			c.Board.Mines, c.Board.Side, c.Board.Side,
		)
	}
	if c.Session.TTL.Duration <= 0 {
		return fmt.Errorf("session ttl must be positive")
	}
	if c.Session.SweepInterval.Duration <= 0 {
		return fmt.Errorf("session sweep interval must be positive")
	}
	return nil
}

func (c Config) Fields() logrus.Fields {
	return map[string]any{
		"mode":                   c.Mode,
		"addr":                   c.Addr,
		"board_side":             c.Board.Side,
		"board_mines":            c.Board.Mines,
		"session_ttl":            c.Session.TTL.Duration.String(),
		"session_sweep_interval": c.Session.SweepInterval.Duration.String(),
		"session_secret_set":     c.Session.Secret != "",
		"log_level":              c.Log.Level,
		"log_file":               c.Log.File,
	}
}

func (c Config) Production() bool {
	return c.Mode == "production"
}

func (c Config) Development() bool {
	return c.Mode != "production"
}
