package config

import (
	"bytes"
	"errors"
	"os"
	"slices"
	"strings"

	"github.com/pelletier/go-toml/v2"

	"github.com/AntonStoeckl/library-loans-go/notifier"
)

var (
	// ErrReadingConfigFailed is returned when the config file cannot be read.
	ErrReadingConfigFailed = errors.New("reading config file failed")

	// ErrParsingConfigFailed is returned when the config file is not valid TOML for this schema.
	ErrParsingConfigFailed = errors.New("parsing config file failed")

	// ErrInvalidLogLevel is returned when logging.level is not one of debug, info, warn, error.
	ErrInvalidLogLevel = errors.New("invalid log level")

	// ErrInvalidLogFormat is returned when logging.format is not one of text, json.
	ErrInvalidLogFormat = errors.New("invalid log format")

	// ErrInvalidChannel is returned when notifier.channel names an unknown channel.
	ErrInvalidChannel = errors.New("invalid notifier channel")
)

// Config is the complete configuration of the library demo.
type Config struct {
	Notifier NotifierConfig `toml:"notifier"`
	Logging  LoggingConfig  `toml:"logging"`
	Journal  JournalConfig  `toml:"journal"`
	Books    []BookConfig   `toml:"books"`
	Users    []UserConfig   `toml:"users"`
	Scenario ScenarioConfig `toml:"scenario"`
}

// NotifierConfig selects the notification channel, see notifier.Build.
type NotifierConfig struct {
	Channel string `toml:"channel"`
}

// LoggingConfig configures the slog logger.
type LoggingConfig struct {
	Level  string `toml:"level"`
	Format string `toml:"format"`
}

// JournalConfig switches the circulation journal on or off.
type JournalConfig struct {
	Enabled bool `toml:"enabled"`
}

// BookConfig is one book of the seed catalog.
type BookConfig struct {
	Title  string `toml:"title"`
	Author string `toml:"author"`
	ISBN   string `toml:"isbn"`
}

// UserConfig is one user of the seed registry.
type UserConfig struct {
	Name string `toml:"name"`
	ID   int    `toml:"id"`
}

// ScenarioConfig describes the demo loan: who borrows which book for how long,
// and how many days later it is returned.
type ScenarioConfig struct {
	UserID          int    `toml:"user_id"`
	ISBN            string `toml:"isbn"`
	LoanDays        int    `toml:"loan_days"`
	ReturnAfterDays int    `toml:"return_after_days"`
}

const (
	// LevelDebug logs lookups, operations, rejections and failures.
	LevelDebug = "debug"

	// LevelInfo logs successful operations, rejections and failures.
	LevelInfo = "info"

	// LevelWarn logs rejected operations and failures. It is the default.
	LevelWarn = "warn"

	// LevelError logs failures only.
	LevelError = "error"

	// FormatText selects slog's key=value text handler. It is the default.
	FormatText = "text"

	// FormatJSON selects slog's JSON handler.
	FormatJSON = "json"
)

// Default returns the canonical configuration.
func Default() Config {
	return Config{
		Notifier: NotifierConfig{Channel: notifier.ChannelEmail},
		Logging:  LoggingConfig{Level: LevelWarn, Format: FormatText},
		Journal:  JournalConfig{Enabled: true},
		Books: []BookConfig{
			{Title: "Clean Code", Author: "Robert C. Martin", ISBN: "978-0132350884"},
			{Title: "Design Patterns", Author: "Erich Gamma", ISBN: "978-0201633610"},
		},
		Users: []UserConfig{
			{Name: "João Silva", ID: 1},
			{Name: "Maria Oliveira", ID: 2},
		},
		Scenario: ScenarioConfig{
			UserID:          1,
			ISBN:            "978-0132350884",
			LoanDays:        7,
			ReturnAfterDays: 0,
		},
	}
}

// Load reads the TOML file at path on top of Default and validates the result.
// Unknown keys are rejected so typos do not go unnoticed.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, errors.Join(ErrReadingConfigFailed, err)
	}

	return Parse(data)
}

// Parse decodes TOML data on top of Default and validates the result.
func Parse(data []byte) (Config, error) {
	defaults := Default()
	cfg := defaults
	cfg.Books, cfg.Users = nil, nil

	decoder := toml.NewDecoder(bytes.NewReader(data))
	decoder.DisallowUnknownFields()

	if err := decoder.Decode(&cfg); err != nil {
		return Config{}, errors.Join(ErrParsingConfigFailed, err)
	}

	if cfg.Books == nil {
		cfg.Books = defaults.Books
	}

	if cfg.Users == nil {
		cfg.Users = defaults.Users
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Validate checks the notifier channel, the log level and the log format.
// Seed data and the scenario are not validated, the Service accepts anything.
func (c Config) Validate() error {
	var errs []error

	for _, channel := range strings.Split(c.Notifier.Channel, ",") {
		if !slices.Contains(notifier.Channels(), strings.ToLower(strings.TrimSpace(channel))) {
			errs = append(errs, errors.Join(ErrInvalidChannel, errors.New(channel)))
		}
	}

	if !slices.Contains([]string{LevelDebug, LevelInfo, LevelWarn, LevelError}, strings.ToLower(c.Logging.Level)) {
		errs = append(errs, errors.Join(ErrInvalidLogLevel, errors.New(c.Logging.Level)))
	}

	if !slices.Contains([]string{FormatText, FormatJSON}, strings.ToLower(c.Logging.Format)) {
		errs = append(errs, errors.Join(ErrInvalidLogFormat, errors.New(c.Logging.Format)))
	}

	return errors.Join(errs...)
}

// Marshal renders the configuration as TOML, e.g. to print the effective configuration.
func (c Config) Marshal() ([]byte, error) {
	return toml.Marshal(c)
}
