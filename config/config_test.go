package config_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AntonStoeckl/library-loans-go/config"
)

func Test_Default_IsValidAndReproducesTheCanonicalSeed(t *testing.T) {
	// act
	cfg := config.Default()

	// assert
	require.NoError(t, cfg.Validate())
	assert.Equal(t, "email", cfg.Notifier.Channel)
	assert.True(t, cfg.Journal.Enabled)
	require.Len(t, cfg.Books, 2)
	assert.Equal(t, "978-0132350884", cfg.Books[0].ISBN)
	require.Len(t, cfg.Users, 2)
	assert.Equal(t, "João Silva", cfg.Users[0].Name)
	assert.Equal(t, config.ScenarioConfig{UserID: 1, ISBN: "978-0132350884", LoanDays: 7, ReturnAfterDays: 0}, cfg.Scenario)
}

func Test_Load_OverlaysTheFileOnTheDefaults(t *testing.T) {
	// arrange
	path := filepath.Join(t.TempDir(), "library.toml")
	content := `
[notifier]
channel = "sms"

[logging]
level = "debug"

[[books]]
title = "Dom Casmurro"
author = "Machado de Assis"
isbn = "X"

[scenario]
isbn = "X"
return_after_days = 10
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	// act
	cfg, err := config.Load(path)

	// assert
	require.NoError(t, err)
	assert.Equal(t, "sms", cfg.Notifier.Channel)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "text", cfg.Logging.Format, "unset keys keep their default")
	assert.Equal(t, []config.BookConfig{{Title: "Dom Casmurro", Author: "Machado de Assis", ISBN: "X"}}, cfg.Books)
	assert.Len(t, cfg.Users, 2, "absent tables keep their default")
	assert.Equal(t, config.ScenarioConfig{UserID: 1, ISBN: "X", LoanDays: 7, ReturnAfterDays: 10}, cfg.Scenario)
}

func Test_Load_FailsForMissingFile(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "missing.toml"))

	assert.ErrorIs(t, err, config.ErrReadingConfigFailed)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func Test_Parse_Failures(t *testing.T) {
	testCases := []struct {
		name     string
		content  string
		expected error
	}{
		{name: "broken TOML", content: `[notifier`, expected: config.ErrParsingConfigFailed},
		{name: "unknown key", content: "[notifier]\ncolor = \"blue\"", expected: config.ErrParsingConfigFailed},
		{name: "wrong type", content: "[journal]\nenabled = \"yes\"", expected: config.ErrParsingConfigFailed},
		{name: "unknown channel", content: "[notifier]\nchannel = \"pigeon\"", expected: config.ErrInvalidChannel},
		{name: "unknown level", content: "[logging]\nlevel = \"loud\"", expected: config.ErrInvalidLogLevel},
		{name: "unknown format", content: "[logging]\nformat = \"xml\"", expected: config.ErrInvalidLogFormat},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := config.Parse([]byte(tc.content))

			assert.ErrorIs(t, err, tc.expected)
		})
	}
}

func Test_Validate_ReportsAllProblems(t *testing.T) {
	// arrange
	cfg := config.Default()
	cfg.Notifier.Channel = "email,fax"
	cfg.Logging.Level = "verbose"

	// act
	err := cfg.Validate()

	// assert
	assert.ErrorIs(t, err, config.ErrInvalidChannel)
	assert.ErrorIs(t, err, config.ErrInvalidLogLevel)
	assert.NotErrorIs(t, err, config.ErrInvalidLogFormat)
}

func Test_Marshal_RoundTrips(t *testing.T) {
	// arrange
	cfg := config.Default()
	cfg.Scenario.ReturnAfterDays = 10

	// act
	data, err := cfg.Marshal()
	require.NoError(t, err)
	parsed, err := config.Parse(data)

	// assert
	require.NoError(t, err)
	assert.Equal(t, cfg, parsed)
}

func Test_NewLogger_RespectsLevelAndFormat(t *testing.T) {
	// arrange
	var buf bytes.Buffer
	logger := config.NewLogger(config.LoggingConfig{Level: "info", Format: "json"}, &buf)

	// act
	logger.Debug("hidden")
	logger.Info("shown", "isbn", "X")

	// assert
	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), `"msg":"shown","isbn":"X"`)
}

func Test_NewLogger_DefaultsToTextAtWarn(t *testing.T) {
	var buf bytes.Buffer
	logger := config.NewLogger(config.LoggingConfig{}, &buf)

	logger.Info("hidden")
	logger.Warn("shown")

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "level=WARN msg=shown")
}
