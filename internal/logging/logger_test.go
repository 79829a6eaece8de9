package logging

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"

	"github.com/debtplan/payoff-engine/internal/calculation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var _ calculation.Logger = (*Logger)(nil)

func TestTextLoggerRespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	l := New(Config{Level: slog.LevelWarn, Component: "engine", Output: &buf})

	l.Debugf("hidden %d", 1)
	l.Infof("hidden %d", 2)
	l.Warnf("variant %s dropped", "all/minimum/snowball")

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "variant all/minimum/snowball dropped")
	assert.Contains(t, out, "component=engine")
	assert.Contains(t, out, "level=WARN")
}

func TestJSONLogger(t *testing.T) {
	var buf bytes.Buffer
	l := New(Config{Level: slog.LevelDebug, Format: "json", Component: "engine", Output: &buf})
	l.Errorf("balance %d below zero", -3)

	var rec map[string]any
	require.NoError(t, json.Unmarshal([]byte(strings.TrimSpace(buf.String())), &rec))
	assert.Equal(t, "ERROR", rec["level"])
	assert.Equal(t, "balance -3 below zero", rec["msg"])
	assert.Equal(t, "engine", rec["component"])
}

func TestWithComponent(t *testing.T) {
	var buf bytes.Buffer
	l := New(Config{Level: slog.LevelInfo, Output: &buf}).WithComponent("cli")
	l.Infof("ready")
	assert.Contains(t, buf.String(), "component=cli")
}

func TestParseLevel(t *testing.T) {
	lvl, err := ParseLevel("DEBUG")
	require.NoError(t, err)
	assert.Equal(t, slog.LevelDebug, lvl)

	lvl, err = ParseLevel("")
	require.NoError(t, err)
	assert.Equal(t, slog.LevelWarn, lvl)

	_, err = ParseLevel("chatty")
	assert.Error(t, err)
}
