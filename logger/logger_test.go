package logger

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitFallsBackToInfo(t *testing.T) {
	Init("nonsense", false)
	assert.Equal(t, logrus.InfoLevel, logrus.GetLevel())

	Init("debug", false)
	assert.Equal(t, logrus.DebugLevel, logrus.GetLevel())
}

func TestLogJSON(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "logs")
	require.NoError(t, LogJSON(dir, "abc_spans", map[string]int{"spans": 3}))

	raw, err := os.ReadFile(filepath.Join(dir, "abc_spans.json"))
	require.NoError(t, err)

	var got map[string]int
	require.NoError(t, json.Unmarshal(raw, &got))
	assert.Equal(t, 3, got["spans"])
}
