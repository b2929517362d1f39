package logger

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewWithFormat_JSON(t *testing.T) {
	var buf bytes.Buffer
	l := NewWithFormat(&buf, 0, "json")

	l.Info("review created", "book_key", "OL1W")

	var rec map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
	assert.Equal(t, "review created", rec["msg"])
	assert.Equal(t, "OL1W", rec["book_key"])
}

func TestNewWithFormat_LevelFilter(t *testing.T) {
	var buf bytes.Buffer
	l := NewWithFormat(&buf, 4, "text")

	l.Info("dropped")
	assert.Empty(t, buf.String())

	l.Warn("kept")
	assert.Contains(t, buf.String(), "kept")
}
