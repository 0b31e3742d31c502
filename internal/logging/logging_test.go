package logging_test

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/rogerio-castellano/rental-tracker/internal/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_JSON(t *testing.T) {
	var buf bytes.Buffer
	logger := logging.New(&buf, "debug", "json")

	logger.Debug().Int("product_id", 1).Msg("product added")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "debug", entry["level"])
	assert.Equal(t, "product added", entry["message"])
	assert.EqualValues(t, 1, entry["product_id"])
	assert.Contains(t, entry, "time")
}

func TestNew_Levels(t *testing.T) {
	tests := []struct {
		level     string
		wantInfo  bool
		wantError bool
	}{
		{"info", true, true},
		{"WARN", false, true},
		{"error", false, true},
		{"disabled", false, false},
		{"", true, true},
		{"bogus", true, true},
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			var buf bytes.Buffer
			logger := logging.New(&buf, tt.level, "json")

			logger.Info().Msg("info line")
			assert.Equal(t, tt.wantInfo, strings.Contains(buf.String(), "info line"))

			logger.Error().Msg("error line")
			assert.Equal(t, tt.wantError, strings.Contains(buf.String(), "error line"))
		})
	}
}

func TestNew_Console(t *testing.T) {
	t.Setenv("NO_COLOR", "1")
	var buf bytes.Buffer
	logger := logging.New(&buf, "info", "console")

	logger.Info().Str("path", "inventory.txt").Msg("state saved")

	out := buf.String()
	assert.Contains(t, out, "state saved")
	assert.Contains(t, out, "path=inventory.txt")
	assert.False(t, json.Valid(bytes.TrimSpace(buf.Bytes())))
}
