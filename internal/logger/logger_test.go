package logger

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in      string
		want    slog.Level
		wantErr bool
	}{
		{in: "debug", want: slog.LevelDebug},
		{in: "INFO", want: slog.LevelInfo},
		{in: "warn", want: slog.LevelWarn},
		{in: "warning", want: slog.LevelWarn},
		{in: " error ", want: slog.LevelError},
		{in: "loud", want: slog.LevelInfo, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseLevel(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNew(t *testing.T) {
	t.Run("text handler filters below level", func(t *testing.T) {
		var buf bytes.Buffer
		log := New(&buf, slog.LevelWarn, "text")

		log.Info("hidden")
		log.Warn("shown", "op", "add guest")

		out := buf.String()
		assert.NotContains(t, out, "hidden")
		assert.Contains(t, out, "msg=shown")
		assert.Contains(t, out, `op="add guest"`)
	})

	t.Run("json handler emits one object per record", func(t *testing.T) {
		var buf bytes.Buffer
		log := New(&buf, slog.LevelDebug, "json")

		log.Error("failed to persist change", "op", "save party")

		var record map[string]any
		require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
		assert.Equal(t, "ERROR", record["level"])
		assert.Equal(t, "failed to persist change", record["msg"])
		assert.Equal(t, "save party", record["op"])
	})
}
