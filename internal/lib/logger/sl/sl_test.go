package sl_test

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/UnknownOlympus/hestia/internal/lib/logger/sl"
	"github.com/stretchr/testify/assert"
)

func TestErr(t *testing.T) {
	t.Parallel()

	var logBuf bytes.Buffer // buffer for log capturing
	testLogger := slog.New(slog.NewTextHandler(&logBuf, &slog.HandlerOptions{}))

	errAttr := sl.Err(assert.AnError)
	testLogger.Warn("expected result:", errAttr)

	assert.Contains(t, logBuf.String(), assert.AnError.Error())
}

func TestNew(t *testing.T) {
	t.Parallel()

	t.Run("local logs debug as text", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer

		log := sl.New(sl.EnvLocal, &buf)
		log.Debug("debug line")

		assert.Contains(t, buf.String(), "level=DEBUG")
		assert.Contains(t, buf.String(), `msg="debug line"`)
	})

	t.Run("development skips debug and writes json", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer

		log := sl.New(sl.EnvDev, &buf)
		log.Debug("hidden")
		log.Info("shown")

		assert.NotContains(t, buf.String(), "hidden")
		assert.Contains(t, buf.String(), `"msg":"shown"`)
	})

	t.Run("production drops timestamps", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer

		log := sl.New(sl.EnvProd, &buf)
		log.Info("hidden")
		log.Warn("shown")

		assert.NotContains(t, buf.String(), "hidden")
		assert.Contains(t, buf.String(), `"msg":"shown"`)
		assert.NotContains(t, buf.String(), `"time"`)
	})

	t.Run("unknown env warns about configuration", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer

		_ = sl.New("staging", &buf)

		assert.Contains(t, buf.String(), "The env parameter was not specified")
	})
}
