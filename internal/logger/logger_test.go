package logger

import (
	"bytes"
	"os"
	"strings"
	"testing"
)

func TestLogger(t *testing.T) {
	var buf bytes.Buffer
	SetOutput(&buf)
	defer SetOutput(os.Stderr)

	t.Run("DefaultLevelSuppressesInfo", func(t *testing.T) {
		buf.Reset()
		Init(false)

		Debug("debug message")
		Info("info message")
		Warn("warn message")
		Error("error message")

		out := buf.String()
		if strings.Contains(out, "debug message") {
			t.Error("debug should be suppressed by default")
		}
		if strings.Contains(out, "info message") {
			t.Error("info should be suppressed by default")
		}
		if !strings.Contains(out, "[WARN]") || !strings.Contains(out, "warn message") {
			t.Error("warn should always be shown")
		}
		if !strings.Contains(out, "[ERROR]") || !strings.Contains(out, "error message") {
			t.Error("error should always be shown")
		}
	})

	t.Run("VerboseEnablesAllLevels", func(t *testing.T) {
		buf.Reset()
		Init(true)

		Debug("verbose debug")
		Info("verbose info")

		out := buf.String()
		if !strings.Contains(out, "[DEBUG]") || !strings.Contains(out, "verbose debug") {
			t.Error("debug should be shown in verbose mode")
		}
		if !strings.Contains(out, "[INFO]") || !strings.Contains(out, "verbose info") {
			t.Error("info should be shown in verbose mode")
		}
	})

	t.Run("Formatting", func(t *testing.T) {
		buf.Reset()
		Init(false)

		Warn("site %s ready", "a.com")
		if !strings.Contains(buf.String(), "site a.com ready") {
			t.Errorf("format args not applied: %q", buf.String())
		}
	})

	t.Run("FieldsSorted", func(t *testing.T) {
		buf.Reset()
		Init(true)

		InfoFields("provisioned", map[string]interface{}{
			"sites":  2,
			"domain": "a.com",
		})

		out := buf.String()
		if !strings.Contains(out, "provisioned domain=a.com sites=2") {
			t.Errorf("fields not sorted or missing: %q", out)
		}
	})
}

func TestLevelString(t *testing.T) {
	cases := map[Level]string{
		LevelDebug: "DEBUG",
		LevelInfo:  "INFO",
		LevelWarn:  "WARN",
		LevelError: "ERROR",
		Level(99):  "UNKNOWN",
	}
	for level, want := range cases {
		if got := level.String(); got != want {
			t.Errorf("Level(%d).String() = %q, want %q", level, got, want)
		}
	}
}
