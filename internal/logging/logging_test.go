package logger

import (
	"bytes"
	"errors"
	"io"
	"os"
	"strings"
	"testing"

	"github.com/fatih/color"
)

// capture redirects stdout and stderr while fn runs.
func capture(t *testing.T, fn func()) (stdout, stderr string) {
	t.Helper()
	color.NoColor = true

	origOut, origErr := os.Stdout, os.Stderr
	outR, outW, err := os.Pipe()
	if err != nil {
		t.Fatalf("Failed to create pipe: %v", err)
	}
	errR, errW, err := os.Pipe()
	if err != nil {
		t.Fatalf("Failed to create pipe: %v", err)
	}
	os.Stdout, os.Stderr = outW, errW

	fn()

	outW.Close()
	errW.Close()
	os.Stdout, os.Stderr = origOut, origErr

	var outBuf, errBuf bytes.Buffer
	_, _ = io.Copy(&outBuf, outR)
	_, _ = io.Copy(&errBuf, errR)
	return outBuf.String(), errBuf.String()
}

func TestLoggerQuiet(t *testing.T) {
	stdout, stderr := capture(t, func() {
		l := Logger{}
		l.Infof("info")
		l.Debugf("debug")
		l.Warnf("warn")
		l.Errorf("error")
	})

	if stdout != "" || stderr != "" {
		t.Errorf("Expected no output, got stdout=%q stderr=%q", stdout, stderr)
	}
}

func TestLoggerVerbose(t *testing.T) {
	stdout, stderr := capture(t, func() {
		l := Logger{Verbose: true}
		l.Infof("loaded %d", 3)
		l.Debugf("hidden")
		l.Warnf("careful")
	})

	if !strings.Contains(stdout, "[info] loaded 3") {
		t.Errorf("Expected info output, got %q", stdout)
	}
	if strings.Contains(stdout, "hidden") {
		t.Errorf("Debug output should be hidden in verbose mode, got %q", stdout)
	}
	if !strings.Contains(stderr, "[warn] careful") {
		t.Errorf("Expected warn output, got %q", stderr)
	}
}

func TestLoggerDebug(t *testing.T) {
	stdout, stderr := capture(t, func() {
		l := Logger{Debug: true}
		l.Debugf("details")
		l.Errorf("broken")
	})

	if !strings.Contains(stdout, "[debug] details") {
		t.Errorf("Expected debug output, got %q", stdout)
	}
	if !strings.Contains(stderr, "[error] broken") {
		t.Errorf("Expected error output, got %q", stderr)
	}
}

func TestWarnfAlways(t *testing.T) {
	_, stderr := capture(t, func() {
		Logger{}.WarnfAlways("passphrase read from %s", "environment")
	})

	if !strings.Contains(stderr, "[warn] passphrase read from environment") {
		t.Errorf("Expected warning, got %q", stderr)
	}
}

func TestErrorfAndReturnWraps(t *testing.T) {
	base := errors.New("base")
	var err error
	capture(t, func() {
		err = Logger{}.ErrorfAndReturn("loading vault: %w", base)
	})

	if !errors.Is(err, base) {
		t.Errorf("Expected returned error to wrap base, got %v", err)
	}
}
