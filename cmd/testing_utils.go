package cmd

import (
	"bytes"
	"io"
	"log"
	"os"
	"path/filepath"
	"testing"

	"github.com/PolarWolf314/yap/internal/configs"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

const testPassphrase = "correct horse"

// setupTestEnvironment points HOME at a temp directory and supplies the
// passphrase through the environment. Returns the temp home.
func setupTestEnvironment(t *testing.T) string {
	t.Helper()

	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("USERPROFILE", home)
	t.Setenv(configs.PassphraseEnv, testPassphrase)
	t.Setenv("NO_COLOR", "1")

	originalSettings := configs.UserYapSettings
	originalExit := doctorExitFunc
	t.Cleanup(func() {
		configs.UserYapSettings = originalSettings
		doctorExitFunc = originalExit
		resetCommandState()
	})

	return home
}

// resetCommandState restores every flag in the tree to its default so one
// test's flags do not leak into the next.
func resetCommandState() {
	var reset func(c *cobra.Command)
	reset = func(c *cobra.Command) {
		resetFlags := func(f *pflag.Flag) {
			_ = f.Value.Set(f.DefValue)
			f.Changed = false
		}
		c.Flags().VisitAll(resetFlags)
		c.PersistentFlags().VisitAll(resetFlags)
		for _, sub := range c.Commands() {
			reset(sub)
		}
	}
	reset(YapCmd)
}

// runYap executes the command tree with args and returns combined output.
func runYap(args ...string) (string, error) {
	return captureOutput(func() error {
		resetCommandState()
		YapCmd.SetArgs(args)
		return YapCmd.Execute()
	})
}

// runYapWithStdin is runYap with stdin replaced by input.
func runYapWithStdin(t *testing.T, input string, args ...string) (string, error) {
	t.Helper()

	path := filepath.Join(t.TempDir(), "stdin")
	if err := os.WriteFile(path, []byte(input), 0600); err != nil {
		t.Fatalf("Failed to write stdin file: %v", err)
	}
	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("Failed to open stdin file: %v", err)
	}
	defer f.Close()

	originalStdin := os.Stdin
	os.Stdin = f
	defer func() { os.Stdin = originalStdin }()

	return runYap(args...)
}

// captureOutput captures both stdout and stderr during function execution.
func captureOutput(fn func() error) (string, error) {
	originalStdout := os.Stdout
	originalStderr := os.Stderr

	stdoutReader, stdoutWriter, _ := os.Pipe()
	stderrReader, stderrWriter, _ := os.Pipe()

	os.Stdout = stdoutWriter
	os.Stderr = stderrWriter

	stdoutChan := make(chan string, 1)
	stderrChan := make(chan string, 1)

	go func() {
		var buf bytes.Buffer
		if _, err := io.Copy(&buf, stdoutReader); err != nil {
			log.Fatalf("Failed to run copy command: %s", err)
		}
		stdoutChan <- buf.String()
	}()

	go func() {
		var buf bytes.Buffer
		if _, err := io.Copy(&buf, stderrReader); err != nil {
			log.Fatalf("Failed to run copy command: %s", err)
		}
		stderrChan <- buf.String()
	}()

	err := fn()

	stdoutWriter.Close()
	stderrWriter.Close()

	os.Stdout = originalStdout
	os.Stderr = originalStderr

	return <-stdoutChan + <-stderrChan, err
}
