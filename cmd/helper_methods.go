package cmd

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/PolarWolf314/yap/internal/configs"
	kerrors "github.com/PolarWolf314/yap/internal/errors"
	"github.com/PolarWolf314/yap/internal/secrets"
	"github.com/PolarWolf314/yap/internal/ui"
	"github.com/PolarWolf314/yap/internal/utils"
	"github.com/PolarWolf314/yap/internal/workflows"
	"github.com/briandowns/spinner"
)

// startSpinner creates and starts a spinner with the given message when not in verbose or debug mode.
// Returns the spinner and a function that should be deferred to clean up.
//
// spinner.FinalMSG values do NOT need trailing newlines. The cleanup function
// calls ui.EnsureNewline() on the final message before printing it.
func startSpinner(message string) (*spinner.Spinner, func()) {
	Logger.Debugf("Starting spinner with message: %s", message)
	s := spinner.New(spinner.CharSets[14], 100*time.Millisecond, spinner.WithWriter(os.Stderr))
	s.Suffix = " " + message

	if err := s.Color("cyan"); err != nil {
		Logger.Warnf("Failed to set spinner color: %v", err)
	}

	quiet := !verbose && !debug
	if quiet {
		s.Start()
		log.SetOutput(io.Discard)
	} else {
		Logger.Infof("Running in verbose or debug mode: %s", message)
	}

	cleanup := func() {
		if quiet {
			log.SetOutput(os.Stdout)
		}

		finalMsg := ""
		if s.FinalMSG != "" {
			finalMsg = ui.EnsureNewline(s.FinalMSG)
			// Clear FinalMSG so s.Stop() doesn't print it.
			s.FinalMSG = ""
		}

		if quiet {
			s.Stop()
		}

		// Printed to stdout so tests can capture it.
		if finalMsg != "" {
			fmt.Print(finalMsg)
		}
	}

	return s, cleanup
}

// loadEngine resolves the passphrase and derives the vault key once.
// With confirm set, a prompted passphrase must be typed twice.
func loadEngine(confirm bool) (*secrets.Engine, error) {
	passphrase, source, err := utils.ResolvePassphrase(configs.PassphraseEnv, confirm)
	if err != nil {
		return nil, err
	}
	Logger.Debugf("Passphrase read from %s", source)
	if passphrase == "" {
		Logger.WarnfAlways("The passphrase is empty; secrets are protected by a weak key")
	}

	s, cleanup := startSpinner("Deriving vault key...")
	defer cleanup()

	engine, err := secrets.NewEngine(passphrase)
	if err != nil {
		s.FinalMSG = ui.Fail("Failed to derive vault key", err)
		return nil, reported(err)
	}
	Logger.Debugf("Derived key with %s (%d iterations)", secrets.KDFName, secrets.KDFIterations)
	return engine, nil
}

// vaultOptions builds workflow options for the selected vault.
func vaultOptions(engine *secrets.Engine) workflows.Options {
	opts := workflows.Options{
		Settings: configs.UserYapSettings,
		Store:    store,
	}
	// A nil *Engine must not become a non-nil Sealer.
	if engine != nil {
		opts.Engine = engine
	}
	return opts
}

// reportedError marks an error whose message was already shown to the user.
type reportedError struct {
	err error
}

func (e *reportedError) Error() string { return e.err.Error() }
func (e *reportedError) Unwrap() error { return e.err }

func reported(err error) error {
	if err == nil {
		return nil
	}
	return &reportedError{err: err}
}

// IsReported reports whether err has already been printed by a command.
func IsReported(err error) bool {
	var r *reportedError
	return errors.As(err, &r)
}

// formatVaultError renders the common vault errors with a hint.
func formatVaultError(action string, err error) string {
	switch {
	case errors.Is(err, kerrors.ErrVaultNotInitialized):
		return ui.Fail("No vault found", nil) + "\n" + ui.Next("Run", "yap init") + " first"

	case errors.Is(err, kerrors.ErrAuthenticationFailure):
		return ui.Fail(action, nil) + "\n" +
			ui.Error.Sprint("Error: ") + "cannot decrypt: wrong passphrase or the secret file was modified"

	case errors.Is(err, kerrors.ErrMalformedInput):
		return ui.Fail(action, nil) + "\n" +
			ui.Error.Sprint("Error: ") + "the secret file is truncated or not a yap secret"

	case errors.Is(err, kerrors.ErrSecretNotFound):
		return ui.Fail(action, err) + "\n" + ui.Next("See stored secrets with", "yap list")

	default:
		return ui.Fail(action, err)
	}
}

func settings() *configs.UserSettings {
	return configs.UserYapSettings
}
