// Package logger provides leveled logging for yap commands.
//
// Logging behavior is controlled by two flags:
//
//   - --verbose: Shows info and warning messages
//   - --debug: Shows all messages including debug details and errors
//
// Without flags, only WarnfAlways output is shown. Secret values and
// passphrases must never be passed to the logger.
//
//	log := Logger{Verbose: verbose, Debug: debug}
//	log.Infof("Loaded vault %s", dir)
package logger
