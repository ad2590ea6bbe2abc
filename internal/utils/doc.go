// Package utils provides terminal and I/O helpers for the yap CLI.
//
// # Passphrases
//
// ResolvePassphrase reads YAP_PASSPHRASE (or any named variable) and falls
// back to a no-echo prompt. When stdin is piped, the prompt is read from
// /dev/tty instead so the piped data stays available.
//
// # I/O Utilities
//
//   - ReadStdin: reads all data from standard input
//   - TrimTrailingNewline: strips the newline echo appends
package utils
