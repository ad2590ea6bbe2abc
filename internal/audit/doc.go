// Package audit provides audit trail logging for vault operations.
//
// Every operation that touches a secret (get, set, generate, remove, list)
// is recorded in a vault-level audit log. Secret values are never written
// to the log, only secret names.
//
// # Log Format
//
// The audit log is stored as JSON Lines (one JSON object per line) at:
//
//	<vault>/.yap-audit.jsonl
//
// Each entry contains:
//   - Timestamp (RFC3339 with microseconds, UTC)
//   - Operation name and vault UUID
//   - Operation-specific details (secret name, match count)
//
// # Failure Handling
//
// Audit logging is best-effort. If logging fails (permissions, disk full,
// etc.), the operation continues without error.
//
// # Reading Logs
//
// Use ReadEntries() to parse the audit log for display or analysis.
// Malformed entries are silently skipped to handle partial writes.
package audit
