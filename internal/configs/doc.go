// Package configs manages the user's yap directory and settings.
//
// Everything lives under ~/.yap:
//
//   - ~/.yap/config.yaml: global settings (remote_url, session)
//   - ~/.yap/vault/: the default vault, one file per secret
//
// # Settings
//
// Settings are stored as YAML. Only known keys can be read or written; use
// ParseSettingKey to turn a user-supplied name into a SettingKey.
//
// # Vault Metadata
//
// Each vault directory carries a .yap-vault.toml file recording the vault
// UUID, its creation time and the key derivation scheme. The metadata is
// informational: derivation parameters are fixed and never read back from
// this file.
//
// Call InitUserSettings() before accessing UserYapSettings.
package configs
