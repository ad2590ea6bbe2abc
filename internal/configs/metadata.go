package configs

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
)

// VaultMetadataFileName is stored inside each vault directory. Secret names
// may not start with a dot, so it never collides with a secret.
const VaultMetadataFileName = ".yap-vault.toml"

type VaultMetadata struct {
	Vault VaultInfo `toml:"vault"`
}

type VaultInfo struct {
	UUID       string    `toml:"vault_uuid"`
	CreatedAt  time.Time `toml:"created_at"`
	KDF        string    `toml:"kdf"`
	Iterations int       `toml:"iterations"`
}

// GenerateVaultUUID generates a new UUID for a vault.
func GenerateVaultUUID() string {
	return uuid.New().String()
}

// LoadVaultMetadata reads the metadata file from a vault directory.
// Returns an empty metadata struct if the file does not exist.
func LoadVaultMetadata(vaultPath string) (*VaultMetadata, error) {
	metadataPath := filepath.Join(vaultPath, VaultMetadataFileName)

	metadata := &VaultMetadata{}
	if _, err := os.Stat(metadataPath); os.IsNotExist(err) {
		return metadata, nil
	}

	if err := LoadTOML(metadataPath, metadata); err != nil {
		return nil, fmt.Errorf("failed to load vault metadata: %w", err)
	}

	return metadata, nil
}

// SaveVaultMetadata writes the metadata file into a vault directory.
func SaveVaultMetadata(vaultPath string, metadata *VaultMetadata) error {
	metadataPath := filepath.Join(vaultPath, VaultMetadataFileName)

	if err := SaveTOML(metadataPath, metadata); err != nil {
		return fmt.Errorf("failed to save vault metadata: %w", err)
	}

	return nil
}
