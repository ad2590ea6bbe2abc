package vault

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"
	"unicode/utf8"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/PolarWolf314/yap/internal/configs"
	kerrors "github.com/PolarWolf314/yap/internal/errors"
	"github.com/PolarWolf314/yap/internal/secrets"
)

// Sealer seals and opens secret values. *secrets.Engine implements it.
type Sealer interface {
	Seal(plaintext []byte) ([]byte, error)
	Open(sealed []byte) ([]byte, error)
}

// Vault stores every secret in its own sealed file inside one directory.
type Vault struct {
	dir      string
	engine   Sealer
	metadata *configs.VaultMetadata

	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

// Create opens the vault at dir, creating the directory and its metadata
// if they do not exist. Existing secrets are kept.
func Create(dir string, engine Sealer) (*Vault, error) {
	if err := os.MkdirAll(dir, 0700); err != nil {
		return nil, fmt.Errorf("failed to create vault directory %s: %w", dir, err)
	}

	metadata, err := configs.LoadVaultMetadata(dir)
	if err != nil {
		return nil, err
	}

	if metadata.Vault.UUID == "" {
		metadata.Vault = configs.VaultInfo{
			UUID:       configs.GenerateVaultUUID(),
			CreatedAt:  time.Now().UTC(),
			KDF:        secrets.KDFName,
			Iterations: secrets.KDFIterations,
		}
		if err := configs.SaveVaultMetadata(dir, metadata); err != nil {
			return nil, err
		}
	}

	return newVault(dir, engine, metadata), nil
}

// Load opens an existing vault at dir.
// Returns ErrVaultNotInitialized if the directory does not exist.
func Load(dir string, engine Sealer) (*Vault, error) {
	info, err := os.Stat(dir)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", kerrors.ErrVaultNotInitialized, dir)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to stat vault directory %s: %w", dir, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%w: %s is not a directory", kerrors.ErrVaultNotInitialized, dir)
	}

	metadata, err := configs.LoadVaultMetadata(dir)
	if err != nil {
		return nil, err
	}

	return newVault(dir, engine, metadata), nil
}

func newVault(dir string, engine Sealer, metadata *configs.VaultMetadata) *Vault {
	return &Vault{
		dir:      dir,
		engine:   engine,
		metadata: metadata,
		locks:    make(map[string]*sync.Mutex),
	}
}

// Dir returns the vault directory.
func (v *Vault) Dir() string {
	return v.dir
}

// ID returns the vault UUID, or an empty string for vaults without metadata.
func (v *Vault) ID() string {
	return v.metadata.Vault.UUID
}

// Get opens the secret stored under name.
func (v *Vault) Get(name string) (string, error) {
	if err := ValidateName(name); err != nil {
		return "", err
	}

	sealed, err := os.ReadFile(v.path(name))
	if errors.Is(err, fs.ErrNotExist) {
		return "", fmt.Errorf("%w: %s", kerrors.ErrSecretNotFound, name)
	}
	if err != nil {
		return "", fmt.Errorf("failed to read secret %s: %w", name, err)
	}

	plaintext, err := v.engine.Open(sealed)
	if err != nil {
		return "", fmt.Errorf("failed to open secret %s: %w", name, err)
	}

	if !utf8.Valid(plaintext) {
		return "", fmt.Errorf("%w: %s", kerrors.ErrInvalidUTF8, name)
	}

	return string(plaintext), nil
}

// Set seals value and stores it under name, replacing any previous value.
func (v *Vault) Set(name, value string) error {
	if err := ValidateName(name); err != nil {
		return err
	}

	sealed, err := v.engine.Seal([]byte(value))
	if err != nil {
		return fmt.Errorf("failed to seal secret %s: %w", name, err)
	}

	lock := v.lock(name)
	lock.Lock()
	defer lock.Unlock()

	if err := writeFileAtomic(v.path(name), sealed); err != nil {
		return fmt.Errorf("failed to write secret %s: %w", name, err)
	}

	return nil
}

// Remove deletes the secret stored under name.
func (v *Vault) Remove(name string) error {
	if err := ValidateName(name); err != nil {
		return err
	}

	lock := v.lock(name)
	lock.Lock()
	defer lock.Unlock()

	err := os.Remove(v.path(name))
	if errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("%w: %s", kerrors.ErrSecretNotFound, name)
	}
	if err != nil {
		return fmt.Errorf("failed to remove secret %s: %w", name, err)
	}

	return nil
}

// List returns the sorted names of secrets matching pattern.
// An empty pattern matches every secret.
func (v *Vault) List(pattern string) ([]string, error) {
	if pattern != "" && !doublestar.ValidatePattern(pattern) {
		return nil, fmt.Errorf("invalid pattern %q: %w", pattern, doublestar.ErrBadPattern)
	}

	entries, err := os.ReadDir(v.dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read vault directory %s: %w", v.dir, err)
	}

	var names []string
	for _, entry := range entries {
		name := entry.Name()
		if !entry.Type().IsRegular() || strings.HasPrefix(name, ".") {
			continue
		}
		if pattern != "" {
			matched, err := doublestar.Match(pattern, name)
			if err != nil {
				return nil, fmt.Errorf("invalid pattern %q: %w", pattern, err)
			}
			if !matched {
				continue
			}
		}
		names = append(names, name)
	}

	sort.Strings(names)
	return names, nil
}

func (v *Vault) path(name string) string {
	return filepath.Join(v.dir, name)
}

// lock returns the mutex serializing writers of name within this process.
func (v *Vault) lock(name string) *sync.Mutex {
	v.mu.Lock()
	defer v.mu.Unlock()

	l, ok := v.locks[name]
	if !ok {
		l = &sync.Mutex{}
		v.locks[name] = l
	}
	return l
}

// ValidateName checks that name can be used as a secret file name.
// Names starting with a dot are reserved for vault bookkeeping files.
func ValidateName(name string) error {
	switch {
	case name == "":
		return fmt.Errorf("%w: name is empty", kerrors.ErrInvalidSecretName)
	case strings.HasPrefix(name, "."):
		return fmt.Errorf("%w: %q starts with a dot", kerrors.ErrInvalidSecretName, name)
	case strings.ContainsAny(name, `/\`+"\x00"):
		return fmt.Errorf("%w: %q contains a path separator", kerrors.ErrInvalidSecretName, name)
	}
	return nil
}

// writeFileAtomic replaces path with data so readers never see a partial file.
func writeFileAtomic(path string, data []byte) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), ".yap-tmp-*")
	if err != nil {
		return err
	}
	tmpPath := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return err
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return err
	}

	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return err
	}
	return nil
}
