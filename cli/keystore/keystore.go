// Package keystore provides secure storage for API credentials.
package keystore

import (
	"os"
	"path/filepath"
	"runtime"
)

// Keystore defines the interface for secure credential storage.
type Keystore interface {
	// Set stores a name-value pair.
	Set(name, value string) error
	// Get retrieves a value by name. Returns *ErrKeyNotFound if absent.
	Get(name string) (string, error)
	// Delete removes an entry by name.
	Delete(name string) error
	// List returns all stored entry names in sorted order.
	List() ([]string, error)
}

// ErrKeyNotFound is returned when a requested entry does not exist.
type ErrKeyNotFound struct {
	Name string
}

func (e *ErrKeyNotFound) Error() string {
	return "key not found: " + e.Name
}

// DefaultKeystorePath returns the default keystore file path.
// - macOS/Linux: ~/.herald/keys.enc
// - Windows: %USERPROFILE%\.herald\keys.enc
func DefaultKeystorePath() string {
	var homeDir string

	if runtime.GOOS == "windows" {
		homeDir = os.Getenv("USERPROFILE")
	} else {
		homeDir = os.Getenv("HOME")
	}

	if homeDir == "" {
		return "keys.enc"
	}

	return filepath.Join(homeDir, ".herald", "keys.enc")
}

// NewKeystore creates a keystore at the default path using the default
// master key source chain (HERALD_MASTER_KEY, then machine-derived).
func NewKeystore() (Keystore, error) {
	return NewFileKeystore(DefaultKeystorePath(), DefaultMasterKeySource())
}
