// internal/config/keyring.go
package config

import (
	"fmt"

	"github.com/99designs/keyring"
)

const serviceName = "quill"

// KeyringStore keeps secrets in the system keyring under the quill service
type KeyringStore struct {
	ring keyring.Keyring
}

// NewKeyringStore opens the system keyring
func NewKeyringStore() (*KeyringStore, error) {
	ring, err := keyring.Open(keyring.Config{
		ServiceName: serviceName,
		// The file backend prompts for a passphrase on the terminal
		AllowedBackends: []keyring.BackendType{
			keyring.KeychainBackend,
			keyring.SecretServiceBackend,
			keyring.KWalletBackend,
			keyring.WinCredBackend,
			keyring.KeyCtlBackend,
			keyring.PassBackend,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open keyring: %w", err)
	}
	return &KeyringStore{ring: ring}, nil
}

// SetPassword stores a secret under name
func (k *KeyringStore) SetPassword(name, secret string) error {
	return k.ring.Set(keyring.Item{
		Key:   name,
		Label: "quill " + name,
		Data:  []byte(secret),
	})
}

// GetPassword retrieves the secret stored under name
func (k *KeyringStore) GetPassword(name string) (string, error) {
	item, err := k.ring.Get(name)
	if err != nil {
		return "", fmt.Errorf("secret not found: %s: %w", name, err)
	}
	return string(item.Data), nil
}
