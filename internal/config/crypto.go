// internal/config/crypto.go
package config

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
)

const (
	masterKeyName = "__master_key__"
	masterKeySize = 32
)

var errCipherTooShort = errors.New("ciphertext too short")

// GetMasterKey returns the profile-password key stored in the OS keyring,
// generating and storing one on first use.
func GetMasterKey() ([]byte, error) {
	ks, err := NewKeyringStore()
	if err != nil {
		return nil, err
	}
	return masterKey(ks)
}

type secretStore interface {
	GetPassword(name string) (string, error)
	SetPassword(name, secret string) error
}

func masterKey(store secretStore) ([]byte, error) {
	if keyHex, err := store.GetPassword(masterKeyName); err == nil {
		key, err := hex.DecodeString(keyHex)
		if err != nil {
			return nil, fmt.Errorf("decode master key: %w", err)
		}
		return key, nil
	}

	key := make([]byte, masterKeySize)
	if _, err := io.ReadFull(rand.Reader, key); err != nil {
		return nil, fmt.Errorf("generate master key: %w", err)
	}
	if err := store.SetPassword(masterKeyName, hex.EncodeToString(key)); err != nil {
		return nil, fmt.Errorf("store master key: %w", err)
	}
	return key, nil
}

func newGCM(key []byte) (cipher.AEAD, error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, err
	}
	return cipher.NewGCM(block)
}

// Encrypt seals plainText with AES-GCM and returns nonce||ciphertext as hex
func Encrypt(plainText string, key []byte) (string, error) {
	gcm, err := newGCM(key)
	if err != nil {
		return "", err
	}

	nonce := make([]byte, gcm.NonceSize())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return "", err
	}
	return hex.EncodeToString(gcm.Seal(nonce, nonce, []byte(plainText), nil)), nil
}

// Decrypt reverses Encrypt
func Decrypt(cipherTextHex string, key []byte) (string, error) {
	sealed, err := hex.DecodeString(cipherTextHex)
	if err != nil {
		return "", err
	}

	gcm, err := newGCM(key)
	if err != nil {
		return "", err
	}

	n := gcm.NonceSize()
	if len(sealed) < n {
		return "", errCipherTooShort
	}
	plain, err := gcm.Open(nil, sealed[:n], sealed[n:], nil)
	if err != nil {
		return "", err
	}
	return string(plain), nil
}
