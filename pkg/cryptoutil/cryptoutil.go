// Package cryptoutil encrypts credential blobs at rest with AES-256-GCM.
// Ciphertexts are hex encoded with the nonce prepended, so they store in a
// plain text column.
package cryptoutil

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
)

var ErrInvalidCiphertext = errors.New("invalid ciphertext")

type Encryptor interface {
	Encrypt(plaintext string) (string, error)
	Decrypt(ciphertext string) (string, error)
}

type encryptor struct {
	aead cipher.AEAD
}

// NewEncryptor expects a 64-hex-char (32 byte) key.
func NewEncryptor(hexKey string) (Encryptor, error) {
	key, err := hex.DecodeString(hexKey)
	if err != nil {
		return nil, fmt.Errorf("cryptoutil.NewEncryptor: %w", err)
	}
	if len(key) != 32 {
		return nil, fmt.Errorf("cryptoutil.NewEncryptor: key must be 32 bytes, got %d", len(key))
	}
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("cryptoutil.NewEncryptor: %w", err)
	}
	aead, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("cryptoutil.NewEncryptor: %w", err)
	}
	return &encryptor{aead: aead}, nil
}

func (e *encryptor) Encrypt(plaintext string) (string, error) {
	nonce := make([]byte, e.aead.NonceSize())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return "", fmt.Errorf("Encryptor.Encrypt: %w", err)
	}
	sealed := e.aead.Seal(nonce, nonce, []byte(plaintext), nil)
	return hex.EncodeToString(sealed), nil
}

func (e *encryptor) Decrypt(ciphertext string) (string, error) {
	raw, err := hex.DecodeString(ciphertext)
	if err != nil {
		return "", fmt.Errorf("Encryptor.Decrypt: %w", ErrInvalidCiphertext)
	}
	if len(raw) < e.aead.NonceSize() {
		return "", fmt.Errorf("Encryptor.Decrypt: %w", ErrInvalidCiphertext)
	}
	nonce, sealed := raw[:e.aead.NonceSize()], raw[e.aead.NonceSize():]
	plaintext, err := e.aead.Open(nil, nonce, sealed, nil)
	if err != nil {
		return "", fmt.Errorf("Encryptor.Decrypt: %w", ErrInvalidCiphertext)
	}
	return string(plaintext), nil
}
