package session

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"crypto/sha256"
	"fmt"
)

// newAEAD 用 key 的 SHA-256 作为 AES-256 密钥
func newAEAD(key string) (cipher.AEAD, error) {
	sum := sha256.Sum256([]byte(key))

	block, err := aes.NewCipher(sum[:])
	if err != nil {
		return nil, fmt.Errorf("could not create new cipher: %w", err)
	}

	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("could not create GCM: %w", err)
	}

	return gcm, nil
}

// seal 输出 nonce || ciphertext
func (m *Manager) seal(plaintext []byte) ([]byte, error) {
	nonceSize := m.aead.NonceSize()
	nonce := make([]byte, nonceSize, nonceSize+len(plaintext)+m.aead.Overhead())
	if _, err := rand.Read(nonce); err != nil {
		return nil, fmt.Errorf("could not generate nonce: %w", err)
	}

	return m.aead.Seal(nonce, nonce, plaintext, nil), nil
}

func (m *Manager) open(sealed []byte) ([]byte, error) {
	nonceSize := m.aead.NonceSize()
	if len(sealed) < nonceSize+m.aead.Overhead() {
		return nil, fmt.Errorf("sealed data too short")
	}

	plaintext, err := m.aead.Open(nil, sealed[:nonceSize], sealed[nonceSize:], nil)
	if err != nil {
		return nil, fmt.Errorf("could not decrypt ciphertext: %w", err)
	}

	return plaintext, nil
}
