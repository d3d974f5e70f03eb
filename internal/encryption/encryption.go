package encryption

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"strings"

	"golang.org/x/crypto/pbkdf2"
)

const (
	// Key derivation parameters
	SaltSize   = 32
	KeySize    = 32
	Iterations = 100000

	// Prefix marks a sealed value: Prefix + base64(salt | nonce | ciphertext).
	Prefix = "caltrack:v1:"
)

var ErrWrongPassphrase = errors.New("wrong passphrase or corrupted value")

// Encryptor seals stored values with AES-GCM under a passphrase-derived key.
// The salt travels inside every sealed value, so a store can be moved
// between machines with only the passphrase.
type Encryptor struct {
	password []byte
	salt     []byte
	key      []byte
	keys     map[string][]byte // derived keys by salt
}

// NewEncryptor creates a new encryptor with the given password
func NewEncryptor(password string) (*Encryptor, error) {
	if password == "" {
		return nil, errors.New("empty passphrase")
	}
	salt := make([]byte, SaltSize)
	if _, err := rand.Read(salt); err != nil {
		return nil, fmt.Errorf("failed to generate salt: %w", err)
	}
	e := &Encryptor{password: []byte(password), salt: salt, keys: map[string][]byte{}}
	e.key = e.keyFor(salt)
	return e, nil
}

func (e *Encryptor) keyFor(salt []byte) []byte {
	if k, ok := e.keys[string(salt)]; ok {
		return k
	}
	k := pbkdf2.Key(e.password, salt, Iterations, KeySize, sha256.New)
	e.keys[string(salt)] = k
	return k
}

// Seal encrypts plaintext
func (e *Encryptor) Seal(plaintext string) (string, error) {
	gcm, err := newGCM(e.key)
	if err != nil {
		return "", err
	}

	nonce := make([]byte, gcm.NonceSize())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return "", fmt.Errorf("failed to generate nonce: %w", err)
	}

	out := make([]byte, 0, SaltSize+len(nonce)+len(plaintext)+gcm.Overhead())
	out = append(out, e.salt...)
	out = append(out, nonce...)
	out = gcm.Seal(out, nonce, []byte(plaintext), nil)

	return Prefix + base64.StdEncoding.EncodeToString(out), nil
}

// Open decrypts a value produced by Seal
func (e *Encryptor) Open(sealed string) (string, error) {
	if !IsSealed(sealed) {
		return "", errors.New("value is not sealed")
	}
	data, err := base64.StdEncoding.DecodeString(strings.TrimPrefix(sealed, Prefix))
	if err != nil {
		return "", fmt.Errorf("failed to decode base64: %w", err)
	}
	if len(data) < SaltSize {
		return "", errors.New("ciphertext too short")
	}
	salt, rest := data[:SaltSize], data[SaltSize:]

	gcm, err := newGCM(e.keyFor(salt))
	if err != nil {
		return "", err
	}
	nonceSize := gcm.NonceSize()
	if len(rest) < nonceSize {
		return "", errors.New("ciphertext too short")
	}
	nonce, ciphertext := rest[:nonceSize], rest[nonceSize:]

	plaintext, err := gcm.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return "", ErrWrongPassphrase
	}
	return string(plaintext), nil
}

func newGCM(key []byte) (cipher.AEAD, error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("failed to create cipher: %w", err)
	}
	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("failed to create GCM: %w", err)
	}
	return gcm, nil
}

// IsSealed reports whether s carries the sealed-value prefix.
func IsSealed(s string) bool {
	return strings.HasPrefix(s, Prefix)
}
