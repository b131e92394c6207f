// Package securepin encrypts and decrypts card PINs the way Bridgecard
// expects them on the wire: AES-256-CBC keyed by the SHA-256 of a shared
// secret, with a fresh random IV prepended to the ciphertext and the whole
// thing base64 encoded. Failures here are hard errors, not soft envelopes:
// a PIN that cannot be encrypted means the key material is wrong, and that
// is an operator problem, not a caller problem.
package securepin

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"fmt"
	"io"
)

var ErrCorruptCiphertext = errors.New("securepin: corrupt ciphertext")

// Encrypt encrypts pin under secretKey. The IV is generated per call, so
// encrypting the same pin twice yields different ciphertexts.
func Encrypt(pin, secretKey string) (string, error) {
	block, err := aes.NewCipher(deriveKey(secretKey))
	if err != nil {
		return "", fmt.Errorf("securepin: %w", err)
	}

	plaintext := pad([]byte(pin), block.BlockSize())
	out := make([]byte, block.BlockSize()+len(plaintext))
	iv := out[:block.BlockSize()]
	if _, err := io.ReadFull(rand.Reader, iv); err != nil {
		return "", fmt.Errorf("securepin: %w", err)
	}

	cipher.NewCBCEncrypter(block, iv).CryptBlocks(out[block.BlockSize():], plaintext)
	return base64.StdEncoding.EncodeToString(out), nil
}

// Decrypt reverses Encrypt, recovering the IV from the front of the
// ciphertext. Decrypt(Encrypt(p, k), k) == p for any pin and secret.
func Decrypt(encryptedPin, secretKey string) (string, error) {
	raw, err := base64.StdEncoding.DecodeString(encryptedPin)
	if err != nil {
		return "", fmt.Errorf("securepin: %w", err)
	}

	block, err := aes.NewCipher(deriveKey(secretKey))
	if err != nil {
		return "", fmt.Errorf("securepin: %w", err)
	}

	if len(raw) < 2*block.BlockSize() || len(raw)%block.BlockSize() != 0 {
		return "", ErrCorruptCiphertext
	}

	iv, ciphertext := raw[:block.BlockSize()], raw[block.BlockSize():]
	plaintext := make([]byte, len(ciphertext))
	cipher.NewCBCDecrypter(block, iv).CryptBlocks(plaintext, ciphertext)

	return unpad(plaintext, block.BlockSize())
}

// deriveKey hashes the shared secret down to the 32 bytes AES-256 needs.
func deriveKey(secretKey string) []byte {
	sum := sha256.Sum256([]byte(secretKey))
	return sum[:]
}

// PKCS#7 padding.
func pad(data []byte, blockSize int) []byte {
	n := blockSize - len(data)%blockSize
	padded := make([]byte, len(data)+n)
	copy(padded, data)
	for i := len(data); i < len(padded); i++ {
		padded[i] = byte(n)
	}
	return padded
}

func unpad(data []byte, blockSize int) (string, error) {
	if len(data) == 0 {
		return "", ErrCorruptCiphertext
	}
	n := int(data[len(data)-1])
	if n == 0 || n > blockSize || n > len(data) {
		return "", ErrCorruptCiphertext
	}
	for _, b := range data[len(data)-n:] {
		if int(b) != n {
			return "", ErrCorruptCiphertext
		}
	}
	return string(data[:len(data)-n]), nil
}
