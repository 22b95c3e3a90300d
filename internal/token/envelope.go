package token

import (
	"bytes"
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"crypto/sha256"
	"errors"
	"fmt"
	"io"

	"golang.org/x/crypto/pbkdf2"
)

// saltedMarker is the 8-byte prefix of the encrypted envelope, the same
// self-describing convention openssl uses for salted ciphertext:
// blob = "Salted__" ‖ salt (8 bytes) ‖ CBC ciphertext.
const saltedMarker = "Salted__"

const (
	saltSize = 8
	keySize  = 32 // AES-256
	ivSize   = aes.BlockSize
)

// sealEnvelope encrypts plaintext with AES-256-CBC under a key and IV
// derived from passphrase via PBKDF2-HMAC-SHA256. A fresh random salt is
// drawn from the OS CSPRNG per call, so sealing the same plaintext twice
// never produces the same blob. The plaintext is PKCS#7-padded to a whole
// number of blocks before encryption.
func sealEnvelope(plaintext []byte, passphrase string, iterations int) ([]byte, error) {
	salt := make([]byte, saltSize)
	if _, err := io.ReadFull(rand.Reader, salt); err != nil {
		return nil, fmt.Errorf("generate salt: %w", err)
	}

	key, iv := deriveKeyAndIV(passphrase, salt, iterations)
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("create cipher: %w", err)
	}

	padded := padPKCS7(plaintext, aes.BlockSize)
	ciphertext := make([]byte, len(padded))
	cipher.NewCBCEncrypter(block, iv).CryptBlocks(ciphertext, padded)

	blob := make([]byte, 0, len(saltedMarker)+saltSize+len(ciphertext))
	blob = append(blob, saltedMarker...)
	blob = append(blob, salt...)
	blob = append(blob, ciphertext...)

	return blob, nil
}

// openEnvelope inverts [sealEnvelope]: it verifies the marker, extracts the
// salt, re-derives the key and IV from passphrase, decrypts, and strips the
// block padding. A structural problem (missing marker, ragged block length)
// is reported as ErrMalformedToken; invalid padding after decryption is
// reported as ErrDecryption since it almost always means a wrong or tampered
// passphrase.
func openEnvelope(blob []byte, passphrase string, iterations int) ([]byte, error) {
	if len(blob) < len(saltedMarker)+saltSize {
		return nil, fmt.Errorf("%w: envelope shorter than its marker and salt", ErrMalformedToken)
	}
	if string(blob[:len(saltedMarker)]) != saltedMarker {
		return nil, fmt.Errorf("%w: missing salted envelope marker", ErrMalformedToken)
	}

	salt := blob[len(saltedMarker) : len(saltedMarker)+saltSize]
	ciphertext := blob[len(saltedMarker)+saltSize:]
	if len(ciphertext) == 0 || len(ciphertext)%aes.BlockSize != 0 {
		return nil, fmt.Errorf("%w: ciphertext is not a whole number of blocks", ErrMalformedToken)
	}

	key, iv := deriveKeyAndIV(passphrase, salt, iterations)
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("create cipher: %w", err)
	}

	plaintext := make([]byte, len(ciphertext))
	cipher.NewCBCDecrypter(block, iv).CryptBlocks(plaintext, ciphertext)

	unpadded, err := unpadPKCS7(plaintext, aes.BlockSize)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecryption, err)
	}

	return unpadded, nil
}

// deriveKeyAndIV stretches the passphrase into 48 bytes of material: a
// 256-bit cipher key followed by a 16-byte IV. The passphrase is the
// one-time key's 64-character hex string itself, not its decoded bytes.
func deriveKeyAndIV(passphrase string, salt []byte, iterations int) (key, iv []byte) {
	material := pbkdf2.Key([]byte(passphrase), salt, iterations, keySize+ivSize, sha256.New)
	return material[:keySize], material[keySize:]
}

// padPKCS7 appends 1..blockSize bytes, each holding the pad length, so the
// result is a whole number of blocks.
func padPKCS7(data []byte, blockSize int) []byte {
	n := blockSize - len(data)%blockSize
	return append(data, bytes.Repeat([]byte{byte(n)}, n)...)
}

// unpadPKCS7 validates and removes PKCS#7 padding.
func unpadPKCS7(data []byte, blockSize int) ([]byte, error) {
	if len(data) == 0 || len(data)%blockSize != 0 {
		return nil, errors.New("invalid padded length")
	}

	n := int(data[len(data)-1])
	if n == 0 || n > blockSize {
		return nil, errors.New("invalid padding byte")
	}
	for _, b := range data[len(data)-n:] {
		if int(b) != n {
			return nil, errors.New("inconsistent padding")
		}
	}

	return data[:len(data)-n], nil
}
