// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"fmt"
	"io"

	"golang.org/x/crypto/pbkdf2"
)

const (
	// pbkdf2Iterations is deliberately slow so that a leaked database plus
	// master key still costs real work per user to attack.
	pbkdf2Iterations = 100_000

	// keyLen is the derived key length: 256 bits for AES-256.
	keyLen = 32

	// nonceLen is the GCM nonce length used by this cipher. 16 bytes,
	// generated fresh from the OS CSPRNG on every Encrypt call.
	nonceLen = 16

	// tagLen is the GCM authentication tag length appended by Seal.
	tagLen = 16
)

// credentialCipher is the private implementation of [CredentialCipher].
// The master key is set once at construction and read-only afterwards.
type credentialCipher struct {
	masterKey []byte
}

// NewCredentialCipher constructs a [CredentialCipher] around the
// process-wide master key. Per-user keys are derived on demand and never
// stored.
func NewCredentialCipher(masterKey string) CredentialCipher {
	return &credentialCipher{masterKey: []byte(masterKey)}
}

// deriveUserKey derives the per-user symmetric key from the master key
// using PBKDF2-SHA256 with userID as salt. Deriving instead of storing
// scopes the blast radius of a key compromise to one derivation input.
func (c *credentialCipher) deriveUserKey(userID string) []byte {
	return pbkdf2.Key(c.masterKey, []byte(userID), pbkdf2Iterations, keyLen, sha256.New)
}

// Encrypt implements [CredentialCipher]. It encrypts plaintext with
// AES-256-GCM under the key derived for userID. The GCM output
// (body ‖ tag) is split: the body becomes the stored ciphertext, while the
// nonce and tag are packed into the caller-held secret:
//
//	ciphertext = base64(body)
//	secret     = base64(nonce ‖ tag)
//
// Without the secret the stored ciphertext is undecryptable, so the server
// retains nothing that unlocks the credential on its own.
func (c *credentialCipher) Encrypt(plaintext, userID string) (string, string, error) {
	gcm, err := c.userGCM(userID)
	if err != nil {
		return "", "", err
	}

	nonce := make([]byte, nonceLen)
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return "", "", fmt.Errorf("generate nonce: %w", err)
	}

	sealed := gcm.Seal(nil, nonce, []byte(plaintext), nil)

	// Seal appends the tag to the body; peel it off into the secret.
	body, tag := sealed[:len(sealed)-tagLen], sealed[len(sealed)-tagLen:]

	ciphertext := base64.StdEncoding.EncodeToString(body)
	secret := base64.StdEncoding.EncodeToString(append(nonce, tag...))

	return ciphertext, secret, nil
}

// Decrypt implements [CredentialCipher]. It unpacks the secret into nonce
// and tag, reassembles the GCM blob, and opens it with the key derived for
// userID. Authentication failure of any cause maps to [ErrTamperedSecret].
func (c *credentialCipher) Decrypt(ciphertext, secret, userID string) (string, error) {
	body, err := base64.StdEncoding.DecodeString(ciphertext)
	if err != nil {
		return "", fmt.Errorf("%w: decode ciphertext: %w", ErrMalformedCiphertext, err)
	}

	packed, err := base64.StdEncoding.DecodeString(secret)
	if err != nil {
		return "", fmt.Errorf("%w: decode secret: %w", ErrMalformedCiphertext, err)
	}
	if len(packed) != nonceLen+tagLen {
		return "", fmt.Errorf("%w: secret length %d", ErrMalformedCiphertext, len(packed))
	}

	nonce, tag := packed[:nonceLen], packed[nonceLen:]

	gcm, err := c.userGCM(userID)
	if err != nil {
		return "", err
	}

	plaintext, err := gcm.Open(nil, nonce, append(body, tag...), nil)
	if err != nil {
		// Wrong secret, wrong user, or modified ciphertext: GCM cannot
		// distinguish and neither do we.
		return "", ErrTamperedSecret
	}

	return string(plaintext), nil
}

// userGCM builds an AES-256-GCM instance with a 16-byte nonce size over the
// key derived for userID.
func (c *credentialCipher) userGCM(userID string) (cipher.AEAD, error) {
	block, err := aes.NewCipher(c.deriveUserKey(userID))
	if err != nil {
		return nil, fmt.Errorf("create cipher: %w", err)
	}

	gcm, err := cipher.NewGCMWithNonceSize(block, nonceLen)
	if err != nil {
		return nil, fmt.Errorf("create gcm: %w", err)
	}

	return gcm, nil
}
