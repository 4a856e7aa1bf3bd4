// SPDX-FileCopyrightText: 2026 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package ciphersuite

import (
	"github.com/pion/tls13/pkg/protocol/recordlayer"
	"golang.org/x/crypto/chacha20poly1305"
)

const (
	chachaTagLength   = 16
	chachaNonceLength = 12
)

// ChaCha20Poly1305 protects records with ChaCha20-Poly1305.
type ChaCha20Poly1305 struct {
	aead *aead
}

// NewChaCha20Poly1305 creates a TLS ChaCha20-Poly1305 record cipher.
func NewChaCha20Poly1305(localKey, localWriteIV, remoteKey, remoteWriteIV []byte) (*ChaCha20Poly1305, error) {
	localCipher, err := chacha20poly1305.New(localKey)
	if err != nil {
		return nil, err
	}

	remoteCipher, err := chacha20poly1305.New(remoteKey)
	if err != nil {
		return nil, err
	}

	innerAEAD, err := newAEAD(
		localCipher,
		localWriteIV,
		remoteCipher,
		remoteWriteIV,
		chachaNonceLength,
		chachaTagLength,
	)
	if err != nil {
		return nil, err
	}

	return &ChaCha20Poly1305{aead: innerAEAD}, nil
}

// Seal protects a single record for sending.
func (c *ChaCha20Poly1305) Seal(inner *recordlayer.InnerPlaintext) (*recordlayer.Ciphertext, error) {
	return c.aead.seal(inner)
}

// Open recovers the inner plaintext of a single protected record.
func (c *ChaCha20Poly1305) Open(ciphertext *recordlayer.Ciphertext) (*recordlayer.InnerPlaintext, error) {
	return c.aead.open(ciphertext)
}

// Overhead returns the bytes of expansion protection adds to a record.
func (c *ChaCha20Poly1305) Overhead() int {
	return c.aead.overhead()
}
