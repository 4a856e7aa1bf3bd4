// SPDX-FileCopyrightText: 2026 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package ciphersuite

import (
	"crypto/aes"
	"crypto/cipher"

	"github.com/pion/tls13/pkg/protocol/recordlayer"
)

const (
	gcmTagLength   = 16
	gcmNonceLength = 12
)

// GCM protects records with AES-GCM. The key size picks between AES-128
// and AES-256.
type GCM struct {
	aead *aead
}

// NewGCM creates a TLS AES-GCM record cipher.
func NewGCM(localKey, localWriteIV, remoteKey, remoteWriteIV []byte) (*GCM, error) {
	localBlock, err := aes.NewCipher(localKey)
	if err != nil {
		return nil, err
	}
	localGCM, err := cipher.NewGCM(localBlock)
	if err != nil {
		return nil, err
	}

	remoteBlock, err := aes.NewCipher(remoteKey)
	if err != nil {
		return nil, err
	}
	remoteGCM, err := cipher.NewGCM(remoteBlock)
	if err != nil {
		return nil, err
	}

	innerAEAD, err := newAEAD(
		localGCM,
		localWriteIV,
		remoteGCM,
		remoteWriteIV,
		gcmNonceLength,
		gcmTagLength,
	)
	if err != nil {
		return nil, err
	}

	return &GCM{aead: innerAEAD}, nil
}

// Seal protects a single record for sending.
func (g *GCM) Seal(inner *recordlayer.InnerPlaintext) (*recordlayer.Ciphertext, error) {
	return g.aead.seal(inner)
}

// Open recovers the inner plaintext of a single protected record.
func (g *GCM) Open(ciphertext *recordlayer.Ciphertext) (*recordlayer.InnerPlaintext, error) {
	return g.aead.open(ciphertext)
}

// Overhead returns the bytes of expansion protection adds to a record.
func (g *GCM) Overhead() int {
	return g.aead.overhead()
}
