// SPDX-FileCopyrightText: 2023 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

// Package keyschedule implements TLS 1.3's key derivation related functions
package keyschedule

import (
	"errors"
	"hash"
	"io"

	"golang.org/x/crypto/cryptobyte"
	"golang.org/x/crypto/hkdf"
)

var errMissingHashFunction = errors.New("HKDF-Extract expected a non-nil hash function")
var errLabelTooSmall = errors.New("HKDF-Expand-Label expected a label with length >= 7")
var errLabelTooBig = errors.New("HKDF-Expand-Label expected a label with length <= 255")
var errContextTooBig = errors.New("HKDF-Expand-Label expected a context with length <= 255")

const (
	TLS13prefix = "tls13 " // RFC 8446 section 7.1
)

// HkdfExtract implements RFC 5869 section 2.2.
func HkdfExtract(hashFunc func() hash.Hash, salt, ikm []byte) ([]byte, error) {
	if hashFunc == nil {
		return nil, errMissingHashFunction
	}
	// The order of the ikm and salt arguments are different than the RFC.
	return hkdf.Extract(hashFunc, ikm, salt), nil
}

// HkdfExpandLabel implements RFC 8446 section 7.1.
func HkdfExpandLabel(hashFunc func() hash.Hash, secret []byte, label string, context []byte, length int) ([]byte, error) {
	fullLabel := []byte(TLS13prefix + label)

	if len(fullLabel) < 7 {
		return nil, errLabelTooSmall
	} else if len(fullLabel) > 255 {
		return nil, errLabelTooBig
	}

	if len(context) > 255 {
		return nil, errContextTooBig
	}

	if hashFunc == nil {
		return nil, errMissingHashFunction
	}

	var builder cryptobyte.Builder

	builder.AddUint16(uint16(length)) //nolint:gosec // G115

	builder.AddUint8LengthPrefixed(func(b *cryptobyte.Builder) {
		b.AddBytes(fullLabel)
	})

	builder.AddUint8LengthPrefixed(func(b *cryptobyte.Builder) {
		b.AddBytes(context)
	})

	hkdfLabel, err := builder.Bytes()
	if err != nil {
		return nil, err
	}

	out := make([]byte, length)
	if _, err := io.ReadFull(hkdf.Expand(hashFunc, secret, hkdfLabel), out); err != nil {
		return nil, err
	}

	return out, nil
}

// DeriveSecret implements RFC 8446 section 7.1.
//
// TranscriptHash is defined in RFC 8446 section 4.4.
func DeriveSecret(hashFunc func() hash.Hash, secret []byte, label string, transcriptHash hash.Hash) ([]byte, error) {
	if hashFunc == nil {
		return nil, errMissingHashFunction
	}
	if transcriptHash == nil {
		transcriptHash = hashFunc()
	}

	return HkdfExpandLabel(hashFunc, secret, label, transcriptHash.Sum(nil), transcriptHash.Size())
}
