// SPDX-FileCopyrightText: 2026 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

// Package ciphersuite provides record protection for the TLS 1.3 cipher suites
package ciphersuite

import (
	"crypto/cipher"
	"crypto/sha256"
	"crypto/sha512"
	"errors"
	"fmt"
	"hash"
	"math"
	"sync"

	"github.com/pion/tls13/pkg/protocol"
	"github.com/pion/tls13/pkg/protocol/recordlayer"
)

var (
	//nolint:err113
	errDecryptPacket = &protocol.TemporaryError{Err: errors.New("failed to decrypt packet")}
	//nolint:err113
	errSequenceNumberOverflow = &protocol.FatalError{Err: errors.New("sequence number overflow")}
	//nolint:err113
	errUnsupportedCipherSuite = &protocol.FatalError{Err: errors.New("unsupported cipher suite")}
	//nolint:err113
	errInvalidWriteIVLength = &protocol.InternalError{Err: errors.New("write IV length does not match the nonce size")}
)

// ID is the 2 byte value of a TLS 1.3 cipher suite as registered with IANA.
//
// https://www.iana.org/assignments/tls-parameters/tls-parameters.xhtml#tls-parameters-4
type ID uint16

// Supported cipher suites.
const (
	TLS_AES_128_GCM_SHA256       ID = 0x1301 //nolint:revive,stylecheck
	TLS_AES_256_GCM_SHA384       ID = 0x1302 //nolint:revive,stylecheck
	TLS_CHACHA20_POLY1305_SHA256 ID = 0x1303 //nolint:revive,stylecheck
)

func (i ID) String() string {
	switch i {
	case TLS_AES_128_GCM_SHA256:
		return "TLS_AES_128_GCM_SHA256"
	case TLS_AES_256_GCM_SHA384:
		return "TLS_AES_256_GCM_SHA384"
	case TLS_CHACHA20_POLY1305_SHA256:
		return "TLS_CHACHA20_POLY1305_SHA256"
	default:
		return fmt.Sprintf("unknown(%v)", uint16(i))
	}
}

// Hash returns the hash function the suite pairs with HKDF, or nil for an
// unknown suite.
func (i ID) Hash() func() hash.Hash {
	switch i {
	case TLS_AES_128_GCM_SHA256, TLS_CHACHA20_POLY1305_SHA256:
		return sha256.New
	case TLS_AES_256_GCM_SHA384:
		return sha512.New384
	}

	return nil
}

// KeyLen returns the AEAD key length of the suite.
func (i ID) KeyLen() int {
	switch i {
	case TLS_AES_128_GCM_SHA256:
		return 16
	case TLS_AES_256_GCM_SHA384, TLS_CHACHA20_POLY1305_SHA256:
		return 32
	}

	return 0
}

// IVLen returns the AEAD write IV length of the suite.
func (i ID) IVLen() int {
	switch i {
	case TLS_AES_128_GCM_SHA256, TLS_AES_256_GCM_SHA384, TLS_CHACHA20_POLY1305_SHA256:
		return 12
	}

	return 0
}

// IDs returns the cipher suites this package implements, in the order
// they are offered.
func IDs() []ID {
	return []ID{
		TLS_AES_128_GCM_SHA256,
		TLS_AES_256_GCM_SHA384,
		TLS_CHACHA20_POLY1305_SHA256,
	}
}

// RecordCipher protects and unprotects TLS records once traffic keys are
// installed. Implementations keep the per direction sequence numbers, a
// fresh RecordCipher starts both at zero as required after every key
// change. Seal and Open are not safe for concurrent use, the caller
// serializes each direction.
type RecordCipher interface {
	// Seal protects a single record for sending.
	Seal(inner *recordlayer.InnerPlaintext) (*recordlayer.Ciphertext, error)

	// Open recovers the inner plaintext of a single protected record.
	Open(ciphertext *recordlayer.Ciphertext) (*recordlayer.InnerPlaintext, error)

	// Overhead returns the bytes of expansion protection adds on top of
	// the carried content, the content type byte plus the tag.
	Overhead() int
}

// NewRecordCipher builds the record protection for the given suite from
// freshly derived traffic key material.
func NewRecordCipher(id ID, localKey, localWriteIV, remoteKey, remoteWriteIV []byte) (RecordCipher, error) {
	switch id {
	case TLS_AES_128_GCM_SHA256, TLS_AES_256_GCM_SHA384:
		return NewGCM(localKey, localWriteIV, remoteKey, remoteWriteIV)
	case TLS_CHACHA20_POLY1305_SHA256:
		return NewChaCha20Poly1305(localKey, localWriteIV, remoteKey, remoteWriteIV)
	}

	return nil, errUnsupportedCipherSuite
}

// aead implements record protection on top of any AEAD with a 12 byte
// nonce, covering every TLS 1.3 suite.
type aead struct {
	localAEAD     cipher.AEAD
	remoteAEAD    cipher.AEAD
	localWriteIV  []byte
	remoteWriteIV []byte
	nonceLength   int
	tagLength     int

	localSequenceNumber  uint64
	remoteSequenceNumber uint64

	// buffer pool for (fixed-size) nonces.
	nonceBufferPool sync.Pool
}

// newAEAD creates a generic TLS 1.3 AEAD-based record cipher.
func newAEAD(
	localAEAD cipher.AEAD,
	localWriteIV []byte,
	remoteAEAD cipher.AEAD,
	remoteWriteIV []byte,
	nonceLength int,
	tagLength int,
) (*aead, error) {
	if len(localWriteIV) != nonceLength || len(remoteWriteIV) != nonceLength {
		return nil, errInvalidWriteIVLength
	}

	return &aead{
		localAEAD:     localAEAD,
		localWriteIV:  localWriteIV,
		remoteAEAD:    remoteAEAD,
		remoteWriteIV: remoteWriteIV,
		nonceLength:   nonceLength,
		tagLength:     tagLength,
		nonceBufferPool: sync.Pool{
			New: func() any {
				b := make([]byte, nonceLength)
				return &b // nolint:nlreturn
			},
		},
	}, nil
}

// fillNonce builds the per record nonce, the write IV XORed with the left
// padded 64 bit sequence number.
//
// https://datatracker.ietf.org/doc/html/rfc8446#section-5.3
func fillNonce(nonce, writeIV []byte, sequenceNumber uint64) {
	copy(nonce, writeIV)
	for i := 0; i < 8; i++ {
		nonce[len(nonce)-8+i] ^= byte(sequenceNumber >> (56 - uint(i)*8)) //nolint:gosec // G115
	}
}

// seal protects a single inner plaintext, consuming one send sequence
// number.
func (a *aead) seal(inner *recordlayer.InnerPlaintext) (*recordlayer.Ciphertext, error) {
	if a.localSequenceNumber == math.MaxUint64 {
		return nil, errSequenceNumberOverflow
	}

	payload, err := inner.Marshal()
	if err != nil {
		return nil, err
	}

	// Pre-size the record so the header, which doubles as additional
	// data, carries the final length.
	ciphertext := &recordlayer.Ciphertext{
		Record: make([]byte, len(payload)+a.tagLength),
	}
	additionalData, err := ciphertext.MarshalHeader()
	if err != nil {
		return nil, err
	}

	// Get nonce buffer from pool
	noncePtr := a.nonceBufferPool.Get().(*[]byte) // nolint:forcetypeassert
	nonce := *noncePtr
	fillNonce(nonce, a.localWriteIV, a.localSequenceNumber)

	a.localAEAD.Seal(ciphertext.Record[:0], nonce, payload, additionalData)
	a.localSequenceNumber++

	// Return nonce buffer to pool
	a.nonceBufferPool.Put(noncePtr)

	return ciphertext, nil
}

// open unprotects a single record, consuming one receive sequence number
// when authentication succeeds.
func (a *aead) open(ciphertext *recordlayer.Ciphertext) (*recordlayer.InnerPlaintext, error) {
	if a.remoteSequenceNumber == math.MaxUint64 {
		return nil, errSequenceNumberOverflow
	}

	additionalData, err := ciphertext.MarshalHeader()
	if err != nil {
		return nil, err
	}

	// Get nonce buffer from pool
	noncePtr := a.nonceBufferPool.Get().(*[]byte) // nolint:forcetypeassert
	nonce := *noncePtr
	fillNonce(nonce, a.remoteWriteIV, a.remoteSequenceNumber)

	payload, err := a.remoteAEAD.Open(nil, nonce, ciphertext.Record, additionalData)
	if err != nil {
		// Return nonce buffer to pool
		a.nonceBufferPool.Put(noncePtr)

		return nil, fmt.Errorf("%w: %v", errDecryptPacket, err) //nolint:errorlint
	}
	a.remoteSequenceNumber++

	// Return nonce buffer to pool
	a.nonceBufferPool.Put(noncePtr)

	innerPlaintext := &recordlayer.InnerPlaintext{}
	if err := innerPlaintext.Unmarshal(payload); err != nil {
		return nil, err
	}

	return innerPlaintext, nil
}

// overhead returns the per record expansion, the content type byte plus
// the authentication tag.
func (a *aead) overhead() int {
	return 1 + a.tagLength
}
