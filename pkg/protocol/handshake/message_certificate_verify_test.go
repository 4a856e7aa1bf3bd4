// SPDX-FileCopyrightText: 2026 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package handshake

import (
	"bytes"
	"testing"

	"github.com/pion/tls13/pkg/protocol/extension"
	"github.com/stretchr/testify/assert"
)

func TestHandshakeMessageCertificateVerify(t *testing.T) {
	rawCertificateVerify := []byte{
		0x04, 0x03, // ecdsa_secp256r1_sha256
		0x00, 0x04, // signature length = 4
		0xDE, 0xAD, 0xBE, 0xEF,
	}
	parsedCertificateVerify := &MessageCertificateVerify{
		SignatureScheme: extension.ECDSAWithP256AndSHA256,
		Signature:       rawCertificateVerify[4:],
	}

	c := &MessageCertificateVerify{}
	assert.NoError(t, c.Unmarshal(rawCertificateVerify))
	assert.Equal(t, parsedCertificateVerify, c)

	raw, err := c.Marshal()
	assert.NoError(t, err)
	assert.Equal(t, rawCertificateVerify, raw)
}

func TestHandshakeMessageCertificateVerifyInvalid(t *testing.T) {
	t.Run("buffer too small", func(t *testing.T) {
		assert.ErrorIs(t, (&MessageCertificateVerify{}).Unmarshal([]byte{0x04, 0x03}), errBufferTooSmall)
	})

	t.Run("unknown signature scheme", func(t *testing.T) {
		raw := []byte{0x12, 0x34, 0x00, 0x01, 0xFF}
		assert.ErrorIs(t, (&MessageCertificateVerify{}).Unmarshal(raw), errInvalidSignatureScheme)
	})

	t.Run("signature length mismatch", func(t *testing.T) {
		raw := []byte{0x04, 0x03, 0x00, 0x08, 0xDE, 0xAD, 0xBE, 0xEF}
		assert.ErrorIs(t, (&MessageCertificateVerify{}).Unmarshal(raw), errBufferTooSmall)
	})
}

func TestSigningContent(t *testing.T) {
	transcriptHash := bytes.Repeat([]byte{0x42}, 32)

	content := SigningContent(ServerSignatureContext, transcriptHash)

	assert.Equal(t, 64+len(ServerSignatureContext)+1+32, len(content))
	assert.Equal(t, bytes.Repeat([]byte{0x20}, 64), content[:64])
	assert.Equal(t, []byte(ServerSignatureContext), content[64:64+len(ServerSignatureContext)])
	assert.Equal(t, byte(0x00), content[64+len(ServerSignatureContext)])
	assert.Equal(t, transcriptHash, content[64+len(ServerSignatureContext)+1:])

	// Server and client contexts must produce distinct content.
	assert.NotEqual(t, content, SigningContent(ClientSignatureContext, transcriptHash))
}
