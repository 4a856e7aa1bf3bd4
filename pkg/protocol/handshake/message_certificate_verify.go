// SPDX-FileCopyrightText: 2026 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package handshake

import (
	"bytes"
	"encoding/binary"

	"github.com/pion/tls13/pkg/protocol/extension"
)

// MessageCertificateVerify provides explicit proof that an endpoint
// possesses the private key corresponding to its certificate.
//
// https://datatracker.ietf.org/doc/html/rfc8446#section-4.4.3
type MessageCertificateVerify struct {
	SignatureScheme extension.SignatureScheme
	Signature       []byte
}

// Context strings mixed into the signed content, distinguishing server
// signatures from client signatures.
const (
	ServerSignatureContext = "TLS 1.3, server CertificateVerify"
	ClientSignatureContext = "TLS 1.3, client CertificateVerify"
)

const handshakeMessageCertificateVerifyMinLength = 4

// SigningContent builds the content covered by the signature: 64 octets of
// 0x20, the context string, a single zero byte, and the transcript hash.
func SigningContent(contextString string, transcriptHash []byte) []byte {
	out := bytes.Repeat([]byte{0x20}, 64)
	out = append(out, contextString...)
	out = append(out, 0x00)

	return append(out, transcriptHash...)
}

// Type returns the Handshake Type.
func (m MessageCertificateVerify) Type() Type {
	return TypeCertificateVerify
}

// Marshal encodes the Handshake.
func (m *MessageCertificateVerify) Marshal() ([]byte, error) {
	out := make([]byte, 2+2+len(m.Signature))

	binary.BigEndian.PutUint16(out[0:], uint16(m.SignatureScheme))
	binary.BigEndian.PutUint16(out[2:], uint16(len(m.Signature))) //nolint:gosec // G115
	copy(out[4:], m.Signature)

	return out, nil
}

// Unmarshal populates the message from encoded data.
func (m *MessageCertificateVerify) Unmarshal(data []byte) error {
	if len(data) < handshakeMessageCertificateVerifyMinLength {
		return errBufferTooSmall
	}

	scheme := extension.SignatureScheme(binary.BigEndian.Uint16(data[0:2]))
	if !extension.IsValidSignatureScheme(scheme) {
		return errInvalidSignatureScheme
	}
	m.SignatureScheme = scheme

	signatureLength := int(binary.BigEndian.Uint16(data[2:]))
	if (signatureLength + 4) != len(data) {
		return errBufferTooSmall
	}

	m.Signature = append([]byte{}, data[4:]...)

	return nil
}
