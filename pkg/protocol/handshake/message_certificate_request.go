// SPDX-FileCopyrightText: 2026 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package handshake

import (
	"encoding/binary"

	"github.com/pion/tls13/pkg/protocol/extension"
	"golang.org/x/crypto/cryptobyte"
)

// MessageCertificateRequest represents the CertificateRequest handshake message for TLS 1.3.
// This message is used by the server to request a certificate from the client.
//
// https://datatracker.ietf.org/doc/html/rfc8446#section-4.3.2
type MessageCertificateRequest struct {
	// CertificateRequestContext is an opaque value that the server creates
	// to bind the client's certificate to the handshake context.
	CertificateRequestContext []byte

	// Extensions contains the list of extensions.
	// The signature_algorithms extension is REQUIRED per RFC 8446.
	Extensions []extension.Extension
}

// Type returns the handshake message type.
func (m MessageCertificateRequest) Type() Type {
	return TypeCertificateRequest
}

const (
	maxUint16               = 0xffff
	certReqContextMaxLength = 255
	certReqMinLength        = 3
)

// Marshal encodes the MessageCertificateRequest into its wire format.
//
// Wire format:
//
//	[1 byte]  certificate_request_context length
//	[0-255]   certificate_request_context data
//	[2 bytes] extensions length (from extension.Marshal)
//	[variable] extensions data
func (m *MessageCertificateRequest) Marshal() ([]byte, error) {
	// Validate certificate_request_context length
	if len(m.CertificateRequestContext) > certReqContextMaxLength {
		return nil, errCertificateRequestContextTooLong
	}

	// Validate that signature_algorithms extension is present (required by RFC 8446)
	hasSignatureAlgorithms := false
	for _, ext := range m.Extensions {
		if ext.TypeValue() == extension.SignatureAlgorithmsTypeValue {
			hasSignatureAlgorithms = true

			break
		}
	}
	if !hasSignatureAlgorithms {
		return nil, errMissingSignatureAlgorithmsExtension
	}

	var builder cryptobyte.Builder

	// Add certificate_request_context (1-byte length prefix)
	builder.AddUint8LengthPrefixed(func(b *cryptobyte.Builder) {
		b.AddBytes(m.CertificateRequestContext)
	})

	// Marshal extensions (includes 2-byte length prefix)
	extensionsData, err := extension.Marshal(m.Extensions)
	if err != nil {
		return nil, err
	}
	// Validate extensions length is in valid range <2..2^16-1>
	if len(extensionsData) < 2 || len(extensionsData) > maxUint16 {
		return nil, errInvalidExtensionsLength
	}
	builder.AddBytes(extensionsData)

	return builder.Bytes()
}

// Unmarshal decodes the MessageCertificateRequest from its wire format.
func (m *MessageCertificateRequest) Unmarshal(data []byte) error {
	// Validate minimum data length
	if len(data) < certReqMinLength {
		return errBufferTooSmall
	}

	str := cryptobyte.String(data)

	// Read certificate_request_context
	var contextData cryptobyte.String
	if !str.ReadUint8LengthPrefixed(&contextData) {
		return errInvalidCertificateRequestContext
	}
	m.CertificateRequestContext = make([]byte, len(contextData))
	copy(m.CertificateRequestContext, contextData)

	// Read extensions length (2 bytes)
	if len(str) < 2 {
		return errInvalidExtensionsLength
	}
	extensionsLen := binary.BigEndian.Uint16(str[:2])

	// Validate we have exactly extensionsLen bytes remaining after the length field
	if len(str[2:]) != int(extensionsLen) {
		return errLengthMismatch
	}

	var err error
	m.Extensions, err = extension.Unmarshal([]byte(str))
	if err != nil {
		return err
	}

	// Validate that signature_algorithms extension is present (required by RFC 8446)
	hasSignatureAlgorithms := false
	for _, ext := range m.Extensions {
		if ext.TypeValue() == extension.SignatureAlgorithmsTypeValue {
			hasSignatureAlgorithms = true

			break
		}
	}
	if !hasSignatureAlgorithms {
		return errMissingSignatureAlgorithmsExtension
	}

	return nil
}
