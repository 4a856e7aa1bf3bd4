// SPDX-FileCopyrightText: 2023 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package extension

import (
	"golang.org/x/crypto/cryptobyte"
)

// SignatureAlgorithms allows a Client/Server to negotiate what signature
// schemes may be used in digital signatures for the handshake
//
// https://tools.ietf.org/html/rfc8446#section-4.2.3
type SignatureAlgorithms struct {
	SignatureSchemes []SignatureScheme
}

// TypeValue returns the extension TypeValue.
func (s SignatureAlgorithms) TypeValue() TypeValue {
	return SignatureAlgorithmsTypeValue
}

// Marshal encodes the extension.
func (s *SignatureAlgorithms) Marshal() ([]byte, error) {
	return marshalSignatureSchemeList(s.TypeValue(), s.SignatureSchemes)
}

// Unmarshal populates the extension from encoded data.
func (s *SignatureAlgorithms) Unmarshal(data []byte) error {
	s.SignatureSchemes = []SignatureScheme{}

	return unmarshalSignatureSchemeList(s.TypeValue(), data, &s.SignatureSchemes)
}

func marshalSignatureSchemeList(typeValue TypeValue, schemes []SignatureScheme) ([]byte, error) {
	var builder cryptobyte.Builder
	builder.AddUint16(uint16(typeValue))
	builder.AddUint16LengthPrefixed(func(extBuilder *cryptobyte.Builder) {
		extBuilder.AddUint16LengthPrefixed(func(schemeBuilder *cryptobyte.Builder) {
			for _, v := range schemes {
				schemeBuilder.AddUint16(uint16(v))
			}
		})
	})

	return builder.Bytes()
}

func unmarshalSignatureSchemeList(typeValue TypeValue, data []byte, dst *[]SignatureScheme) error {
	val := cryptobyte.String(data)
	var extension uint16
	if !val.ReadUint16(&extension) || TypeValue(extension) != typeValue {
		return errInvalidExtensionType
	}

	var extData cryptobyte.String
	if !val.ReadUint16LengthPrefixed(&extData) {
		return errBufferTooSmall
	}

	var schemeData cryptobyte.String
	if !extData.ReadUint16LengthPrefixed(&schemeData) {
		return errLengthMismatch
	}

	for !schemeData.Empty() {
		var scheme uint16
		if !schemeData.ReadUint16(&scheme) {
			return errLengthMismatch
		}

		// Unknown schemes are skipped rather than rejected.
		if IsValidSignatureScheme(SignatureScheme(scheme)) {
			*dst = append(*dst, SignatureScheme(scheme))
		}
	}

	return nil
}
