// SPDX-FileCopyrightText: 2023 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package extension

// SignatureAlgorithmsCert allows a Client/Server to indicate which signature algorithms
// may be used in digital signatures for X.509 certificates.
// This is separate from signature_algorithms which applies to handshake signatures.
//
// https://tools.ietf.org/html/rfc8446#section-4.2.3
type SignatureAlgorithmsCert struct {
	SignatureSchemes []SignatureScheme
}

// TypeValue returns the extension TypeValue.
func (s SignatureAlgorithmsCert) TypeValue() TypeValue {
	return SignatureAlgorithmsCertTypeValue
}

// Marshal encodes the extension.
func (s *SignatureAlgorithmsCert) Marshal() ([]byte, error) {
	return marshalSignatureSchemeList(s.TypeValue(), s.SignatureSchemes)
}

// Unmarshal populates the extension from encoded data.
func (s *SignatureAlgorithmsCert) Unmarshal(data []byte) error {
	s.SignatureSchemes = []SignatureScheme{}

	return unmarshalSignatureSchemeList(s.TypeValue(), data, &s.SignatureSchemes)
}
