// SPDX-FileCopyrightText: 2023 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package extension

// SignatureScheme is a TLS 1.3 signature scheme code (RFC 8446 section 4.2.3).
type SignatureScheme uint16

// Signature schemes used by TLS 1.3 (RFC 8446 section 4.2.3).
const (
	// RSASSA-PKCS1-v1_5 algorithms.
	PKCS1WithSHA256 SignatureScheme = 0x0401
	PKCS1WithSHA384 SignatureScheme = 0x0501
	PKCS1WithSHA512 SignatureScheme = 0x0601

	// ECDSA algorithms.
	ECDSAWithP256AndSHA256 SignatureScheme = 0x0403
	ECDSAWithP384AndSHA384 SignatureScheme = 0x0503
	ECDSAWithP521AndSHA512 SignatureScheme = 0x0603

	// RSASSA-PSS algorithms with public key OID rsaEncryption.
	PSSWithSHA256 SignatureScheme = 0x0804
	PSSWithSHA384 SignatureScheme = 0x0805
	PSSWithSHA512 SignatureScheme = 0x0806

	// EdDSA algorithms.
	Ed25519 SignatureScheme = 0x0807
	Ed448   SignatureScheme = 0x0808

	// Legacy algorithms.
	PKCS1WithSHA1 SignatureScheme = 0x0201
	ECDSAWithSHA1 SignatureScheme = 0x0203
)

// Private-use range as defined in (RFC 8446 section 4.2.3).
const (
	SignatureSchemePrivateStart = 0xFE00
	SignatureSchemePrivateEnd   = 0xFFFF
)

// IsValidSignatureScheme returns if s is a known scheme or if it's within the
// RFC-designated private-use range. This is not a negotiation check.
func IsValidSignatureScheme(scheme SignatureScheme) bool {
	switch scheme {
	case PKCS1WithSHA256,
		PKCS1WithSHA384,
		PKCS1WithSHA512,
		ECDSAWithP256AndSHA256,
		ECDSAWithP384AndSHA384,
		ECDSAWithP521AndSHA512,
		PSSWithSHA256,
		PSSWithSHA384,
		PSSWithSHA512,
		Ed25519,
		Ed448,
		PKCS1WithSHA1,
		ECDSAWithSHA1:

		return true
	}

	return uint16(scheme) >= SignatureSchemePrivateStart
}
