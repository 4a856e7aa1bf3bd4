// SPDX-FileCopyrightText: 2023 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package extension

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSignatureAlgorithmsCert(t *testing.T) {
	rawSignatureAlgorithmsCert := []byte{
		0x00, 0x32, // Extension type: signature_algorithms_cert (50)
		0x00, 0x08, // Extension length: 8 bytes
		0x00, 0x06, // Signature schemes length: 6 bytes
		0x04, 0x03, // ecdsa_secp256r1_sha256
		0x05, 0x03, // ecdsa_secp384r1_sha384
		0x06, 0x03, // ecdsa_secp521r1_sha512
	}
	parsedSignatureAlgorithmsCert := &SignatureAlgorithmsCert{
		SignatureSchemes: []SignatureScheme{
			ECDSAWithP256AndSHA256,
			ECDSAWithP384AndSHA384,
			ECDSAWithP521AndSHA512,
		},
	}

	raw, err := parsedSignatureAlgorithmsCert.Marshal()
	assert.NoError(t, err)
	assert.Equal(t, rawSignatureAlgorithmsCert, raw, "SignatureAlgorithmsCert marshal")

	ext := &SignatureAlgorithmsCert{}
	err = ext.Unmarshal(rawSignatureAlgorithmsCert)
	assert.NoError(t, err)
	assert.Equal(t, parsedSignatureAlgorithmsCert, ext, "SignatureAlgorithmsCert unmarshal")
}

func TestSignatureAlgorithmsCertTypeValue(t *testing.T) {
	ext := &SignatureAlgorithmsCert{}
	assert.Equal(t, SignatureAlgorithmsCertTypeValue, ext.TypeValue(), "SignatureAlgorithmsCert TypeValue")
	assert.Equal(t, TypeValue(50), ext.TypeValue(), "SignatureAlgorithmsCert TypeValue should be 50")
}

func FuzzSignatureAlgorithmsCertUnmarshal(f *testing.F) {
	testCases := [][]byte{
		// Basic valid extension with ECDSA schemes
		{
			0x00, 0x32, // Extension type: signature_algorithms_cert (50)
			0x00, 0x08, // Extension length: 8 bytes
			0x00, 0x06, // Signature schemes length: 6 bytes
			0x04, 0x03, // ecdsa_secp256r1_sha256
			0x05, 0x03, // ecdsa_secp384r1_sha384
			0x06, 0x03, // ecdsa_secp521r1_sha512
		},
		// PSS schemes
		{
			0x00, 0x32, // Extension type
			0x00, 0x08, // Extension length
			0x00, 0x06, // Schemes length
			0x08, 0x04, // rsa_pss_rsae_sha256
			0x08, 0x05, // rsa_pss_rsae_sha384
			0x08, 0x09, // rsa_pss_pss_sha256 (unassigned here, filtered)
		},
		// Empty scheme list
		{
			0x00, 0x32, // Extension type
			0x00, 0x02, // Extension length: 2 bytes
			0x00, 0x00, // Schemes length: 0
		},
		// Minimal malformed input
		{0x00},
		// Wrong extension type
		{0x00, 0x0d, 0x00, 0x04, 0x00, 0x02, 0x04, 0x03},
		// Truncated data
		{0x00, 0x32, 0x00, 0x06, 0x00, 0x04, 0x04},
	}
	for _, tc := range testCases {
		f.Add(tc)
	}

	f.Fuzz(func(_ *testing.T, data []byte) {
		_ = (&SignatureAlgorithmsCert{}).Unmarshal(data)
	})
}
