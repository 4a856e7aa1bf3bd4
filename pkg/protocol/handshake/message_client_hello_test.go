// SPDX-FileCopyrightText: 2023 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package handshake

import (
	"testing"

	"github.com/pion/tls13/pkg/protocol"
	"github.com/pion/tls13/pkg/protocol/extension"
	"github.com/stretchr/testify/assert"
)

func TestHandshakeMessageClientHello(t *testing.T) {
	rawClientHello := []byte{
		0x03, 0x03, // legacy_version
		// random
		0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07, 0x08, 0x09, 0x0A, 0x0B, 0x0C, 0x0D, 0x0E, 0x0F, 0x10,
		0x11, 0x12, 0x13, 0x14, 0x15, 0x16, 0x17, 0x18, 0x19, 0x1A, 0x1B, 0x1C, 0x1D, 0x1E, 0x1F, 0x20,
		0x00,       // legacy_session_id length = 0
		0x00, 0x02, // cipher_suites length = 2
		0x13, 0x01, // TLS_AES_128_GCM_SHA256
		0x01, 0x00, // legacy_compression_methods
		0x00, 0x00, // extensions length = 0
	}

	parsedClientHello := &MessageClientHello{
		Version: protocol.Version{Major: 0x03, Minor: 0x03},
		Random: Random{
			RandomBytes: [RandomLength]byte{
				0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07, 0x08, 0x09, 0x0A, 0x0B, 0x0C, 0x0D, 0x0E, 0x0F, 0x10,
				0x11, 0x12, 0x13, 0x14, 0x15, 0x16, 0x17, 0x18, 0x19, 0x1A, 0x1B, 0x1C, 0x1D, 0x1E, 0x1F, 0x20,
			},
		},
		SessionID:      []byte{},
		CipherSuiteIDs: []uint16{0x1301},
		CompressionMethods: []*protocol.CompressionMethod{
			{ID: protocol.CompressionMethodNull},
		},
		Extensions: []extension.Extension{},
	}

	c := &MessageClientHello{}
	assert.NoError(t, c.Unmarshal(rawClientHello))
	assert.Equal(t, parsedClientHello, c)

	raw, err := c.Marshal()
	assert.NoError(t, err)
	assert.Equal(t, rawClientHello, raw)
}

func TestHandshakeMessageClientHelloTruncated(t *testing.T) {
	base := []byte{
		0x03, 0x03,
		0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07, 0x08, 0x09, 0x0A, 0x0B, 0x0C, 0x0D, 0x0E, 0x0F, 0x10,
		0x11, 0x12, 0x13, 0x14, 0x15, 0x16, 0x17, 0x18, 0x19, 0x1A, 0x1B, 0x1C, 0x1D, 0x1E, 0x1F, 0x20,
	}

	for _, test := range []struct {
		name string
		data []byte
	}{
		{"empty", []byte{}},
		{"version only", []byte{0x03, 0x03}},
		{"no session id length", base},
		{"session id exceeds buffer", append(append([]byte{}, base...), 0x05, 0x01, 0x02)},
		{"no cipher suites", append(append([]byte{}, base...), 0x00)},
		{"cipher suites exceed buffer", append(append([]byte{}, base...), 0x00, 0x00, 0x04, 0x13)},
	} {
		t.Run(test.name, func(t *testing.T) {
			assert.ErrorIs(t, (&MessageClientHello{}).Unmarshal(test.data), errBufferTooSmall)
		})
	}
}

func TestHandshakeMessageClientHelloType(t *testing.T) {
	assert.Equal(t, TypeClientHello, (&MessageClientHello{}).Type())
}
