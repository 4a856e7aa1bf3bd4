// SPDX-FileCopyrightText: 2023 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package protocol

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDecodeCompressionMethods(t *testing.T) {
	testCases := []struct {
		buf    []byte
		result []*CompressionMethod
		err    error
	}{
		{[]byte{}, nil, errBufferTooSmall},
		{[]byte{0x01}, nil, errBufferTooSmall},
		{[]byte{0x01, 0x00}, []*CompressionMethod{{ID: CompressionMethodNull}}, nil},
		// Unsupported methods are dropped.
		{[]byte{0x02, 0x00, 0x01}, []*CompressionMethod{{ID: CompressionMethodNull}}, nil},
	}

	for _, testCase := range testCases {
		out, err := DecodeCompressionMethods(testCase.buf)
		assert.ErrorIs(t, err, testCase.err)
		if testCase.err == nil {
			assert.Equal(t, testCase.result, out)
		}
	}
}

func TestEncodeCompressionMethods(t *testing.T) {
	assert.Equal(t, []byte{0x00}, EncodeCompressionMethods(nil))
	assert.Equal(
		t,
		[]byte{0x01, 0x00},
		EncodeCompressionMethods([]*CompressionMethod{{ID: CompressionMethodNull}}),
	)
}
