// SPDX-FileCopyrightText: 2023 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package protocol

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestApplicationDataRoundTrip(t *testing.T) {
	a := ApplicationData{Data: []byte{0xDE, 0xAD, 0xBE, 0xEF}}
	raw, err := a.Marshal()
	assert.NoError(t, err)
	assert.Equal(t, a.Size(), len(raw))

	var aNew ApplicationData
	assert.NoError(t, aNew.Unmarshal(raw))
	assert.Equal(t, a.Data, aNew.Data)
}

func TestApplicationDataCopies(t *testing.T) {
	src := []byte{0x01, 0x02, 0x03}

	var a ApplicationData
	assert.NoError(t, a.Unmarshal(src))

	// Decoded payload must not alias the caller's buffer.
	src[0] = 0xFF
	assert.Equal(t, []byte{0x01, 0x02, 0x03}, a.Data)
}

func TestContentTypeString(t *testing.T) {
	cases := []struct {
		in   ContentType
		want string
	}{
		{ContentTypeInvalid, "Invalid"},
		{ContentTypeChangeCipherSpec, "ChangeCipherSpec"},
		{ContentTypeAlert, "Alert"},
		{ContentTypeHandshake, "Handshake"},
		{ContentTypeApplicationData, "ApplicationData"},
		{ContentType(99), "Unknown ContentType: 99"},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, c.in.String())
	}
}
