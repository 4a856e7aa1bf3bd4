// SPDX-FileCopyrightText: 2026 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package handshake

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHandshakeMessageEndOfEarlyData(t *testing.T) {
	rawEndOfEarlyData := []byte{}
	parsedEndOfEarlyData := &MessageEndOfEarlyData{}

	c := &MessageEndOfEarlyData{}
	assert.NoError(t, c.Unmarshal(rawEndOfEarlyData))
	assert.Equal(t, parsedEndOfEarlyData, c)

	raw, err := c.Marshal()
	assert.NoError(t, err)
	assert.Equal(t, rawEndOfEarlyData, raw)
}

func TestHandshakeMessageEndOfEarlyDataInvalid(t *testing.T) {
	c := &MessageEndOfEarlyData{}
	assert.ErrorIs(t, c.Unmarshal([]byte{0x00}), errLengthMismatch)
}
