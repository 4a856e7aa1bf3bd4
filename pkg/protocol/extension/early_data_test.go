// SPDX-FileCopyrightText: 2023 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package extension

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEarlyData(t *testing.T) {
	t.Run("ClientHello form", func(t *testing.T) {
		extension := EarlyData{}

		raw, err := extension.Marshal()
		assert.NoError(t, err)
		assert.Equal(t, []byte{
			0x00, 0x2a, // extension type
			0x00, 0x00, // extension length
		}, raw)

		newExtension := EarlyData{MaxEarlyDataSize: 42}
		assert.NoError(t, newExtension.Unmarshal(raw))
		assert.Equal(t, uint32(0), newExtension.MaxEarlyDataSize)
	})

	t.Run("NewSessionTicket form", func(t *testing.T) {
		extension := EarlyData{MaxEarlyDataSize: 0x4000}

		raw, err := extension.Marshal()
		assert.NoError(t, err)
		assert.Equal(t, []byte{
			0x00, 0x2a, // extension type
			0x00, 0x04, // extension length
			0x00, 0x00, 0x40, 0x00, // max_early_data_size
		}, raw)

		newExtension := EarlyData{}
		assert.NoError(t, newExtension.Unmarshal(raw))
		assert.Equal(t, extension.MaxEarlyDataSize, newExtension.MaxEarlyDataSize)
	})

	t.Run("invalid body length", func(t *testing.T) {
		raw := []byte{
			0x00, 0x2a, // extension type
			0x00, 0x02, // extension length
			0x00, 0x00,
		}
		extension := EarlyData{}
		assert.ErrorIs(t, extension.Unmarshal(raw), errEarlyDataFormat)
	})
}
