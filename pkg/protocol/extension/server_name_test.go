// SPDX-FileCopyrightText: 2023 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package extension

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestServerName(t *testing.T) {
	extension := ServerName{ServerName: "test.domain"}

	raw, err := extension.Marshal()
	assert.NoError(t, err)

	newExtension := ServerName{}
	assert.NoError(t, newExtension.Unmarshal(raw))
	assert.Equal(t, extension.ServerName, newExtension.ServerName)
}

func TestServerNameAcknowledgment(t *testing.T) {
	// A server acknowledges SNI with empty extension_data.
	raw := []byte{0x00, 0x00, 0x00, 0x00}

	newExtension := ServerName{}
	assert.NoError(t, newExtension.Unmarshal(raw))
	assert.Equal(t, "", newExtension.ServerName)

	out, err := newExtension.Marshal()
	assert.NoError(t, err)
	assert.Equal(t, raw, out)
}

func TestServerNameInvalid(t *testing.T) {
	t.Run("trailing dot", func(t *testing.T) {
		extension := ServerName{ServerName: "test.domain."}

		raw, err := extension.Marshal()
		assert.NoError(t, err)

		newExtension := ServerName{}
		assert.ErrorIs(t, newExtension.Unmarshal(raw), errInvalidSNIFormat)
	})

	t.Run("wrong extension type", func(t *testing.T) {
		newExtension := ServerName{}
		assert.ErrorIs(t, newExtension.Unmarshal([]byte{0x00, 0x10}), errInvalidExtensionType)
	})

	t.Run("empty name list", func(t *testing.T) {
		raw := []byte{
			0x00, 0x00, // extension type
			0x00, 0x02, // extension length
			0x00, 0x00, // name list length
		}
		newExtension := ServerName{}
		assert.ErrorIs(t, newExtension.Unmarshal(raw), errInvalidSNIFormat)
	})
}
