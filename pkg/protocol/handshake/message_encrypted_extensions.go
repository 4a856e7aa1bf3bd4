// SPDX-FileCopyrightText: 2026 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package handshake

import (
	"github.com/pion/tls13/pkg/protocol/extension"
)

// MessageEncryptedExtensions carries the extensions the server is not
// required to send in the clear. It is the first message protected under
// the handshake traffic keys.
//
// https://datatracker.ietf.org/doc/html/rfc8446#section-4.3.1
type MessageEncryptedExtensions struct {
	Extensions []extension.Extension
}

// Type returns the Handshake Type.
func (m MessageEncryptedExtensions) Type() Type {
	return TypeEncryptedExtensions
}

// Marshal encodes the Handshake.
func (m *MessageEncryptedExtensions) Marshal() ([]byte, error) {
	return extension.Marshal(m.Extensions)
}

// Unmarshal populates the message from encoded data.
func (m *MessageEncryptedExtensions) Unmarshal(data []byte) error {
	if len(data) < 2 {
		return errBufferTooSmall
	}

	extensions, err := extension.Unmarshal(data)
	if err != nil {
		return err
	}
	m.Extensions = extensions

	return nil
}
