// SPDX-FileCopyrightText: 2026 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package handshake

// KeyUpdateRequest signals whether the receiver should answer with a
// KeyUpdate of its own.
//
// https://datatracker.ietf.org/doc/html/rfc8446#section-4.6.3
type KeyUpdateRequest uint8

// KeyUpdateRequest values.
const (
	KeyUpdateNotRequested KeyUpdateRequest = 0
	KeyUpdateRequested    KeyUpdateRequest = 1
)

// MessageKeyUpdate requests that the peer update its sending keys. It may
// only be sent after the handshake is complete.
type MessageKeyUpdate struct {
	RequestUpdate KeyUpdateRequest
}

// Type returns the handshake message type.
func (m MessageKeyUpdate) Type() Type {
	return TypeKeyUpdate
}

// Marshal encodes the MessageKeyUpdate into its wire format.
func (m *MessageKeyUpdate) Marshal() ([]byte, error) {
	if m.RequestUpdate > KeyUpdateRequested {
		return nil, errInvalidKeyUpdateRequest
	}

	return []byte{byte(m.RequestUpdate)}, nil
}

// Unmarshal decodes the MessageKeyUpdate from its wire format.
func (m *MessageKeyUpdate) Unmarshal(data []byte) error {
	if len(data) < 1 {
		return errBufferTooSmall
	}
	if len(data) != 1 {
		return errLengthMismatch
	}
	if KeyUpdateRequest(data[0]) > KeyUpdateRequested {
		return errInvalidKeyUpdateRequest
	}
	m.RequestUpdate = KeyUpdateRequest(data[0])

	return nil
}
