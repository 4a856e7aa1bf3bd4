// SPDX-FileCopyrightText: 2026 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package handshake

// MessageEndOfEarlyData signals that all 0-RTT application data has been
// transmitted. It carries no body.
//
// https://datatracker.ietf.org/doc/html/rfc8446#section-4.5
type MessageEndOfEarlyData struct{}

// Type returns the handshake message type.
func (m MessageEndOfEarlyData) Type() Type {
	return TypeEndOfEarlyData
}

// Marshal encodes the MessageEndOfEarlyData into its wire format.
func (m *MessageEndOfEarlyData) Marshal() ([]byte, error) {
	return []byte{}, nil
}

// Unmarshal decodes the MessageEndOfEarlyData from its wire format.
func (m *MessageEndOfEarlyData) Unmarshal(data []byte) error {
	if len(data) != 0 {
		return errLengthMismatch
	}

	return nil
}
