// SPDX-FileCopyrightText: 2023 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package handshake

import (
	"github.com/pion/tls13/internal/util"
)

// HeaderSize is the size of the static part of every handshake message.
const HeaderSize = 4

// Header is the static first 4 bytes of each handshake message.
//
// https://datatracker.ietf.org/doc/html/rfc8446#section-4
type Header struct {
	Type   Type
	Length uint32 // uint24 on the wire
}

// Marshal encodes a handshake header.
func (h *Header) Marshal() ([]byte, error) {
	out := make([]byte, HeaderSize)

	out[0] = byte(h.Type)
	util.PutBigEndianUint24(out[1:], h.Length)

	return out, nil
}

// Unmarshal populates a handshake header from encoded data.
func (h *Header) Unmarshal(data []byte) error {
	if len(data) < HeaderSize {
		return errBufferTooSmall
	}

	h.Type = Type(data[0])
	h.Length = util.BigEndianUint24(data[1:])

	return nil
}
