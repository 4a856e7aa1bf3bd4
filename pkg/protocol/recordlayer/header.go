// SPDX-FileCopyrightText: 2023 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package recordlayer

import (
	"encoding/binary"

	"github.com/pion/tls13/pkg/protocol"
)

// HeaderSize is the size of the header preceding every TLS record.
const HeaderSize = 5

// Header is the 5 byte header that starts every TLS record.
//
// https://datatracker.ietf.org/doc/html/rfc8446#section-5.1
type Header struct {
	ContentType protocol.ContentType
	Version     protocol.Version
	ContentLen  uint16
}

// Marshal encodes a TLS record header to binary.
func (h *Header) Marshal() ([]byte, error) {
	out := make([]byte, HeaderSize)

	out[0] = byte(h.ContentType)
	out[1] = h.Version.Major
	out[2] = h.Version.Minor
	binary.BigEndian.PutUint16(out[3:], h.ContentLen)

	return out, nil
}

// Unmarshal populates a TLS record header struct from binary. The legacy
// version field is carried through without validation, peers are required
// to ignore it once version negotiation happens in extensions.
func (h *Header) Unmarshal(data []byte) error {
	if len(data) < HeaderSize {
		return errBufferTooSmall
	}

	h.ContentType = protocol.ContentType(data[0])
	h.Version.Major = data[1]
	h.Version.Minor = data[2]
	h.ContentLen = binary.BigEndian.Uint16(data[3:])

	return nil
}
