// SPDX-FileCopyrightText: 2026 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package recordlayer

import (
	"math"

	"github.com/pion/tls13/pkg/protocol"
)

// Ciphertext implements the TLSCiphertext envelope around a protected
// record. Record holds the AEAD output, the encrypted TLSInnerPlaintext
// followed by the authentication tag.
//
// https://datatracker.ietf.org/doc/html/rfc8446#section-5.2
type Ciphertext struct {
	Record []byte
}

// MarshalHeader encodes the 5 byte header preceding the protected record,
// the bytes an AEAD uses as additional data. The outer content type is
// always application_data and the version is pinned to the TLS 1.2 value.
func (c *Ciphertext) MarshalHeader() ([]byte, error) {
	if len(c.Record) > math.MaxUint16 {
		return nil, ErrInvalidPacketLength
	}

	h := &Header{
		ContentType: protocol.ContentTypeApplicationData,
		Version:     protocol.Version1_2,
		ContentLen:  uint16(len(c.Record)), //nolint:gosec // G115
	}

	return h.Marshal()
}

// Marshal encodes a TLSCiphertext record to binary.
func (c *Ciphertext) Marshal() ([]byte, error) {
	headerRaw, err := c.MarshalHeader()
	if err != nil {
		return nil, err
	}

	return append(headerRaw, c.Record...), nil
}

// Unmarshal populates a TLSCiphertext from binary. The outer content type
// must be application_data and the version field must carry the legacy
// TLS 1.2 value. The record bytes are copied.
func (c *Ciphertext) Unmarshal(data []byte) error {
	var h Header
	if err := h.Unmarshal(data); err != nil {
		return err
	}
	if h.ContentType != protocol.ContentTypeApplicationData {
		return errInvalidContentType
	}
	if !h.Version.Equal(protocol.Version1_2) {
		return errUnsupportedProtocolVersion
	}
	if len(data) < HeaderSize+int(h.ContentLen) {
		return errBufferTooSmall
	}

	c.Record = append([]byte{}, data[HeaderSize:HeaderSize+int(h.ContentLen)]...)

	return nil
}

// Size returns the encoded size of the record, header included.
func (c *Ciphertext) Size() int {
	return HeaderSize + len(c.Record)
}
