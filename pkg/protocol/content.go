// SPDX-FileCopyrightText: 2023 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package protocol

import "fmt"

// ContentType is the record payload classifier
//
// https://tools.ietf.org/html/rfc8446#section-5.1
type ContentType uint8

// ContentType enums.
const (
	// ContentTypeInvalid is reserved by RFC 8446. It never appears on the
	// wire and no decoder constructs it.
	ContentTypeInvalid          ContentType = 0
	ContentTypeChangeCipherSpec ContentType = 20
	ContentTypeAlert            ContentType = 21
	ContentTypeHandshake        ContentType = 22
	ContentTypeApplicationData  ContentType = 23
)

func (c ContentType) String() string {
	switch c {
	case ContentTypeInvalid:
		return "Invalid"
	case ContentTypeChangeCipherSpec:
		return "ChangeCipherSpec"
	case ContentTypeAlert:
		return "Alert"
	case ContentTypeHandshake:
		return "Handshake"
	case ContentTypeApplicationData:
		return "ApplicationData"
	}

	return fmt.Sprintf("Unknown ContentType: %d", uint8(c))
}

// Content is the top level distinguisher for a TLS record payload.
// Size reports the exact byte count Marshal will produce, letting
// callers size buffers without encoding.
type Content interface {
	ContentType() ContentType
	Marshal() ([]byte, error)
	Unmarshal(data []byte) error
	Size() int
}
