// SPDX-FileCopyrightText: 2023 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package protocol

import "errors"

var errBufferTooSmall = &TemporaryError{Err: errors.New("buffer is too small")} //nolint:err113

// CompressionMethodID is the ID for a CompressionMethod.
type CompressionMethodID byte

// CompressionMethodNull is the only compression method defined for TLS 1.3.
// The legacy fields that carry it exist for wire compatibility only.
const CompressionMethodNull CompressionMethodID = 0

// CompressionMethod represents a TLS Compression Method.
type CompressionMethod struct {
	ID CompressionMethodID
}

// CompressionMethods returns all supported CompressionMethods.
func CompressionMethods() map[CompressionMethodID]*CompressionMethod {
	return map[CompressionMethodID]*CompressionMethod{
		CompressionMethodNull: {ID: CompressionMethodNull},
	}
}

// DecodeCompressionMethods decodes a list of CompressionMethods.
// Methods this implementation does not support are dropped.
func DecodeCompressionMethods(buf []byte) ([]*CompressionMethod, error) {
	if len(buf) < 1 {
		return nil, errBufferTooSmall
	}
	compressionMethodsCount := int(buf[0])
	c := []*CompressionMethod{}
	for i := 0; i < compressionMethodsCount; i++ {
		if len(buf) <= i+1 {
			return nil, errBufferTooSmall
		}
		id := CompressionMethodID(buf[i+1])
		if compressionMethod, ok := CompressionMethods()[id]; ok {
			c = append(c, compressionMethod)
		}
	}

	return c, nil
}

// EncodeCompressionMethods encodes a list of CompressionMethods.
func EncodeCompressionMethods(methods []*CompressionMethod) []byte {
	out := []byte{byte(len(methods))}
	for _, method := range methods {
		out = append(out, byte(method.ID))
	}

	return out
}
