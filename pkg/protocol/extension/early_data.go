// SPDX-FileCopyrightText: 2023 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package extension

import (
	"errors"

	"golang.org/x/crypto/cryptobyte"
)

var errEarlyDataFormat = errors.New("invalid early_data format")

// EarlyData signals that 0-RTT data is offered or accepted. The extension
// body is empty in ClientHello and EncryptedExtensions. In NewSessionTicket
// it carries the maximum amount of early data the server will accept,
// which is when MaxEarlyDataSize is set
//
// https://tools.ietf.org/html/rfc8446#section-4.2.10
type EarlyData struct {
	// NewSessionTicket only, zero elsewhere.
	MaxEarlyDataSize uint32
}

// TypeValue returns the extension TypeValue.
func (e EarlyData) TypeValue() TypeValue {
	return EarlyDataTypeValue
}

// Marshal encodes the extension.
func (e *EarlyData) Marshal() ([]byte, error) {
	var builder cryptobyte.Builder
	builder.AddUint16(uint16(e.TypeValue()))
	builder.AddUint16LengthPrefixed(func(extBuilder *cryptobyte.Builder) {
		if e.MaxEarlyDataSize != 0 {
			extBuilder.AddUint32(e.MaxEarlyDataSize)
		}
	})

	return builder.Bytes()
}

// Unmarshal populates the extension from encoded data.
func (e *EarlyData) Unmarshal(data []byte) error {
	val := cryptobyte.String(data)
	var extension uint16
	if !val.ReadUint16(&extension) || TypeValue(extension) != e.TypeValue() {
		return errInvalidExtensionType
	}

	var extData cryptobyte.String
	if !val.ReadUint16LengthPrefixed(&extData) {
		return errBufferTooSmall
	}

	switch len(extData) {
	case 0:
		e.MaxEarlyDataSize = 0
	case 4:
		if !extData.ReadUint32(&e.MaxEarlyDataSize) {
			return errEarlyDataFormat
		}
	default:
		return errEarlyDataFormat
	}

	return nil
}
