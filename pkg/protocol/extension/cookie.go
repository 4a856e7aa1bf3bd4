// SPDX-FileCopyrightText: 2023 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package extension

import (
	"errors"

	"golang.org/x/crypto/cryptobyte"
)

var errCookieExtFormat = errors.New("invalid cookie format")

// CookieExt carries an opaque server value that the client must echo back
// in the ClientHello that follows a HelloRetryRequest
//
// https://tools.ietf.org/html/rfc8446#section-4.2.2
type CookieExt struct {
	Cookie []byte
}

// TypeValue returns the extension TypeValue.
func (c CookieExt) TypeValue() TypeValue {
	return CookieTypeValue
}

// Marshal encodes the extension.
func (c *CookieExt) Marshal() ([]byte, error) {
	cookieLength := len(c.Cookie)
	if cookieLength == 0 || cookieLength > 0xfffd {
		return nil, errCookieExtFormat
	}
	var builder cryptobyte.Builder
	builder.AddUint16(uint16(c.TypeValue()))
	builder.AddUint16LengthPrefixed(func(extBuilder *cryptobyte.Builder) {
		extBuilder.AddUint16LengthPrefixed(func(cookieBuilder *cryptobyte.Builder) {
			cookieBuilder.AddBytes(c.Cookie)
		})
	})

	return builder.Bytes()
}

// Unmarshal populates the extension from encoded data.
func (c *CookieExt) Unmarshal(data []byte) error {
	val := cryptobyte.String(data)
	var extension uint16
	val.ReadUint16(&extension)
	if TypeValue(extension) != c.TypeValue() {
		return errInvalidExtensionType
	}

	var extData cryptobyte.String
	if !val.ReadUint16LengthPrefixed(&extData) {
		return errBufferTooSmall
	}

	var cookie cryptobyte.String
	if !extData.ReadUint16LengthPrefixed(&cookie) {
		return errCookieExtFormat
	}

	cookieLength := len(cookie)
	if cookieLength == 0 || cookieLength > 0xfffd {
		return errCookieExtFormat
	}

	c.Cookie = append([]byte(nil), cookie...)

	return nil
}
