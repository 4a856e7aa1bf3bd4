// SPDX-FileCopyrightText: 2023 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package protocol

import "errors"

var errInvalidCipherSpec = &FatalError{Err: errors.New("cipher spec invalid")} //nolint:err113

// ChangeCipherSpec protocol exists to signal transitions in ciphering
// strategies. In TLS 1.3 it carries no meaning and is only sent for
// middlebox compatibility, but the single message it consists of is
// still a one byte record of value 1.
//
// https://tools.ietf.org/html/rfc8446#section-5
type ChangeCipherSpec struct{}

// ContentType returns the ContentType of this Content.
func (c ChangeCipherSpec) ContentType() ContentType {
	return ContentTypeChangeCipherSpec
}

// Marshal encodes the ChangeCipherSpec to binary.
func (c *ChangeCipherSpec) Marshal() ([]byte, error) {
	return []byte{0x01}, nil
}

// Unmarshal populates the ChangeCipherSpec from binary.
func (c *ChangeCipherSpec) Unmarshal(data []byte) error {
	if len(data) == 1 && data[0] == 0x01 {
		return nil
	}

	return errInvalidCipherSpec
}

// Size returns the number of bytes Marshal will produce.
func (c *ChangeCipherSpec) Size() int {
	return 1
}
