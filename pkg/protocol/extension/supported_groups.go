// SPDX-FileCopyrightText: 2023 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package extension

import (
	"errors"

	"golang.org/x/crypto/cryptobyte"
)

var errInvalidSupportedGroupsFormat = errors.New("invalid supported_groups format")

// SupportedGroups allows a Client/Server to negotiate the named groups
// supported for key exchange
//
// https://tools.ietf.org/html/rfc8446#section-4.2.7
type SupportedGroups struct {
	// Ordered by preference, most-preferred first.
	Groups []NamedGroup
}

// TypeValue returns the extension TypeValue.
func (s SupportedGroups) TypeValue() TypeValue {
	return SupportedGroupsTypeValue
}

// Marshal encodes the extension. Requires at least one group.
func (s *SupportedGroups) Marshal() ([]byte, error) {
	if len(s.Groups) == 0 {
		return nil, errInvalidSupportedGroupsFormat
	}

	// validate the groups according to RFC 8446 section 4.2.7.
	for _, g := range s.Groups {
		if !IsValidNamedGroup(g) {
			return nil, errInvalidSupportedGroupsFormat
		}
	}

	var builder cryptobyte.Builder
	builder.AddUint16(uint16(s.TypeValue()))
	builder.AddUint16LengthPrefixed(func(extBuilder *cryptobyte.Builder) {
		// named_group_list<2..2^16-1>
		extBuilder.AddUint16LengthPrefixed(func(listBuilder *cryptobyte.Builder) {
			for _, g := range s.Groups {
				listBuilder.AddUint16(uint16(g))
			}
		})
	})

	return builder.Bytes()
}

// Unmarshal decodes the extension from either ClientHello or EncryptedExtensions.
// Unrecognized/unsupported group codes are ignored.
func (s *SupportedGroups) Unmarshal(data []byte) error {
	val := cryptobyte.String(data)
	var extension uint16
	if !val.ReadUint16(&extension) || TypeValue(extension) != s.TypeValue() {
		return errInvalidExtensionType
	}

	var extData cryptobyte.String
	if !val.ReadUint16LengthPrefixed(&extData) {
		return errBufferTooSmall
	}

	// named_group_list<2..2^16-1>
	var list cryptobyte.String
	if !extData.ReadUint16LengthPrefixed(&list) || !extData.Empty() {
		return errInvalidSupportedGroupsFormat
	}

	// Must be at least one uint16 (2 bytes) and an even number of bytes.
	if len(list) < 2 || (len(list)%2) != 0 {
		return errInvalidSupportedGroupsFormat
	}

	s.Groups = s.Groups[:0]
	for !list.Empty() {
		var gcode uint16
		if !list.ReadUint16(&gcode) {
			return errInvalidSupportedGroupsFormat
		}

		namedGroup := NamedGroup(gcode)
		if IsValidNamedGroup(namedGroup) {
			s.Groups = append(s.Groups, namedGroup)
		}
	}

	return nil
}
