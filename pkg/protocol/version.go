// SPDX-FileCopyrightText: 2023 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

// Package protocol provides the TLS wire format
package protocol

// Version enums.
var (
	Version1_0 = Version{Major: 0x03, Minor: 0x01} //nolint:gochecknoglobals
	Version1_1 = Version{Major: 0x03, Minor: 0x02} //nolint:gochecknoglobals
	Version1_2 = Version{Major: 0x03, Minor: 0x03} //nolint:gochecknoglobals
	Version1_3 = Version{Major: 0x03, Minor: 0x04} //nolint:gochecknoglobals
)

// Version is the minor/major value in the RecordLayer
// and ClientHello/ServerHello
//
// https://tools.ietf.org/html/rfc8446#section-5.1
type Version struct {
	Major, Minor uint8
}

// Equal determines if two protocol versions are equal.
func (v Version) Equal(x Version) bool {
	return v.Major == x.Major && v.Minor == x.Minor
}

// IsValidBytes returns true if the bytes represent a valid TLS version code.
// TLS 1.3 freezes every version field at a legacy value, so anything
// from TLS 1.0 through TLS 1.3 is accepted on the wire.
//
// https://tools.ietf.org/html/rfc8446#section-5.1 (see legacy_record_version)
func IsValidBytes(major uint8, minor uint8) bool {
	return major == 0x03 && minor >= 0x01 && minor <= 0x04
}

// IsValidVersion returns true if v represents a valid TLS version code.
// See IsValidBytes for the accepted range.
func IsValidVersion(v Version) bool {
	return IsValidBytes(v.Major, v.Minor)
}
