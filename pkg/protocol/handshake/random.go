// SPDX-FileCopyrightText: 2023 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package handshake

import (
	"crypto/rand"
)

// RandomLength is the fixed size of the random value carried in hello messages.
const RandomLength = 32

// Random is the 32 byte nonce a client or server generates fresh for each
// hello message it sends.
//
// https://datatracker.ietf.org/doc/html/rfc8446#section-4.1.2
type Random struct {
	RandomBytes [RandomLength]byte
}

// MarshalFixed encodes the random value.
func (r *Random) MarshalFixed() [RandomLength]byte {
	return r.RandomBytes
}

// UnmarshalFixed populates the random value from encoded data.
func (r *Random) UnmarshalFixed(data [RandomLength]byte) {
	copy(r.RandomBytes[:], data[:])
}

// Populate fills the random value with fresh randomness. It may be called
// multiple times.
func (r *Random) Populate() error {
	_, err := rand.Read(r.RandomBytes[:])

	return err
}
