// SPDX-FileCopyrightText: 2023 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package tls13

import (
	"io"

	"github.com/pion/logging"
	"github.com/pion/tls13/pkg/crypto/keyschedule"
)

// Config is used to configure a TLS record-layer Conn.
// After a Config is passed to NewConn it must not be modified.
// A nil Config is equivalent to the zero Config.
type Config struct {
	// KeySchedule, when set, is handed through to handshake message
	// decoding so Finished bodies can be length checked against the
	// negotiated hash. The Conn never derives secrets from it.
	KeySchedule *keyschedule.Schedule

	// Transcript, when set, receives the raw fragment bytes of every
	// plaintext handshake record the Conn reads or writes. Protected
	// handshake records are not mirrored, the caller appends those after
	// processing them so Finished verification can run against the
	// transcript as it stood before the message.
	Transcript io.Writer

	// PaddingLengthGenerator, when set, decides how many zero padding
	// bytes are added to each protected record given the content length.
	PaddingLengthGenerator func(contentLen int) int

	// LoggerFactory produces the Conn's logger. Defaults to
	// logging.NewDefaultLoggerFactory().
	LoggerFactory logging.LoggerFactory
}
