// SPDX-FileCopyrightText: 2026 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package handshake

import (
	"github.com/pion/tls13/pkg/protocol/extension"
	"golang.org/x/crypto/cryptobyte"
)

// MessageNewSessionTicket is sent by the server after the handshake to
// provision a PSK the client may use for resumption.
//
// https://datatracker.ietf.org/doc/html/rfc8446#section-4.6.1
type MessageNewSessionTicket struct {
	// TicketLifetime is the validity window of the ticket in seconds.
	TicketLifetime uint32

	// TicketAgeAdd obscures the real age of the ticket when the client
	// reports it back in the pre_shared_key extension.
	TicketAgeAdd uint32

	// TicketNonce makes each PSK derived from the same resumption secret
	// unique.
	TicketNonce []byte

	// Ticket is the opaque label used as the PSK identity.
	Ticket []byte

	// Extensions contains the ticket extensions, for example early_data.
	Extensions []extension.Extension
}

// Type returns the handshake message type.
func (m MessageNewSessionTicket) Type() Type {
	return TypeNewSessionTicket
}

// Marshal encodes the MessageNewSessionTicket into its wire format.
func (m *MessageNewSessionTicket) Marshal() ([]byte, error) {
	if len(m.Ticket) == 0 || len(m.Ticket) > maxUint16 {
		return nil, errEmptySessionTicket
	}
	if len(m.TicketNonce) > 255 {
		return nil, errTicketNonceTooLong
	}

	var builder cryptobyte.Builder
	builder.AddUint32(m.TicketLifetime)
	builder.AddUint32(m.TicketAgeAdd)
	builder.AddUint8LengthPrefixed(func(b *cryptobyte.Builder) {
		b.AddBytes(m.TicketNonce)
	})
	builder.AddUint16LengthPrefixed(func(b *cryptobyte.Builder) {
		b.AddBytes(m.Ticket)
	})

	extensionsData, err := extension.Marshal(m.Extensions)
	if err != nil {
		return nil, err
	}
	builder.AddBytes(extensionsData)

	return builder.Bytes()
}

// Unmarshal decodes the MessageNewSessionTicket from its wire format.
func (m *MessageNewSessionTicket) Unmarshal(data []byte) error {
	str := cryptobyte.String(data)

	var nonce, ticket cryptobyte.String
	if !str.ReadUint32(&m.TicketLifetime) ||
		!str.ReadUint32(&m.TicketAgeAdd) ||
		!str.ReadUint8LengthPrefixed(&nonce) ||
		!str.ReadUint16LengthPrefixed(&ticket) {
		return errBufferTooSmall
	}
	if len(ticket) == 0 {
		return errEmptySessionTicket
	}

	m.TicketNonce = append([]byte{}, nonce...)
	m.Ticket = append([]byte{}, ticket...)

	extensions, err := extension.Unmarshal([]byte(str))
	if err != nil {
		return err
	}
	m.Extensions = extensions

	return nil
}
