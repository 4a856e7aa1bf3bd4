// SPDX-FileCopyrightText: 2023 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

// Package handshake provides the TLS 1.3 wire protocol for handshake messages
package handshake

import (
	"fmt"

	"github.com/pion/tls13/pkg/crypto/keyschedule"
	"github.com/pion/tls13/pkg/protocol"
)

// Type is the unique identifier for each handshake message
// https://datatracker.ietf.org/doc/html/rfc8446#section-4
type Type uint8

// Types of handshake messages a TLS 1.3 endpoint exchanges.
const (
	TypeClientHello         Type = 1
	TypeServerHello         Type = 2
	TypeNewSessionTicket    Type = 4
	TypeEndOfEarlyData      Type = 5
	TypeEncryptedExtensions Type = 8
	TypeCertificate         Type = 11
	TypeCertificateRequest  Type = 13
	TypeCertificateVerify   Type = 15
	TypeFinished            Type = 20
	TypeKeyUpdate           Type = 24
)

// String returns the string representation of this type.
func (t Type) String() string {
	switch t {
	case TypeClientHello:
		return "ClientHello"
	case TypeServerHello:
		return "ServerHello"
	case TypeNewSessionTicket:
		return "NewSessionTicket"
	case TypeEndOfEarlyData:
		return "EndOfEarlyData"
	case TypeEncryptedExtensions:
		return "EncryptedExtensions"
	case TypeCertificate:
		return "Certificate"
	case TypeCertificateRequest:
		return "CertificateRequest"
	case TypeCertificateVerify:
		return "CertificateVerify"
	case TypeFinished:
		return "Finished"
	case TypeKeyUpdate:
		return "KeyUpdate"
	}

	return fmt.Sprintf("Unknown Handshake Type: %d", t)
}

// Message is the content of a handshake message.
type Message interface {
	Marshal() ([]byte, error)
	Unmarshal(data []byte) error

	Type() Type
}

// Handshake is a payload of a record with content type handshake. It carries
// a single handshake message. Several handshake messages may follow each
// other inside one protected record, each with its own header.
//
// https://datatracker.ietf.org/doc/html/rfc8446#section-4
type Handshake struct {
	Header  Header
	Message Message

	// KeySchedule, when set, is used to validate the length of Finished
	// messages against the size of the negotiated transcript hash.
	KeySchedule *keyschedule.Schedule
}

// ContentType returns what kind of content this message is carrying.
func (h Handshake) ContentType() protocol.ContentType {
	return protocol.ContentTypeHandshake
}

// Marshal encodes a handshake message, header included.
func (h *Handshake) Marshal() ([]byte, error) {
	if h.Message == nil {
		return nil, errHandshakeMessageUnset
	}

	msg, err := h.Message.Marshal()
	if err != nil {
		return nil, err
	}

	h.Header.Type = h.Message.Type()
	h.Header.Length = uint32(len(msg)) //nolint:gosec // G115
	header, err := h.Header.Marshal()
	if err != nil {
		return nil, err
	}

	return append(header, msg...), nil
}

// Unmarshal decodes a handshake message, header included. The data must
// contain exactly one message.
func (h *Handshake) Unmarshal(data []byte) error {
	if err := h.Header.Unmarshal(data); err != nil {
		return err
	}
	if len(data)-HeaderSize != int(h.Header.Length) {
		return errLengthMismatch
	}

	switch h.Header.Type {
	case TypeClientHello:
		h.Message = &MessageClientHello{}
	case TypeServerHello:
		h.Message = &MessageServerHello{}
	case TypeNewSessionTicket:
		h.Message = &MessageNewSessionTicket{}
	case TypeEndOfEarlyData:
		h.Message = &MessageEndOfEarlyData{}
	case TypeEncryptedExtensions:
		h.Message = &MessageEncryptedExtensions{}
	case TypeCertificate:
		h.Message = &MessageCertificate{}
	case TypeCertificateRequest:
		h.Message = &MessageCertificateRequest{}
	case TypeCertificateVerify:
		h.Message = &MessageCertificateVerify{}
	case TypeFinished:
		if h.KeySchedule != nil && int(h.Header.Length) != h.KeySchedule.Size() {
			return errVerifyDataLengthMismatch
		}
		h.Message = &MessageFinished{}
	case TypeKeyUpdate:
		h.Message = &MessageKeyUpdate{}
	default:
		return errNotImplemented
	}

	return h.Message.Unmarshal(data[HeaderSize:])
}

// Size returns the encoded size of the handshake message, header included.
func (h *Handshake) Size() int {
	return HeaderSize + int(h.Header.Length)
}
