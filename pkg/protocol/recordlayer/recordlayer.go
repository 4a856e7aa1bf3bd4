// SPDX-FileCopyrightText: 2023 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

// Package recordlayer implements the TLS 1.3 Record Layer https://tools.ietf.org/html/rfc8446#section-5
package recordlayer

import (
	"encoding/binary"
	"io"
	"math"

	"github.com/pion/tls13/internal/util"
	"github.com/pion/tls13/pkg/crypto/keyschedule"
	"github.com/pion/tls13/pkg/protocol"
	"github.com/pion/tls13/pkg/protocol/alert"
	"github.com/pion/tls13/pkg/protocol/handshake"
)

const (
	// MaxPlaintextLen is the largest fragment a single record may carry,
	// 2^14 bytes.
	MaxPlaintextLen = 16384

	// MaxCiphertextLen is the largest payload of a protected record, the
	// plaintext limit plus the content type byte and up to 255 bytes of
	// padding and AEAD expansion.
	MaxCiphertextLen = MaxPlaintextLen + 256
)

// RecordLayer implements a TLSPlaintext record, the unprotected framing
// used before traffic keys are installed.
//
// https://datatracker.ietf.org/doc/html/rfc8446#section-5.1
type RecordLayer struct {
	Header  Header
	Content protocol.Content

	// KeySchedule, when set, is handed through to handshake message
	// decoding so length checks can use the negotiated hash size.
	KeySchedule *keyschedule.Schedule

	// Transcript, when set, receives the verbatim fragment bytes of every
	// handshake record before the content is decoded.
	Transcript io.Writer
}

// Marshal encodes a TLS record to binary. The header's content type and
// length are taken from the content, the version is used as set.
func (r *RecordLayer) Marshal() ([]byte, error) {
	contentRaw, err := r.Content.Marshal()
	if err != nil {
		return nil, err
	}
	if len(contentRaw) > math.MaxUint16 {
		return nil, ErrInvalidPacketLength
	}

	r.Header.ContentType = r.Content.ContentType()
	r.Header.ContentLen = uint16(len(contentRaw)) //nolint:gosec // G115

	headerRaw, err := r.Header.Marshal()
	if err != nil {
		return nil, err
	}

	return append(headerRaw, contentRaw...), nil
}

// Unmarshal populates a TLS record from binary. The buffer must hold the
// full fragment the header declares, trailing bytes beyond it are left
// untouched. The fragment must decode to exactly one content.
func (r *RecordLayer) Unmarshal(data []byte) error {
	if err := r.Header.Unmarshal(data); err != nil {
		return err
	}
	if len(data) < HeaderSize+int(r.Header.ContentLen) {
		return errBufferTooSmall
	}
	fragment := data[HeaderSize : HeaderSize+int(r.Header.ContentLen)]

	if r.Transcript != nil && r.Header.ContentType == protocol.ContentTypeHandshake {
		if _, err := r.Transcript.Write(fragment); err != nil {
			return err
		}
	}

	content, consumed, err := decodeContent(r.Header.ContentType, fragment, r.KeySchedule)
	if err != nil {
		return err
	}
	if consumed != len(fragment) {
		return errUnconsumedData
	}
	r.Content = content

	return nil
}

// decodeContent decodes a single content of the given type from the front
// of data, returning the content and the number of bytes it occupied.
func decodeContent(
	contentType protocol.ContentType,
	data []byte,
	keySchedule *keyschedule.Schedule,
) (protocol.Content, int, error) {
	switch contentType {
	case protocol.ContentTypeChangeCipherSpec:
		ccs := &protocol.ChangeCipherSpec{}
		if len(data) < ccs.Size() {
			return nil, 0, errBufferTooSmall
		}
		if err := ccs.Unmarshal(data[:ccs.Size()]); err != nil {
			return nil, 0, err
		}

		return ccs, ccs.Size(), nil
	case protocol.ContentTypeAlert:
		a := &alert.Alert{}
		if len(data) < a.Size() {
			return nil, 0, errBufferTooSmall
		}
		if err := a.Unmarshal(data[:a.Size()]); err != nil {
			return nil, 0, err
		}

		return a, a.Size(), nil
	case protocol.ContentTypeHandshake:
		if len(data) < handshake.HeaderSize {
			return nil, 0, errBufferTooSmall
		}
		msgLen := int(util.BigEndianUint24(data[1:]))
		if len(data) < handshake.HeaderSize+msgLen {
			return nil, 0, errBufferTooSmall
		}
		h := &handshake.Handshake{KeySchedule: keySchedule}
		if err := h.Unmarshal(data[:handshake.HeaderSize+msgLen]); err != nil {
			return nil, 0, err
		}

		return h, h.Size(), nil
	case protocol.ContentTypeApplicationData:
		if len(data) == 0 {
			return nil, 0, errEmptyApplicationData
		}
		appData := &protocol.ApplicationData{}
		if err := appData.Unmarshal(data); err != nil {
			return nil, 0, err
		}

		return appData, appData.Size(), nil
	default:
		return nil, 0, errInvalidContentType
	}
}

// UnpackStream splits a byte stream into the complete records it starts
// with. It returns the raw records and the number of bytes consumed, a
// partial record at the tail is left for the caller to complete.
func UnpackStream(buf []byte) ([][]byte, int) {
	var out [][]byte

	consumed := 0
	for len(buf)-consumed >= HeaderSize {
		contentLen := int(binary.BigEndian.Uint16(buf[consumed+3:]))
		end := consumed + HeaderSize + contentLen
		if end > len(buf) {
			break
		}
		out = append(out, buf[consumed:end])
		consumed = end
	}

	return out, consumed
}
