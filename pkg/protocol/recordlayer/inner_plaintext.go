// SPDX-FileCopyrightText: 2026 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package recordlayer

import (
	"github.com/pion/tls13/pkg/crypto/keyschedule"
	"github.com/pion/tls13/pkg/protocol"
)

// InnerPlaintext implements TLSInnerPlaintext, the true content type and
// optional zero padding hidden inside a protected record.
//
// https://datatracker.ietf.org/doc/html/rfc8446#section-5.2
type InnerPlaintext struct {
	// Content is the serialized content of the record.
	Content []byte

	// RealType is the content type hidden behind the padding.
	RealType protocol.ContentType

	// Zeros is the number of padding bytes appended after the type.
	Zeros int
}

// NewInnerPlaintext builds an InnerPlaintext carrying a single content
// with the requested amount of padding.
func NewInnerPlaintext(content protocol.Content, zeros int) (*InnerPlaintext, error) {
	raw, err := content.Marshal()
	if err != nil {
		return nil, err
	}
	if content.Size() != len(raw) {
		return nil, errContentSizeMismatch
	}

	return &InnerPlaintext{
		Content:  raw,
		RealType: content.ContentType(),
		Zeros:    zeros,
	}, nil
}

// NewInnerPlaintextFromContents builds an InnerPlaintext carrying several
// contents of the same type back to back, the way handshake flights are
// coalesced into one record.
func NewInnerPlaintextFromContents(contents []protocol.Content, zeros int) (*InnerPlaintext, error) {
	if len(contents) == 0 {
		return nil, errNoContents
	}

	realType := contents[0].ContentType()
	var raw []byte
	for _, content := range contents {
		if content.ContentType() != realType {
			return nil, errInvalidContentType
		}
		encoded, err := content.Marshal()
		if err != nil {
			return nil, err
		}
		if content.Size() != len(encoded) {
			return nil, errContentSizeMismatch
		}
		raw = append(raw, encoded...)
	}

	return &InnerPlaintext{
		Content:  raw,
		RealType: realType,
		Zeros:    zeros,
	}, nil
}

// Marshal encodes the inner plaintext, the content followed by the real
// type byte and the zero padding.
func (p *InnerPlaintext) Marshal() ([]byte, error) {
	out := make([]byte, 0, p.Size())
	out = append(out, p.Content...)
	out = append(out, byte(p.RealType))
	out = append(out, make([]byte, p.Zeros)...)

	return out, nil
}

// Unmarshal scans backward across the padding to recover the real content
// type. A record consisting solely of zeros has no content type and is
// rejected.
func (p *InnerPlaintext) Unmarshal(data []byte) error {
	i := len(data) - 1
	for i >= 0 && data[i] == 0 {
		i--
	}
	if i < 0 {
		return errMissingContentType
	}

	p.RealType = protocol.ContentType(data[i])
	p.Content = append([]byte{}, data[:i]...)
	p.Zeros = len(data) - 1 - i

	return nil
}

// Size returns the encoded size of the inner plaintext.
func (p *InnerPlaintext) Size() int {
	return len(p.Content) + 1 + p.Zeros
}

// DecodeContent decodes the single content the record carries.
func (p *InnerPlaintext) DecodeContent(keySchedule *keyschedule.Schedule) (protocol.Content, error) {
	content, consumed, err := decodeContent(p.RealType, p.Content, keySchedule)
	if err != nil {
		return nil, err
	}
	if consumed != len(p.Content) {
		return nil, errInnerNotFullyConsumed
	}

	return content, nil
}

// DecodeContents decodes every content the record carries, stepping until
// the content bytes run out. Records holding nothing but padding yield an
// empty list.
func (p *InnerPlaintext) DecodeContents(keySchedule *keyschedule.Schedule) ([]protocol.Content, error) {
	contents := []protocol.Content{}
	for cursor := 0; cursor < len(p.Content); {
		content, consumed, err := decodeContent(p.RealType, p.Content[cursor:], keySchedule)
		if err != nil {
			return nil, err
		}
		cursor += consumed
		contents = append(contents, content)
	}

	return contents, nil
}
