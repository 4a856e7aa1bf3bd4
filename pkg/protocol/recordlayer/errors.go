package recordlayer

import (
	"errors"

	"github.com/pion/tls13/pkg/protocol"
)

// ErrInvalidPacketLength is returned when a record's content does not fit
// the 16 bit length field.
var ErrInvalidPacketLength = &protocol.FatalError{
	Err: errors.New("packet length and declared length do not match"), //nolint:err113
}

var (
	errBufferTooSmall = &protocol.TemporaryError{
		Err: errors.New("buffer is too small"), //nolint:err113
	}
	errInvalidContentType = &protocol.TemporaryError{
		Err: errors.New("invalid content type"), //nolint:err113
	}
	errUnsupportedProtocolVersion = &protocol.FatalError{
		Err: errors.New("unsupported protocol version"), //nolint:err113
	}
	errEmptyApplicationData = &protocol.TemporaryError{
		Err: errors.New("application data record with empty payload"), //nolint:err113
	}
	errUnconsumedData = &protocol.TemporaryError{
		Err: errors.New("record fragment was not fully consumed"), //nolint:err113
	}
	errMissingContentType = &protocol.TemporaryError{
		Err: errors.New("protected record carries no content type"), //nolint:err113
	}
	errContentSizeMismatch = &protocol.InternalError{
		Err: errors.New("content size does not match its encoding"), //nolint:err113
	}
	errInnerNotFullyConsumed = &protocol.InternalError{
		Err: errors.New("protected record content was not fully consumed"), //nolint:err113
	}
	errNoContents = &protocol.InternalError{
		Err: errors.New("no contents provided"), //nolint:err113
	}
)
