// SPDX-FileCopyrightText: 2023 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

// Package tls13 implements the TLS 1.3 (RFC 8446) record layer over an
// existing stream connection.
package tls13

import (
	"context"
	"io"
	"net"
	"sync"
	"time"

	"github.com/pion/logging"
	"github.com/pion/tls13/pkg/crypto/ciphersuite"
	"github.com/pion/tls13/pkg/crypto/keyschedule"
	"github.com/pion/tls13/pkg/protocol"
	"github.com/pion/tls13/pkg/protocol/alert"
	"github.com/pion/tls13/pkg/protocol/recordlayer"
	"github.com/pion/transport/v3/netctx"
)

// Conn frames TLS 1.3 records over an existing stream connection.
//
// A Conn carries no handshake logic and never enables record protection on
// its own. The caller drives the handshake through ReadContent and
// WriteContent and installs protection with ApplyProtection once it has
// derived traffic keys. Read and Write move application data and together
// with the deadline methods implement net.Conn.
//
// The read and the write side are each safe for use by one goroutine at a
// time, a concurrent reader and writer do not block each other.
type Conn struct {
	nextConn netctx.Conn
	log      logging.LeveledLogger

	keySchedule *keyschedule.Schedule
	transcript  io.Writer
	paddingLen  func(int) int

	// protection is written with both mutexes held, so holding either one
	// is enough to read it.
	protection ciphersuite.RecordCipher

	readMu      sync.Mutex
	readScratch []byte
	unread      []byte             // partial record at the stream tail
	rawQueue    [][]byte           // complete raw records not yet decoded
	pending     []protocol.Content // decoded contents not yet handed out
	leftover    []byte             // application data not yet claimed by Read
	readErr     error              // terminal result of the Read plane

	writeMu sync.Mutex

	connErr   atomicError
	closeOnce sync.Once
}

// NewConn wraps nextConn with record-layer framing.
func NewConn(nextConn net.Conn, config *Config) (*Conn, error) {
	if nextConn == nil {
		return nil, errNilNextConn
	}
	if config == nil {
		config = &Config{}
	}

	loggerFactory := config.LoggerFactory
	if loggerFactory == nil {
		loggerFactory = logging.NewDefaultLoggerFactory()
	}

	return &Conn{
		nextConn:    netctx.NewConn(nextConn),
		log:         loggerFactory.NewLogger("tls13"),
		keySchedule: config.KeySchedule,
		transcript:  config.Transcript,
		paddingLen:  config.PaddingLengthGenerator,
		readScratch: make([]byte, recordlayer.HeaderSize+recordlayer.MaxCiphertextLen),
	}, nil
}

// ApplyProtection installs cipher for both directions. Records written
// afterwards are sealed with it and inbound records carrying the
// application_data outer type are opened with it. Installing a freshly
// constructed cipher is how a key change resets the sequence numbers.
//
// ApplyProtection must not be called while another goroutine is blocked in
// a read or write on this Conn.
func (c *Conn) ApplyProtection(cipher ciphersuite.RecordCipher) {
	c.readMu.Lock()
	defer c.readMu.Unlock()
	c.writeMu.Lock()
	defer c.writeMu.Unlock()

	c.protection = cipher
	c.log.Debugf("record protection installed")
}

// RemoveProtection returns the Conn to plaintext framing.
func (c *Conn) RemoveProtection() {
	c.readMu.Lock()
	defer c.readMu.Unlock()
	c.writeMu.Lock()
	defer c.writeMu.Unlock()

	c.protection = nil
	c.log.Debugf("record protection removed")
}

// WriteContent encodes content into a single record and writes it to the
// next conn. Plaintext handshake fragments are mirrored to the configured
// transcript.
func (c *Conn) WriteContent(ctx context.Context, content protocol.Content) error {
	c.writeMu.Lock()
	defer c.writeMu.Unlock()

	if err := c.connErr.load(); err != nil {
		return err
	}

	raw, err := c.marshalRecord(content)
	if err != nil {
		return err
	}

	if _, err := c.nextConn.WriteContext(ctx, raw); err != nil {
		return netError(err)
	}

	return nil
}

// marshalRecord encodes one content as a wire record under the current
// protection state. Callers must hold writeMu.
func (c *Conn) marshalRecord(content protocol.Content) ([]byte, error) {
	if c.protection == nil {
		record := &recordlayer.RecordLayer{
			Header:  recordlayer.Header{Version: protocol.Version1_2},
			Content: content,
		}
		raw, err := record.Marshal()
		if err != nil {
			return nil, err
		}

		if c.transcript != nil && content.ContentType() == protocol.ContentTypeHandshake {
			if _, err := c.transcript.Write(raw[recordlayer.HeaderSize:]); err != nil {
				return nil, err
			}
		}

		return raw, nil
	}

	zeros := 0
	if c.paddingLen != nil {
		encoded, err := content.Marshal()
		if err != nil {
			return nil, err
		}
		if zeros = c.paddingLen(len(encoded)); zeros < 0 {
			zeros = 0
		}
	}

	inner, err := recordlayer.NewInnerPlaintext(content, zeros)
	if err != nil {
		return nil, err
	}

	sealed, err := c.protection.Seal(inner)
	if err != nil {
		return nil, err
	}

	return sealed.Marshal()
}

// ReadContent reads the next content from the connection. Contents
// coalesced into one protected record are queued and handed out one per
// call. Plaintext handshake fragments are mirrored to the configured
// transcript before they are decoded.
func (c *Conn) ReadContent(ctx context.Context) (protocol.Content, error) {
	c.readMu.Lock()
	defer c.readMu.Unlock()

	if err := c.connErr.load(); err != nil {
		return nil, err
	}

	return c.readContent(ctx)
}

// readContent implements ReadContent. Callers must hold readMu.
func (c *Conn) readContent(ctx context.Context) (protocol.Content, error) {
	for {
		if len(c.pending) > 0 {
			content := c.pending[0]
			c.pending = c.pending[1:]

			return content, nil
		}

		raw, err := c.nextRecord(ctx)
		if err != nil {
			return nil, err
		}

		// While protection is installed only records with the
		// application_data outer type are sealed. Anything else, like a
		// compatibility change_cipher_spec or an unprotected alert, is
		// still plaintext and handed to the caller to police.
		if c.protection == nil || protocol.ContentType(raw[0]) != protocol.ContentTypeApplicationData {
			record := &recordlayer.RecordLayer{
				KeySchedule: c.keySchedule,
				Transcript:  c.transcript,
			}
			if err := record.Unmarshal(raw); err != nil {
				return nil, err
			}

			return record.Content, nil
		}

		ciphertext := &recordlayer.Ciphertext{}
		if err := ciphertext.Unmarshal(raw); err != nil {
			return nil, err
		}

		inner, err := c.protection.Open(ciphertext)
		if err != nil {
			return nil, err
		}

		contents, err := inner.DecodeContents(c.keySchedule)
		if err != nil {
			return nil, err
		}

		// A record that carried only padding yields no contents.
		c.pending = contents
	}
}

// nextRecord returns the next complete raw record from the stream, reading
// from the next conn as needed. Records that arrived pipelined in one read
// are queued. Callers must hold readMu.
func (c *Conn) nextRecord(ctx context.Context) ([]byte, error) {
	for len(c.rawQueue) == 0 {
		n, err := c.nextConn.ReadContext(ctx, c.readScratch)
		if err != nil {
			return nil, netError(err)
		}
		c.unread = append(c.unread, c.readScratch[:n]...)

		records, consumed := recordlayer.UnpackStream(c.unread)
		for _, record := range records {
			c.rawQueue = append(c.rawQueue, append([]byte{}, record...))
		}
		c.unread = append(c.unread[:0], c.unread[consumed:]...)
	}

	record := c.rawQueue[0]
	c.rawQueue = c.rawQueue[1:]

	return record, nil
}

// Read reads application data from the connection, implementing net.Conn.
// Other content types are skipped, a close_notify alert ends the stream
// with io.EOF and any other fatal alert is returned as an *AlertError.
func (c *Conn) Read(p []byte) (int, error) {
	c.readMu.Lock()
	defer c.readMu.Unlock()

	if err := c.connErr.load(); err != nil {
		return 0, err
	}

	for {
		if len(c.leftover) > 0 {
			n := copy(p, c.leftover)
			c.leftover = c.leftover[n:]

			return n, nil
		}
		if c.readErr != nil {
			return 0, c.readErr
		}

		content, err := c.readContent(context.Background())
		if err != nil {
			return 0, err
		}

		switch content := content.(type) {
		case *protocol.ApplicationData:
			c.leftover = content.Data
		case *alert.Alert:
			switch {
			case content.Description == alert.CloseNotify:
				c.readErr = io.EOF
			case content.Level == alert.Fatal:
				c.readErr = &AlertError{Alert: content}
			default:
				c.log.Tracef("skipping warning alert during Read: %s", content.String())
			}
		default:
			c.log.Tracef("skipping %s content during Read", content.ContentType().String())
		}
	}
}

// Write writes application data to the connection, implementing net.Conn.
// Payloads larger than one record allows are split across records.
func (c *Conn) Write(p []byte) (int, error) {
	if err := c.connErr.load(); err != nil {
		return 0, err
	}

	written := 0
	for _, chunk := range splitBytes(p, recordlayer.MaxPlaintextLen) {
		appData := &protocol.ApplicationData{Data: chunk}
		if err := c.WriteContent(context.Background(), appData); err != nil {
			return written, err
		}
		written += len(chunk)
	}

	return written, nil
}

// Close closes the connection. It does not send a close_notify alert, a
// caller wanting an orderly TLS closure writes one with WriteContent
// first. Close is idempotent.
func (c *Conn) Close() error {
	var err error
	c.closeOnce.Do(func() {
		c.connErr.store(ErrConnClosed)
		err = c.nextConn.Close()
	})

	return err
}

// LocalAddr implements net.Conn.LocalAddr.
func (c *Conn) LocalAddr() net.Addr {
	return c.nextConn.LocalAddr()
}

// RemoteAddr implements net.Conn.RemoteAddr.
func (c *Conn) RemoteAddr() net.Addr {
	return c.nextConn.RemoteAddr()
}

// SetDeadline implements net.Conn.SetDeadline, delegating to the next conn.
func (c *Conn) SetDeadline(t time.Time) error {
	return c.nextConn.Conn().SetDeadline(t)
}

// SetReadDeadline implements net.Conn.SetReadDeadline, delegating to the
// next conn.
func (c *Conn) SetReadDeadline(t time.Time) error {
	return c.nextConn.Conn().SetReadDeadline(t)
}

// SetWriteDeadline implements net.Conn.SetWriteDeadline, delegating to the
// next conn.
func (c *Conn) SetWriteDeadline(t time.Time) error {
	return c.nextConn.Conn().SetWriteDeadline(t)
}
