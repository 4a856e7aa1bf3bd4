// SPDX-FileCopyrightText: 2023 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package keyschedule

import (
	"crypto/hmac"
	"errors"
	"hash"
)

var errMissingPhaseSecret = errors.New("key schedule phase secret has not been extracted")
var errPhaseAlreadyExtracted = errors.New("key schedule phase has already been extracted")

// Schedule walks the RFC 8446 section 7.1 key schedule for one connection.
//
// The three phase secrets are extracted in order with the "derived" chaining
// between them. The handshake transcript is accumulated by writing the raw
// handshake messages to the Schedule, which implements io.Writer. Traffic
// secret methods hash the transcript as written so far, so the caller drives
// them at the right points of the flight.
type Schedule struct {
	hashFunc   func() hash.Hash
	transcript hash.Hash

	earlySecret     []byte
	handshakeSecret []byte
	masterSecret    []byte
}

// NewSchedule creates a Schedule for the given suite hash.
func NewSchedule(hashFunc func() hash.Hash) (*Schedule, error) {
	if hashFunc == nil {
		return nil, errMissingHashFunction
	}

	return &Schedule{
		hashFunc:   hashFunc,
		transcript: hashFunc(),
	}, nil
}

// Write adds raw handshake messages to the running transcript.
func (s *Schedule) Write(p []byte) (int, error) {
	return s.transcript.Write(p)
}

// Size returns the output size of the suite hash, which is also the length
// of every derived secret and of Finished verify_data.
func (s *Schedule) Size() int {
	return s.transcript.Size()
}

// TranscriptHash returns the hash of the transcript as written so far.
func (s *Schedule) TranscriptHash() []byte {
	return s.transcript.Sum(nil)
}

// ExtractEarly establishes the early secret. A nil psk means no PSK is in
// use and the zero vector is extracted instead.
func (s *Schedule) ExtractEarly(psk []byte) error {
	if s.earlySecret != nil {
		return errPhaseAlreadyExtracted
	}
	if psk == nil {
		psk = make([]byte, s.Size())
	}

	secret, err := HkdfExtract(s.hashFunc, nil, psk)
	if err != nil {
		return err
	}
	s.earlySecret = secret

	return nil
}

// ExtractHandshake chains the early secret into the handshake secret using
// the (EC)DHE shared secret.
func (s *Schedule) ExtractHandshake(sharedSecret []byte) error {
	if s.earlySecret == nil {
		return errMissingPhaseSecret
	}
	if s.handshakeSecret != nil {
		return errPhaseAlreadyExtracted
	}

	salt, err := DeriveSecret(s.hashFunc, s.earlySecret, "derived", nil)
	if err != nil {
		return err
	}

	secret, err := HkdfExtract(s.hashFunc, salt, sharedSecret)
	if err != nil {
		return err
	}
	s.handshakeSecret = secret

	return nil
}

// ExtractMaster chains the handshake secret into the master secret.
func (s *Schedule) ExtractMaster() error {
	if s.handshakeSecret == nil {
		return errMissingPhaseSecret
	}
	if s.masterSecret != nil {
		return errPhaseAlreadyExtracted
	}

	salt, err := DeriveSecret(s.hashFunc, s.handshakeSecret, "derived", nil)
	if err != nil {
		return err
	}

	secret, err := HkdfExtract(s.hashFunc, salt, make([]byte, s.Size()))
	if err != nil {
		return err
	}
	s.masterSecret = secret

	return nil
}

// ClientHandshakeTrafficSecret derives "c hs traffic" over the current
// transcript, which must cover ClientHello..ServerHello.
func (s *Schedule) ClientHandshakeTrafficSecret() ([]byte, error) {
	if s.handshakeSecret == nil {
		return nil, errMissingPhaseSecret
	}

	return DeriveSecret(s.hashFunc, s.handshakeSecret, "c hs traffic", s.transcript)
}

// ServerHandshakeTrafficSecret derives "s hs traffic" over the current
// transcript, which must cover ClientHello..ServerHello.
func (s *Schedule) ServerHandshakeTrafficSecret() ([]byte, error) {
	if s.handshakeSecret == nil {
		return nil, errMissingPhaseSecret
	}

	return DeriveSecret(s.hashFunc, s.handshakeSecret, "s hs traffic", s.transcript)
}

// ClientApplicationTrafficSecret derives "c ap traffic" over the current
// transcript, which must cover ClientHello..server Finished.
func (s *Schedule) ClientApplicationTrafficSecret() ([]byte, error) {
	if s.masterSecret == nil {
		return nil, errMissingPhaseSecret
	}

	return DeriveSecret(s.hashFunc, s.masterSecret, "c ap traffic", s.transcript)
}

// ServerApplicationTrafficSecret derives "s ap traffic" over the current
// transcript, which must cover ClientHello..server Finished.
func (s *Schedule) ServerApplicationTrafficSecret() ([]byte, error) {
	if s.masterSecret == nil {
		return nil, errMissingPhaseSecret
	}

	return DeriveSecret(s.hashFunc, s.masterSecret, "s ap traffic", s.transcript)
}

// ExporterMasterSecret derives "exp master" over the current transcript,
// which must cover ClientHello..server Finished.
func (s *Schedule) ExporterMasterSecret() ([]byte, error) {
	if s.masterSecret == nil {
		return nil, errMissingPhaseSecret
	}

	return DeriveSecret(s.hashFunc, s.masterSecret, "exp master", s.transcript)
}

// ResumptionMasterSecret derives "res master" over the current transcript,
// which must cover ClientHello..client Finished.
func (s *Schedule) ResumptionMasterSecret() ([]byte, error) {
	if s.masterSecret == nil {
		return nil, errMissingPhaseSecret
	}

	return DeriveSecret(s.hashFunc, s.masterSecret, "res master", s.transcript)
}

// UpdateTrafficSecret derives the next generation of an application traffic
// secret per RFC 8446 section 7.2, as both sides do after a KeyUpdate.
func (s *Schedule) UpdateTrafficSecret(trafficSecret []byte) ([]byte, error) {
	return HkdfExpandLabel(s.hashFunc, trafficSecret, "traffic upd", nil, s.Size())
}

// TrafficKeys expands a traffic secret into the write key and IV for an AEAD
// per RFC 8446 section 7.3.
func (s *Schedule) TrafficKeys(trafficSecret []byte, keyLen, ivLen int) (key, iv []byte, err error) {
	key, err = HkdfExpandLabel(s.hashFunc, trafficSecret, "key", nil, keyLen)
	if err != nil {
		return nil, nil, err
	}

	iv, err = HkdfExpandLabel(s.hashFunc, trafficSecret, "iv", nil, ivLen)
	if err != nil {
		return nil, nil, err
	}

	return key, iv, nil
}

// FinishedKey derives the finished_key for a handshake traffic secret per
// RFC 8446 section 4.4.4.
func (s *Schedule) FinishedKey(baseKey []byte) ([]byte, error) {
	return HkdfExpandLabel(s.hashFunc, baseKey, "finished", nil, s.Size())
}

// VerifyData computes the Finished verify_data for a handshake traffic
// secret over the current transcript.
func (s *Schedule) VerifyData(baseKey []byte) ([]byte, error) {
	finishedKey, err := s.FinishedKey(baseKey)
	if err != nil {
		return nil, err
	}

	mac := hmac.New(s.hashFunc, finishedKey)
	mac.Write(s.TranscriptHash())

	return mac.Sum(nil), nil
}
