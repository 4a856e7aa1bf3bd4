// SPDX-FileCopyrightText: 2023 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package keyschedule

import (
	"bytes"
	"crypto/sha256"
	"crypto/sha512"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSchedule_NilHash(t *testing.T) {
	_, err := NewSchedule(nil)
	assert.ErrorIs(t, err, errMissingHashFunction)
}

func TestSchedule_PhaseOrder(t *testing.T) {
	sched, err := NewSchedule(sha256.New)
	assert.NoError(t, err)

	// Handshake extraction requires the early secret first.
	assert.ErrorIs(t, sched.ExtractHandshake([]byte{0x01}), errMissingPhaseSecret)
	assert.ErrorIs(t, sched.ExtractMaster(), errMissingPhaseSecret)

	_, err = sched.ClientHandshakeTrafficSecret()
	assert.ErrorIs(t, err, errMissingPhaseSecret)
	_, err = sched.ClientApplicationTrafficSecret()
	assert.ErrorIs(t, err, errMissingPhaseSecret)

	assert.NoError(t, sched.ExtractEarly(nil))
	assert.ErrorIs(t, sched.ExtractEarly(nil), errPhaseAlreadyExtracted)

	assert.NoError(t, sched.ExtractHandshake([]byte{0x01}))
	assert.ErrorIs(t, sched.ExtractHandshake([]byte{0x01}), errPhaseAlreadyExtracted)

	assert.NoError(t, sched.ExtractMaster())
	assert.ErrorIs(t, sched.ExtractMaster(), errPhaseAlreadyExtracted)
}

func TestSchedule_TwoSidesAgree(t *testing.T) {
	sharedSecret := bytes.Repeat([]byte{0x42}, 32)
	clientHello := []byte("client hello flight")
	serverHello := []byte("server hello flight")
	serverFinished := []byte("server finished")

	newSide := func() *Schedule {
		sched, err := NewSchedule(sha256.New)
		assert.NoError(t, err)
		assert.NoError(t, sched.ExtractEarly(nil))

		_, err = sched.Write(clientHello)
		assert.NoError(t, err)
		_, err = sched.Write(serverHello)
		assert.NoError(t, err)

		assert.NoError(t, sched.ExtractHandshake(sharedSecret))

		return sched
	}

	client, server := newSide(), newSide()

	clientHs1, err := client.ClientHandshakeTrafficSecret()
	assert.NoError(t, err)
	clientHs2, err := server.ClientHandshakeTrafficSecret()
	assert.NoError(t, err)
	assert.Equal(t, clientHs1, clientHs2)
	assert.Len(t, clientHs1, sha256.Size)

	serverHs, err := client.ServerHandshakeTrafficSecret()
	assert.NoError(t, err)
	assert.NotEqual(t, clientHs1, serverHs)

	// Finished uses the transcript at the time it is computed.
	verify1, err := client.VerifyData(serverHs)
	assert.NoError(t, err)
	verify2, err := server.VerifyData(serverHs)
	assert.NoError(t, err)
	assert.Equal(t, verify1, verify2)
	assert.Len(t, verify1, client.Size())

	for _, sched := range []*Schedule{client, server} {
		_, err = sched.Write(serverFinished)
		assert.NoError(t, err)
		assert.NoError(t, sched.ExtractMaster())
	}

	clientAp1, err := client.ClientApplicationTrafficSecret()
	assert.NoError(t, err)
	clientAp2, err := server.ClientApplicationTrafficSecret()
	assert.NoError(t, err)
	assert.Equal(t, clientAp1, clientAp2)

	serverAp, err := client.ServerApplicationTrafficSecret()
	assert.NoError(t, err)
	assert.NotEqual(t, clientAp1, serverAp)
}

func TestSchedule_TrafficKeys(t *testing.T) {
	sched, err := NewSchedule(sha256.New)
	assert.NoError(t, err)

	secret := bytes.Repeat([]byte{0x11}, sha256.Size)

	key, iv, err := sched.TrafficKeys(secret, 16, 12)
	assert.NoError(t, err)
	assert.Len(t, key, 16)
	assert.Len(t, iv, 12)

	// Expansion is deterministic for a fixed secret.
	key2, iv2, err := sched.TrafficKeys(secret, 16, 12)
	assert.NoError(t, err)
	assert.Equal(t, key, key2)
	assert.Equal(t, iv, iv2)
}

func TestSchedule_Size(t *testing.T) {
	sched256, err := NewSchedule(sha256.New)
	assert.NoError(t, err)
	assert.Equal(t, 32, sched256.Size())

	sched384, err := NewSchedule(sha512.New384)
	assert.NoError(t, err)
	assert.Equal(t, 48, sched384.Size())
}
