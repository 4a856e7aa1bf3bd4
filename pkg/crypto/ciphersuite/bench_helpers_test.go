// SPDX-FileCopyrightText: 2026 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package ciphersuite

import (
	"fmt"
	"testing"

	"github.com/pion/tls13/pkg/protocol"
	"github.com/pion/tls13/pkg/protocol/recordlayer"
)

// benchmarkSeal benchmarks record protection with various payload sizes.
func benchmarkSeal(b *testing.B, cipher RecordCipher) {
	b.Helper()

	for _, size := range []int{16, 64, 256, 512, 1024, 1500, 4096, 8192} {
		b.Run(fmt.Sprintf("%d", size), func(b *testing.B) {
			inner, err := recordlayer.NewInnerPlaintext(&protocol.ApplicationData{
				Data: make([]byte, size),
			}, 0)
			if err != nil {
				b.Fatal(err)
			}

			b.ReportAllocs()
			b.SetBytes(int64(size))
			b.ResetTimer()

			for i := 0; i < b.N; i++ {
				if _, err := cipher.Seal(inner); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

// benchmarkOpen benchmarks record unprotection with various payload sizes.
// Every record needs a fresh sequence number, so the matching Seal runs
// with the timer stopped.
func benchmarkOpen(b *testing.B, send, recv RecordCipher) {
	b.Helper()

	for _, size := range []int{16, 64, 256, 512, 1024, 1500} {
		b.Run(fmt.Sprintf("%d", size), func(b *testing.B) {
			inner, err := recordlayer.NewInnerPlaintext(&protocol.ApplicationData{
				Data: make([]byte, size),
			}, 0)
			if err != nil {
				b.Fatal(err)
			}

			b.ReportAllocs()
			b.SetBytes(int64(size))
			b.ResetTimer()

			for i := 0; i < b.N; i++ {
				b.StopTimer()
				sealed, err := send.Seal(inner)
				if err != nil {
					b.Fatal(err)
				}
				b.StartTimer()

				if _, err := recv.Open(sealed); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}
