// Copyright (c) 2026 Daniel Alarcon Rubio / Relabs Tech
// SPDX-License-Identifier: MIT
// See LICENSE file for full license text

// Package nmea builds outbound NMEA 0183 sentences. Only GPRMC is produced;
// this is a transmitter that pretends to be a receiver, not a parser.
package nmea

import (
	"fmt"
	"time"
)

// Checksum XOR-folds every byte of the payload (the text between '$' and
// '*') into an 8-bit accumulator and renders it as two lowercase hex digits,
// zero-padded.
func Checksum(payload string) string {
	var sum byte
	for i := 0; i < len(payload); i++ {
		sum ^= payload[i]
	}
	return fmt.Sprintf("%02x", sum)
}

// BuildRMC assembles one framed GPRMC sentence for the given instant and
// position.
//
// The position string is the four lat/lon fields exactly as they appear on
// the wire ("ddmm.mmm,N,dddmm.mmm,E") and is passed through verbatim. Speed
// and track are fixed at 0.0 and the sub-second field is always .000: the
// fake receiver never moves and never claims sub-second precision.
func BuildRMC(t time.Time, where string) string {
	payload := fmt.Sprintf("GPRMC,%s.000,A,%s,0.0,0.0,%s,,A",
		t.Format("150405"), where, t.Format("020106"))
	return fmt.Sprintf("$%s*%s\r\n", payload, Checksum(payload))
}
