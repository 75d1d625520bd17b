// Copyright (c) 2026 Daniel Alarcon Rubio / Relabs Tech
// SPDX-License-Identifier: MIT
// See LICENSE file for full license text

// Package emit drives the periodic emission of sentences to the serial
// transport and any mirrors.
package emit

import (
	"context"
	"fmt"
	"io"
	"log"
	"strings"
	"time"

	"github.com/mjoldfield/nmea-time-daemon/internal/clock"
	"github.com/mjoldfield/nmea-time-daemon/internal/nmea"
)

// Loop writes one sentence per tick. On each tick the console echo (if any)
// comes first, then the transport write, then the mirrors; a transport
// failure stops the loop, a mirror failure does not.
type Loop struct {
	Source  clock.Source
	Where   string
	Delay   time.Duration
	Forever bool

	Transport io.Writer
	Console   io.Writer   // verbose echo, sentence sans CRLF; nil disables
	Mirrors   []io.Writer // best-effort copies (MQTT, monitor)
	Pulse     func()      // optional, fired at the start of each emission

	// Warnf reports mirror write failures; defaults to log.Printf.
	Warnf func(format string, args ...any)
}

// Run emits sentences until the single shot completes, the transport write
// fails, or ctx is cancelled. Cancellation is a clean stop, not an error.
func (l *Loop) Run(ctx context.Context) error {
	for {
		if l.Pulse != nil {
			l.Pulse()
		}

		sentence := nmea.BuildRMC(l.Source.Now(), l.Where)

		if l.Console != nil {
			fmt.Fprintln(l.Console, strings.TrimSuffix(sentence, "\r\n"))
		}
		if _, err := io.WriteString(l.Transport, sentence); err != nil {
			return fmt.Errorf("write sentence: %w", err)
		}
		for _, m := range l.Mirrors {
			if _, err := io.WriteString(m, sentence); err != nil {
				l.warnf("mirror write error: %v", err)
			}
		}

		if !l.Forever {
			return nil
		}
		select {
		case <-ctx.Done():
			return nil
		case <-time.After(l.Delay):
		}
	}
}

func (l *Loop) warnf(format string, args ...any) {
	if l.Warnf != nil {
		l.Warnf(format, args...)
		return
	}
	log.Printf(format, args...)
}
