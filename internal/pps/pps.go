// Copyright (c) 2026 Daniel Alarcon Rubio / Relabs Tech
// SPDX-License-Identifier: MIT
// See LICENSE file for full license text

// Package pps drives a GPIO line high at the start of each emission,
// standing in for the pulse-per-second output of a real receiver. Clocks
// that discipline on PPS plus NMEA can then be tested end to end.
package pps

import (
	"fmt"
	"log"
	"time"

	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/gpio/gpioreg"
	"periph.io/x/host/v3"
)

type Pulser struct {
	pin   gpio.PinIO
	width time.Duration
}

// Open initialises the periph host, claims the named pin and parks it low.
func Open(name string, width time.Duration) (*Pulser, error) {
	if _, err := host.Init(); err != nil {
		return nil, fmt.Errorf("periph host init: %w", err)
	}
	pin := gpioreg.ByName(name)
	if pin == nil {
		return nil, fmt.Errorf("no GPIO pin named %q", name)
	}
	if err := pin.Out(gpio.Low); err != nil {
		return nil, fmt.Errorf("drive %s low: %w", name, err)
	}
	return &Pulser{pin: pin, width: width}, nil
}

// Pulse raises the pin and schedules the falling edge after the configured
// width, without blocking the emission loop.
func (p *Pulser) Pulse() {
	if err := p.pin.Out(gpio.High); err != nil {
		log.Printf("pps: raise %s: %v", p.pin, err)
		return
	}
	time.AfterFunc(p.width, func() {
		if err := p.pin.Out(gpio.Low); err != nil {
			log.Printf("pps: drop %s: %v", p.pin, err)
		}
	})
}

func (p *Pulser) Close() error {
	return p.pin.Out(gpio.Low)
}
