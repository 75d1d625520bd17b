// Package serialport opens and configures the serial transport the
// sentences are written to.
package serialport

import (
	"fmt"
	"io"

	serial "github.com/jacobsa/go-serial/serial"

	"github.com/mjoldfield/nmea-time-daemon/internal/config"
)

// Open configures and opens the serial port described by cfg. The returned
// writer is exclusively owned by the emission loop.
func Open(cfg config.Config) (io.WriteCloser, error) {
	parity, err := parityMode(cfg.Parity)
	if err != nil {
		return nil, err
	}

	opts := serial.OpenOptions{
		PortName:        cfg.Port,
		BaudRate:        cfg.BaudRate,
		DataBits:        8,
		StopBits:        cfg.StopBits,
		ParityMode:      parity,
		MinimumReadSize: 1,
	}
	port, err := serial.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("open serial port %s: %w", cfg.Port, err)
	}
	return port, nil
}

func parityMode(parity string) (serial.ParityMode, error) {
	switch parity {
	case "none":
		return serial.PARITY_NONE, nil
	case "odd":
		return serial.PARITY_ODD, nil
	case "even":
		return serial.PARITY_EVEN, nil
	}
	return 0, fmt.Errorf("parity must be none, odd or even, got %q", parity)
}
