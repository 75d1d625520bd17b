// Package config holds the daemon configuration. It is parsed once in main
// and passed down by value; nothing mutates it afterwards.
package config

import (
	"flag"
	"fmt"
	"time"
)

// Defaults match a consumer GPS module wired to a Raspberry Pi UART.
const (
	DefaultPort     = "/dev/ttyAMA0"
	DefaultBaudRate = 4800
	DefaultWhere    = "5220.531,N,00011.797,E"
)

// Config holds all daemon settings.
type Config struct {
	Delay    time.Duration
	Port     string
	Verbose  bool
	TimeSpec string
	Loop     bool
	BaudRate uint
	Parity   string
	StopBits uint
	Where    string

	// Optional collaborators, all disabled when unset.
	MQTTBroker string
	MQTTTopic  string
	ListenAddr string
	PPSPin     string
	PPSWidth   time.Duration
}

// Parse builds a Config from command-line arguments (not including the
// program name) and validates it.
func Parse(args []string) (Config, error) {
	fs := flag.NewFlagSet("nmea-time-daemon", flag.ContinueOnError)

	delay := fs.Int("delay", 1, "seconds between sentences")
	port := fs.String("port", DefaultPort, "serial port to write to")
	verbose := fs.Bool("verbose", false, "echo each sentence to the console")
	timeSpec := fs.String("time", "now", `time to report: "now", "HH:MM:SS" or "HH:MM:SS DD/MM/YY"`)
	loop := fs.Bool("loop", true, "keep emitting; -loop=false sends a single sentence")
	baud := fs.Uint("baudrate", DefaultBaudRate, "serial baud rate")
	parity := fs.String("parity", "none", "serial parity: none, odd or even")
	stop := fs.Uint("stopbits", 1, "serial stop bits: 1 or 2")
	where := fs.String("where", DefaultWhere, "position fields, passed through verbatim")

	mqttBroker := fs.String("mqtt", "", "optional MQTT broker URL to mirror sentences to")
	mqttTopic := fs.String("mqtt-topic", "nmea/rmc", "MQTT topic for mirrored sentences")
	listen := fs.String("listen", "", "optional HTTP listen address for the live monitor")
	ppsPin := fs.String("pps-pin", "", "optional GPIO pin for a PPS pulse (e.g. GPIO18)")
	ppsWidth := fs.Duration("pps-width", 100*time.Millisecond, "width of the PPS pulse")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	cfg := Config{
		Delay:    time.Duration(*delay) * time.Second,
		Port:     *port,
		Verbose:  *verbose,
		TimeSpec: *timeSpec,
		Loop:     *loop,
		BaudRate: *baud,
		Parity:   *parity,
		StopBits: *stop,
		Where:    *where,

		MQTTBroker: *mqttBroker,
		MQTTTopic:  *mqttTopic,
		ListenAddr: *listen,
		PPSPin:     *ppsPin,
		PPSWidth:   *ppsWidth,
	}
	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// validate checks field ranges; the time spec and position string are left
// to their consumers (the clock parser and the sentence builder).
func (c Config) validate() error {
	if c.Delay < time.Second {
		return fmt.Errorf("delay must be at least 1 second, got %s", c.Delay)
	}
	if c.Port == "" {
		return fmt.Errorf("port is required")
	}
	if c.BaudRate == 0 {
		return fmt.Errorf("baudrate is required")
	}
	switch c.Parity {
	case "none", "odd", "even":
	default:
		return fmt.Errorf("parity must be none, odd or even, got %q", c.Parity)
	}
	if c.StopBits != 1 && c.StopBits != 2 {
		return fmt.Errorf("stopbits must be 1 or 2, got %d", c.StopBits)
	}
	if c.Where == "" {
		return fmt.Errorf("where is required")
	}
	if c.MQTTBroker != "" && c.MQTTTopic == "" {
		return fmt.Errorf("mqtt-topic is required when mqtt is set")
	}
	if c.PPSPin != "" && c.PPSWidth <= 0 {
		return fmt.Errorf("pps-width must be positive, got %s", c.PPSWidth)
	}
	return nil
}
