package config

import (
	"strings"
	"testing"
	"time"
)

func TestParse_Defaults(t *testing.T) {
	cfg, err := Parse(nil)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if cfg.Delay != time.Second {
		t.Errorf("Delay = %s, want 1s", cfg.Delay)
	}
	if cfg.Port != "/dev/ttyAMA0" {
		t.Errorf("Port = %q", cfg.Port)
	}
	if cfg.Verbose {
		t.Errorf("Verbose should default to false")
	}
	if cfg.TimeSpec != "now" {
		t.Errorf("TimeSpec = %q, want now", cfg.TimeSpec)
	}
	if !cfg.Loop {
		t.Errorf("Loop should default to true")
	}
	if cfg.BaudRate != 4800 {
		t.Errorf("BaudRate = %d, want 4800", cfg.BaudRate)
	}
	if cfg.Parity != "none" {
		t.Errorf("Parity = %q, want none", cfg.Parity)
	}
	if cfg.StopBits != 1 {
		t.Errorf("StopBits = %d, want 1", cfg.StopBits)
	}
	if cfg.Where != "5220.531,N,00011.797,E" {
		t.Errorf("Where = %q", cfg.Where)
	}
	if cfg.MQTTBroker != "" || cfg.ListenAddr != "" || cfg.PPSPin != "" {
		t.Errorf("optional collaborators should default to disabled: %+v", cfg)
	}
}

func TestParse_Overrides(t *testing.T) {
	cfg, err := Parse([]string{
		"-delay", "5",
		"-port", "/dev/ttyUSB0",
		"-verbose",
		"-time", "12:35:19",
		"-loop=false",
		"-baudrate", "9600",
		"-parity", "even",
		"-stopbits", "2",
		"-where", "4807.038,N,01131.000,E",
		"-mqtt", "tcp://localhost:1883",
		"-listen", ":8080",
		"-pps-pin", "GPIO18",
		"-pps-width", "50ms",
	})
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if cfg.Delay != 5*time.Second {
		t.Errorf("Delay = %s", cfg.Delay)
	}
	if cfg.Port != "/dev/ttyUSB0" || !cfg.Verbose || cfg.Loop {
		t.Errorf("unexpected cfg: %+v", cfg)
	}
	if cfg.TimeSpec != "12:35:19" {
		t.Errorf("TimeSpec = %q", cfg.TimeSpec)
	}
	if cfg.BaudRate != 9600 || cfg.Parity != "even" || cfg.StopBits != 2 {
		t.Errorf("serial params: %+v", cfg)
	}
	if cfg.Where != "4807.038,N,01131.000,E" {
		t.Errorf("Where = %q", cfg.Where)
	}
	if cfg.MQTTBroker != "tcp://localhost:1883" || cfg.MQTTTopic != "nmea/rmc" {
		t.Errorf("mqtt: %+v", cfg)
	}
	if cfg.ListenAddr != ":8080" || cfg.PPSPin != "GPIO18" || cfg.PPSWidth != 50*time.Millisecond {
		t.Errorf("collaborators: %+v", cfg)
	}
}

func TestParse_Rejects(t *testing.T) {
	cases := []struct {
		args []string
		want string
	}{
		{[]string{"-delay", "0"}, "delay"},
		{[]string{"-port", ""}, "port"},
		{[]string{"-baudrate", "0"}, "baudrate"},
		{[]string{"-parity", "mark"}, "parity"},
		{[]string{"-stopbits", "3"}, "stopbits"},
		{[]string{"-where", ""}, "where"},
		{[]string{"-mqtt", "tcp://localhost:1883", "-mqtt-topic", ""}, "mqtt-topic"},
		{[]string{"-pps-pin", "GPIO18", "-pps-width", "0s"}, "pps-width"},
	}
	for _, tc := range cases {
		_, err := Parse(tc.args)
		if err == nil {
			t.Errorf("Parse(%v) accepted, want error", tc.args)
			continue
		}
		if !strings.Contains(err.Error(), tc.want) {
			t.Errorf("Parse(%v) error %q does not mention %q", tc.args, err, tc.want)
		}
	}
}
