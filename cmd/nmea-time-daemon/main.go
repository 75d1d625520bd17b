package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/mjoldfield/nmea-time-daemon/internal/clock"
	"github.com/mjoldfield/nmea-time-daemon/internal/config"
	"github.com/mjoldfield/nmea-time-daemon/internal/emit"
	"github.com/mjoldfield/nmea-time-daemon/internal/monitor"
	"github.com/mjoldfield/nmea-time-daemon/internal/mqttsink"
	"github.com/mjoldfield/nmea-time-daemon/internal/pps"
	"github.com/mjoldfield/nmea-time-daemon/internal/serialport"
)

func main() {
	log.Println("starting nmea-time-daemon (fake GPRMC source)")

	cfg, err := config.Parse(os.Args[1:])
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	source, err := clock.Parse(cfg.TimeSpec)
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	port, err := serialport.Open(cfg)
	if err != nil {
		log.Fatalf("fatal: %v", err)
	}
	defer port.Close()
	log.Printf("serial port opened on %s at %d baud", cfg.Port, cfg.BaudRate)

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	loop := &emit.Loop{
		Source:    source,
		Where:     cfg.Where,
		Delay:     cfg.Delay,
		Forever:   cfg.Loop,
		Transport: port,
	}
	if cfg.Verbose {
		loop.Console = os.Stdout
	}

	if cfg.MQTTBroker != "" {
		sink, err := mqttsink.Connect(cfg.MQTTBroker, cfg.MQTTTopic, "nmea-time-daemon")
		if err != nil {
			log.Fatalf("fatal: %v", err)
		}
		defer sink.Close()
		log.Printf("mirroring sentences to %s topic %s", cfg.MQTTBroker, cfg.MQTTTopic)
		loop.Mirrors = append(loop.Mirrors, sink)
	}

	if cfg.ListenAddr != "" {
		mon := monitor.New(cfg.Port, cfg.Where)
		loop.Mirrors = append(loop.Mirrors, mon)
		go func() {
			if err := mon.Serve(cfg.ListenAddr); err != nil {
				log.Printf("monitor stopped: %v", err)
			}
		}()
	}

	if cfg.PPSPin != "" {
		pulser, err := pps.Open(cfg.PPSPin, cfg.PPSWidth)
		if err != nil {
			log.Fatalf("fatal: %v", err)
		}
		defer pulser.Close()
		log.Printf("PPS pulse on %s, width %s", cfg.PPSPin, cfg.PPSWidth)
		loop.Pulse = pulser.Pulse
	}

	if err := loop.Run(ctx); err != nil {
		log.Fatalf("fatal: %v", err)
	}
	log.Println("nmea-time-daemon stopping")
}
