// Copyright (c) 2026 Daniel Alarcon Rubio / Relabs Tech
// SPDX-License-Identifier: MIT
// See LICENSE file for full license text

// Package mqttsink mirrors emitted sentences to an MQTT broker so the rest
// of a test rig can watch the fake receiver without tapping the serial line.
package mqttsink

import (
	"fmt"

	mqtt "github.com/eclipse/paho.mqtt.golang"
)

type Sink struct {
	client mqtt.Client
	topic  string
}

// Connect dials the broker and returns a sink publishing to topic.
func Connect(broker, topic, clientID string) (*Sink, error) {
	opts := mqtt.NewClientOptions().
		AddBroker(broker).
		SetClientID(clientID)

	client := mqtt.NewClient(opts)
	if token := client.Connect(); token.Wait() && token.Error() != nil {
		return nil, fmt.Errorf("connect to MQTT broker %s: %w", broker, token.Error())
	}
	return &Sink{client: client, topic: topic}, nil
}

// Write publishes one framed sentence, retained so late subscribers see the
// latest one. Implements io.Writer so the emission loop treats the broker as
// just another byte sink.
func (s *Sink) Write(p []byte) (int, error) {
	payload := append([]byte(nil), p...)
	token := s.client.Publish(s.topic, 0, true, payload)
	token.Wait()
	if err := token.Error(); err != nil {
		return 0, err
	}
	return len(p), nil
}

func (s *Sink) Close() error {
	s.client.Disconnect(250)
	return nil
}
