// Copyright (c) 2026 Daniel Alarcon Rubio / Relabs Tech
// SPDX-License-Identifier: MIT
// See LICENSE file for full license text

// Package monitor serves a live view of the emitted sentences: a JSON status
// endpoint and a WebSocket that streams each sentence as it goes out.
package monitor

import (
	"encoding/json"
	"log"
	"net/http"
	"strings"
	"sync"

	"github.com/gorilla/websocket"
)

// Status is the JSON shape served at /api/status.
type Status struct {
	Port  string `json:"port"`
	Where string `json:"where"`
	Count uint64 `json:"count"`
	Last  string `json:"last,omitempty"`
}

type Monitor struct {
	port  string
	where string

	mu      sync.Mutex
	count   uint64
	last    string
	clients map[*websocket.Conn]struct{}

	upgrader websocket.Upgrader
}

func New(port, where string) *Monitor {
	return &Monitor{
		port:    port,
		where:   where,
		clients: make(map[*websocket.Conn]struct{}),
	}
}

// Write records one emitted sentence and fans it out to connected WebSocket
// clients. A client that cannot be written to is dropped.
func (m *Monitor) Write(p []byte) (int, error) {
	line := strings.TrimSuffix(string(p), "\r\n")

	m.mu.Lock()
	m.count++
	m.last = line
	for c := range m.clients {
		if err := c.WriteMessage(websocket.TextMessage, []byte(line)); err != nil {
			c.Close()
			delete(m.clients, c)
		}
	}
	m.mu.Unlock()
	return len(p), nil
}

func (m *Monitor) handleStatus(w http.ResponseWriter, r *http.Request) {
	m.mu.Lock()
	st := Status{Port: m.port, Where: m.where, Count: m.count, Last: m.last}
	m.mu.Unlock()

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(st); err != nil {
		log.Printf("json encode error: %v", err)
	}
}

func (m *Monitor) handleWS(w http.ResponseWriter, r *http.Request) {
	conn, err := m.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("websocket upgrade error: %v", err)
		return
	}
	m.mu.Lock()
	m.clients[conn] = struct{}{}
	m.mu.Unlock()
}

func (m *Monitor) clientCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.clients)
}

// Handler returns the monitor's HTTP routes.
func (m *Monitor) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/status", m.handleStatus)
	mux.HandleFunc("/ws", m.handleWS)
	return mux
}

// Serve blocks on the HTTP listener.
func (m *Monitor) Serve(addr string) error {
	log.Printf("monitor listening on %s", addr)
	return http.ListenAndServe(addr, m.Handler())
}
