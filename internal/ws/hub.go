package ws

import (
	"encoding/json"
	"sync"

	"twitch_casino/internal/events"
	"twitch_casino/internal/logger"
)

// Hub fans resolved rounds out to every connected overlay client. The feed
// is one-way: clients never send anything the server acts on.
type Hub struct {
	mu      sync.RWMutex
	clients map[*Client]struct{}
}

func NewHub() *Hub {
	return &Hub{clients: make(map[*Client]struct{})}
}

func (h *Hub) register(c *Client) {
	h.mu.Lock()
	h.clients[c] = struct{}{}
	n := len(h.clients)
	h.mu.Unlock()
	logger.Debug("feed client connected", "clients", n)
}

func (h *Hub) unregister(c *Client) {
	h.mu.Lock()
	if _, ok := h.clients[c]; ok {
		delete(h.clients, c)
		close(c.send)
	}
	n := len(h.clients)
	h.mu.Unlock()
	logger.Debug("feed client disconnected", "clients", n)
}

// Broadcast queues msg on every client. Clients that cannot keep up are
// dropped rather than blocking the feed.
func (h *Hub) Broadcast(msg []byte) {
	h.mu.RLock()
	stale := make([]*Client, 0)
	for c := range h.clients {
		select {
		case c.send <- msg:
		default:
			stale = append(stale, c)
		}
	}
	h.mu.RUnlock()

	for _, c := range stale {
		h.unregister(c)
	}
}

// Clients returns the number of connected overlay clients.
func (h *Hub) Clients() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

// FeedPublisher adapts the hub to the round-event publisher interface so
// resolved rounds reach the overlay feed alongside the other sinks.
type FeedPublisher struct {
	hub *Hub
}

func NewFeedPublisher(hub *Hub) *FeedPublisher {
	return &FeedPublisher{hub: hub}
}

func (p *FeedPublisher) PublishRound(ev events.RoundEvent) {
	data, err := json.Marshal(ev)
	if err != nil {
		logger.Warn("feed marshal failed", "err", err)
		return
	}
	p.hub.Broadcast(data)
}

func (p *FeedPublisher) Close() {}
