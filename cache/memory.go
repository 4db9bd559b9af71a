// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package cache

import (
	"context"
	"sync"
	"time"

	"github.com/danielhkuo/pollboard/models"
)

type memoryEntry struct {
	polls     []models.Poll
	expiresAt time.Time
}

// Memory is a process-local ListingCache used when no Redis is configured
type Memory struct {
	mu      sync.RWMutex
	ttl     time.Duration
	entries map[string]memoryEntry
	now     func() time.Time
}

func NewMemory(ttl time.Duration) *Memory {
	return &Memory{
		ttl:     ttl,
		entries: make(map[string]memoryEntry),
		now:     time.Now,
	}
}

func (m *Memory) Get(_ context.Context, key string) ([]models.Poll, bool, error) {
	m.mu.RLock()
	e, ok := m.entries[key]
	m.mu.RUnlock()

	if !ok || !m.now().Before(e.expiresAt) {
		return nil, false, nil
	}
	return clonePolls(e.polls), true, nil
}

func (m *Memory) Set(_ context.Context, key string, polls []models.Poll) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.entries[key] = memoryEntry{
		polls:     clonePolls(polls),
		expiresAt: m.now().Add(m.ttl),
	}
	return nil
}

func (m *Memory) Delete(_ context.Context, keys ...string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, k := range keys {
		delete(m.entries, k)
	}
	return nil
}

// callers may mutate what they get back
func clonePolls(polls []models.Poll) []models.Poll {
	out := make([]models.Poll, len(polls))
	for i, p := range polls {
		p.Options = append([]string(nil), p.Options...)
		out[i] = p
	}
	return out
}
