package services

import (
	"sync"
	"time"
)

// SessionClock issues strictly monotonic microsecond timestamps for one
// session. Two audit records of the same session can never share a
// timestamp: a wall-clock reading at or before the previous issue is bumped
// by one microsecond.
type SessionClock struct {
	mu     sync.Mutex
	lastUs int64
}

// Now returns the next timestamp for this session.
func (c *SessionClock) Now() int64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	now := time.Now().UnixMicro()
	if now <= c.lastUs {
		now = c.lastUs + 1
	}
	c.lastUs = now
	return now
}

// Clocks hands out one SessionClock per session id.
type Clocks struct {
	mu     sync.Mutex
	clocks map[string]*SessionClock
}

// NewClocks creates an empty clock registry.
func NewClocks() *Clocks {
	return &Clocks{clocks: make(map[string]*SessionClock)}
}

// For returns the clock for a session, creating it on first use.
func (c *Clocks) For(sessionID string) *SessionClock {
	c.mu.Lock()
	defer c.mu.Unlock()
	clock, ok := c.clocks[sessionID]
	if !ok {
		clock = &SessionClock{}
		c.clocks[sessionID] = clock
	}
	return clock
}

// Release drops a session's clock once the session reached a terminal state
// and no more audit records will be written for it.
func (c *Clocks) Release(sessionID string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.clocks, sessionID)
}
