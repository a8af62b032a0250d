package fsm

import (
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Context is the single shared environment object visible to every state.
// One Context is created per Engine, passed to every state factory, and
// lives as long as the Engine does. It is mutable by convention: states may
// stash and read data through it, but no state owns it exclusively.
//
// All methods are safe for concurrent use, although the engine itself never
// runs two actions at once.
type Context struct {
	mu sync.RWMutex

	// MachineID uniquely identifies this machine instance in logs, metrics
	// and spans.
	MachineID string

	// Logger is the structured logger shared by all states.
	Logger *slog.Logger

	data      map[string]any
	history   []Record
	createdAt time.Time
	updatedAt time.Time
}

// Record is one entry in the machine's transition history.
type Record struct {
	From StateKind
	On   EventKind
	To   StateKind
	At   time.Time
}

// NewContext creates a machine context with a fresh machine ID and the
// default slog logger.
func NewContext() *Context {
	now := time.Now()

	return &Context{
		MachineID: "fsm-" + uuid.New().String(),
		Logger:    slog.Default(),
		data:      make(map[string]any),
		createdAt: now,
		updatedAt: now,
	}
}

// WithLogger returns the context with its logger replaced. Intended for use
// at construction time, before any state observes the context.
func (c *Context) WithLogger(logger *slog.Logger) *Context {
	c.Logger = logger

	return c
}

// Set stores a value under key.
func (c *Context) Set(key string, value any) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.data[key] = value
	c.updatedAt = time.Now()
}

// Get retrieves the value stored under key.
func (c *Context) Get(key string) (any, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	val, ok := c.data[key]

	return val, ok
}

// GetString retrieves a string value stored under key.
func (c *Context) GetString(key string) (string, bool) {
	val, ok := c.Get(key)
	if !ok {
		return "", false
	}

	s, ok := val.(string)

	return s, ok
}

// GetInt retrieves an int value stored under key.
func (c *Context) GetInt(key string) (int, bool) {
	val, ok := c.Get(key)
	if !ok {
		return 0, false
	}

	i, ok := val.(int)

	return i, ok
}

// GetBool retrieves a bool value stored under key.
func (c *Context) GetBool(key string) (bool, bool) {
	val, ok := c.Get(key)
	if !ok {
		return false, false
	}

	b, ok := val.(bool)

	return b, ok
}

// Log emits an informational message on the shared logger, tagged with the
// machine ID. Convenience for state actions.
func (c *Context) Log(msg string, args ...any) {
	c.Logger.Info(msg, append([]any{"machine_id", c.MachineID}, args...)...)
}

// History returns a copy of the transition history in occurrence order.
func (c *Context) History() []Record {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]Record, len(c.history))
	copy(out, c.history)

	return out
}

// recordTransition appends a history entry.
func (c *Context) recordTransition(from StateKind, on EventKind, to StateKind) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.history = append(c.history, Record{
		From: from,
		On:   on,
		To:   to,
		At:   time.Now(),
	})
	c.updatedAt = time.Now()
}
