// Package clipboard abstracts the text clipboard so tools can copy results
// and read pending input without binding to a display server.
package clipboard

import (
	"errors"
	"sync"
)

// ErrEmpty reports a read from a clipboard holding nothing.
var ErrEmpty = errors.New("clipboard is empty")

// Clipboard reads and writes plain text.
type Clipboard interface {
	ReadText() (string, error)
	WriteText(text string) error
}

// Memory is an in-process clipboard. It backs the MCP tools in headless
// environments and the tests.
type Memory struct {
	mu   sync.Mutex
	text string
	set  bool
}

// NewMemory creates an empty in-process clipboard.
func NewMemory() *Memory {
	return &Memory{}
}

// ReadText returns the stored text, or ErrEmpty when nothing was written.
func (m *Memory) ReadText() (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if !m.set {
		return "", ErrEmpty
	}
	return m.text, nil
}

// WriteText stores the text, replacing any previous content.
func (m *Memory) WriteText(text string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.text = text
	m.set = true
	return nil
}
