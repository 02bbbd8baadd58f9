package push

import (
	"context"
	"sync"
)

// PermissionState is the local notification authorization state.
type PermissionState int

const (
	PermissionUnsupported PermissionState = iota
	PermissionDefault
	PermissionDenied
	PermissionGranted
)

func (s PermissionState) String() string {
	switch s {
	case PermissionUnsupported:
		return "unsupported"
	case PermissionDefault:
		return "default"
	case PermissionDenied:
		return "denied"
	case PermissionGranted:
		return "granted"
	default:
		return "invalid"
	}
}

// Prompter is the platform permission surface. Prompt blocks on the user's
// choice and reports whether notifications were granted.
type Prompter interface {
	Prompt(ctx context.Context) (granted bool, err error)
}

// Manager tracks the permission state for one session. It is constructed once
// and handed to whoever needs it, there are no ambient reads.
type Manager struct {
	mu       sync.Mutex
	state    PermissionState
	prompter Prompter
}

// NewManager seeds the state from platform capability: a nil prompter means
// the platform has no notification surface at all.
func NewManager(p Prompter) *Manager {
	if p == nil {
		return &Manager{state: PermissionUnsupported}
	}
	return &Manager{state: PermissionDefault, prompter: p}
}

// State is a pure read of the current permission state.
func (m *Manager) State() PermissionState {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state
}

// Request is the only transition. It prompts only from the default state;
// granted, denied and unsupported are settled and returned as-is since the
// platform cannot re-prompt. Denied is recoverable only outside the app.
func (m *Manager) Request(ctx context.Context) (PermissionState, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.state != PermissionDefault {
		return m.state, nil
	}

	granted, err := m.prompter.Prompt(ctx)
	if err != nil {
		return m.state, err
	}
	if granted {
		m.state = PermissionGranted
	} else {
		m.state = PermissionDenied
	}
	return m.state, nil
}
