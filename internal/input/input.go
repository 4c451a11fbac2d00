// Package input maps GLFW keys and mouse buttons to viewer actions and
// tracks per-frame press edges.
package input

import (
	"sync"

	"github.com/go-gl/glfw/v3.3/glfw"
)

// Action is a logical viewer action, not a physical key.
type Action int

const (
	ActionMoveForward Action = iota
	ActionMoveBackward
	ActionMoveLeft
	ActionMoveRight
	ActionMoveUp
	ActionMoveDown
	ActionBreakBlock
	ActionPlaceBlock
	ActionNextBlock
	ActionRadiusUp
	ActionRadiusDown
	ActionRebuild
	ActionToggleWireframe
	ActionToggleProfiling
	ActionQuit
	ActionCount
)

// Manager holds the current and edge state of every action.
type Manager struct {
	mu sync.RWMutex

	keys    map[glfw.Key][]Action
	buttons map[glfw.MouseButton][]Action

	held         [ActionCount]bool
	justPressed  [ActionCount]bool
	justReleased [ActionCount]bool
}

// NewManager returns a manager with the default bindings.
func NewManager() *Manager {
	m := &Manager{
		keys:    make(map[glfw.Key][]Action),
		buttons: make(map[glfw.MouseButton][]Action),
	}
	m.BindKey(glfw.KeyW, ActionMoveForward)
	m.BindKey(glfw.KeyS, ActionMoveBackward)
	m.BindKey(glfw.KeyA, ActionMoveLeft)
	m.BindKey(glfw.KeyD, ActionMoveRight)
	m.BindKey(glfw.KeySpace, ActionMoveUp)
	m.BindKey(glfw.KeyLeftShift, ActionMoveDown)
	m.BindKey(glfw.KeyTab, ActionNextBlock)
	m.BindKey(glfw.KeyEqual, ActionRadiusUp)
	m.BindKey(glfw.KeyMinus, ActionRadiusDown)
	m.BindKey(glfw.KeyR, ActionRebuild)
	m.BindKey(glfw.KeyF, ActionToggleWireframe)
	m.BindKey(glfw.KeyV, ActionToggleProfiling)
	m.BindKey(glfw.KeyEscape, ActionQuit)

	m.BindMouseButton(glfw.MouseButtonLeft, ActionBreakBlock)
	m.BindMouseButton(glfw.MouseButtonRight, ActionPlaceBlock)
	return m
}

// BindKey adds an action to a key. A key may drive several actions.
func (m *Manager) BindKey(key glfw.Key, a Action) {
	if a < 0 || a >= ActionCount {
		return
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.keys[key] = append(m.keys[key], a)
}

// BindMouseButton adds an action to a mouse button.
func (m *Manager) BindMouseButton(b glfw.MouseButton, a Action) {
	if a < 0 || a >= ActionCount {
		return
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.buttons[b] = append(m.buttons[b], a)
}

// HandleKey records a key event.
func (m *Manager) HandleKey(key glfw.Key, action glfw.Action) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.apply(m.keys[key], action == glfw.Press || action == glfw.Repeat)
}

// HandleMouseButton records a mouse button event.
func (m *Manager) HandleMouseButton(b glfw.MouseButton, action glfw.Action) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.apply(m.buttons[b], action == glfw.Press)
}

func (m *Manager) apply(actions []Action, pressed bool) {
	for _, a := range actions {
		if pressed && !m.held[a] {
			m.justPressed[a] = true
		}
		if !pressed && m.held[a] {
			m.justReleased[a] = true
		}
		m.held[a] = pressed
	}
}

// Attach installs key and mouse button callbacks on window.
func (m *Manager) Attach(window *glfw.Window) {
	window.SetKeyCallback(func(_ *glfw.Window, key glfw.Key, _ int, action glfw.Action, _ glfw.ModifierKey) {
		m.HandleKey(key, action)
	})
	window.SetMouseButtonCallback(func(_ *glfw.Window, b glfw.MouseButton, action glfw.Action, _ glfw.ModifierKey) {
		m.HandleMouseButton(b, action)
	})
}

// PostUpdate clears the edge flags. Call it once at the end of a frame.
func (m *Manager) PostUpdate() {
	m.mu.Lock()
	defer m.mu.Unlock()
	clear(m.justPressed[:])
	clear(m.justReleased[:])
}

// IsActive reports whether a is held.
func (m *Manager) IsActive(a Action) bool {
	if a < 0 || a >= ActionCount {
		return false
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.held[a]
}

// JustPressed reports whether a went down this frame.
func (m *Manager) JustPressed(a Action) bool {
	if a < 0 || a >= ActionCount {
		return false
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.justPressed[a]
}

// JustReleased reports whether a went up this frame.
func (m *Manager) JustReleased(a Action) bool {
	if a < 0 || a >= ActionCount {
		return false
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.justReleased[a]
}
