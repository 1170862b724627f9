// Package tools implements the interactive editing tools of the disk editor.
//
// A tool turns pointer events, already converted to disk coordinates, into
// diagram operations. Tools keep private state between the press, the drags
// and the release of one gesture.
package tools

import (
	"github.com/philipparndt/hyperdisk/internal/paint"
	"github.com/philipparndt/hyperdisk/pkg/diagram"
	"github.com/philipparndt/hyperdisk/pkg/geometry"
	"go.uber.org/zap"
)

// Viewer is what tools need from the editor window
type Viewer interface {
	Graph() *diagram.Graph
	Canvas() *paint.Canvas
	// HitRadius is the pick distance in disk units at the current zoom
	HitRadius() float64
	// TextureChanged tells the viewer to re-upload the painted texture
	TextureChanged()
}

// Tool handles one kind of gesture
type Tool interface {
	Name() string
	PointerDown(v Viewer, p geometry.Vector2)
	PointerDrag(v Viewer, p geometry.Vector2)
	PointerUp(v Viewer)
}

// Activator is implemented by tools that prepare state when selected
type Activator interface {
	Activate(v Viewer)
}

// Deactivator is implemented by tools that clean up when deselected
type Deactivator interface {
	Deactivate(v Viewer)
}

// closestPoint picks the point under p
func closestPoint(v Viewer, p geometry.Vector2) *diagram.Point {
	return v.Graph().ClosestPoint(p, v.HitRadius())
}

// closestLine picks the line or mirror under p
func closestLine(v Viewer, p geometry.Vector2) *diagram.Line {
	return v.Graph().ClosestLine(p, v.HitRadius())
}

// Manager routes pointer events to the current tool. Drags and the release
// only reach the tool between a press and its release.
type Manager struct {
	viewer  Viewer
	logger  *zap.Logger
	current Tool
	pressed bool
}

// NewManager creates a manager without a current tool
func NewManager(v Viewer, logger *zap.Logger) *Manager {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Manager{viewer: v, logger: logger}
}

// SetTool deactivates the current tool and activates t
func (m *Manager) SetTool(t Tool) {
	if d, ok := m.current.(Deactivator); ok {
		d.Deactivate(m.viewer)
	}
	m.current = t
	m.pressed = false
	if a, ok := m.current.(Activator); ok {
		a.Activate(m.viewer)
	}
	if t != nil {
		m.logger.Debug("tool selected", zap.String("tool", t.Name()))
	}
}

// Current returns the active tool, or nil
func (m *Manager) Current() Tool {
	return m.current
}

// Reset drops any gesture state of the current tool, e.g. after the diagram
// was cleared
func (m *Manager) Reset() {
	m.SetTool(m.current)
}

// Pressed reports whether a gesture is in progress
func (m *Manager) Pressed() bool {
	return m.pressed
}

// PointerDown forwards a press
func (m *Manager) PointerDown(p geometry.Vector2) {
	if m.current != nil {
		m.pressed = true
		m.current.PointerDown(m.viewer, p)
	}
}

// PointerDrag forwards a drag
func (m *Manager) PointerDrag(p geometry.Vector2) {
	if m.current != nil && m.pressed {
		m.current.PointerDrag(m.viewer, p)
	}
}

// PointerUp forwards a release once per press
func (m *Manager) PointerUp() {
	if m.current != nil && m.pressed {
		m.pressed = false
		m.current.PointerUp(m.viewer)
	}
}
