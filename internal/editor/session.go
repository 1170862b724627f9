// Package editor holds the state shared by the editor front ends: the
// diagram, the painted canvas, the view and the tools.
package editor

import (
	"errors"
	"fmt"
	"image"

	"github.com/philipparndt/hyperdisk/internal/config"
	"github.com/philipparndt/hyperdisk/internal/paint"
	"github.com/philipparndt/hyperdisk/internal/tools"
	"github.com/philipparndt/hyperdisk/pkg/diagram"
	"github.com/philipparndt/hyperdisk/pkg/hyperbolic"
	"github.com/philipparndt/hyperdisk/pkg/viewer"
	"go.uber.org/zap"
)

// ErrUnknownTool is returned when selecting a tool that does not exist
var ErrUnknownTool = errors.New("unknown tool")

// mirrorEpsilon decides when the mirror chain changed enough to recompute the
// reflected texture
const mirrorEpsilon = 1e-12

// textureState caches the composited texture
type textureState struct {
	dirty    bool
	mirrors  hyperbolic.Matrix
	count    int
	composed *image.RGBA
}

// Session is one open diagram with its canvas, view and tools.
// It satisfies tools.Viewer.
type Session struct {
	logger *zap.Logger
	cfg    config.Config

	graph   *diagram.Graph
	canvas  *paint.Canvas
	view    *viewer.View
	tools   []tools.Tool
	manager *tools.Manager

	texture textureState
}

// New creates an empty session configured by cfg
func New(cfg config.Config, logger *zap.Logger) *Session {
	if logger == nil {
		logger = zap.NewNop()
	}
	s := &Session{
		logger: logger,
		cfg:    cfg,
		graph:  diagram.New(diagram.WithLogger(logger.Named("diagram"))),
		canvas: paint.New(cfg.Paint.TextureSize, cfg.Paint.BrushThickness, cfg.Paint.MaxRadius),
		view:   viewer.NewView(cfg.Window.Width, cfg.Window.Height, cfg.View.Margin),
	}
	s.view.MinZoom = cfg.View.MinZoom
	s.view.MaxZoom = cfg.View.MaxZoom
	s.tools = tools.Set(cfg.Interaction)
	s.manager = tools.NewManager(s, logger.Named("tools"))
	s.manager.SetTool(s.tools[0])
	s.texture.dirty = true
	return s
}

// Graph returns the diagram
func (s *Session) Graph() *diagram.Graph { return s.graph }

// Canvas returns the painted texture
func (s *Session) Canvas() *paint.Canvas { return s.canvas }

// View returns the screen mapping
func (s *Session) View() *viewer.View { return s.view }

// Config returns the active settings
func (s *Session) Config() config.Config { return s.cfg }

// Manager returns the tool manager receiving pointer events
func (s *Session) Manager() *tools.Manager { return s.manager }

// Tools returns the available tools in toolbar order
func (s *Session) Tools() []tools.Tool { return s.tools }

// HitRadius is the pick distance in disk units at the current zoom
func (s *Session) HitRadius() float64 {
	return s.view.PixelSize() * s.cfg.Interaction.HitRadiusPixels
}

// TextureChanged marks the composited texture stale
func (s *Session) TextureChanged() {
	s.texture.dirty = true
}

// SelectTool makes the named tool current
func (s *Session) SelectTool(name string) error {
	t, ok := tools.ByName(s.tools, name)
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownTool, name)
	}
	if s.manager.Current() != t {
		s.manager.SetTool(t)
	}
	return nil
}

// ToolName returns the name of the current tool
func (s *Session) ToolName() string {
	if t := s.manager.Current(); t != nil {
		return t.Name()
	}
	return ""
}

// Clear removes the whole diagram and erases the canvas
func (s *Session) Clear() {
	s.graph.Clear()
	s.canvas.Clear()
	s.manager.Reset()
	s.TextureChanged()
	s.logger.Debug("diagram cleared")
}

// ApplyConfig switches to cfg. Interaction settings rebuild the tools, keeping
// the current one selected. A new texture size needs a restart.
func (s *Session) ApplyConfig(cfg config.Config) {
	if cfg.Paint.TextureSize != s.cfg.Paint.TextureSize {
		s.logger.Info("texture size change applies after restart",
			zap.Int("current", s.cfg.Paint.TextureSize),
			zap.Int("configured", cfg.Paint.TextureSize))
	}
	s.canvas.SetThickness(cfg.Paint.BrushThickness)

	s.view.Margin = cfg.View.Margin
	s.view.MinZoom = cfg.View.MinZoom
	s.view.MaxZoom = cfg.View.MaxZoom
	s.view.ZoomAt(1, float64(s.view.Width)/2, float64(s.view.Height)/2)

	if cfg.Interaction != s.cfg.Interaction {
		name := s.ToolName()
		s.tools = tools.Set(cfg.Interaction)
		t, ok := tools.ByName(s.tools, name)
		if !ok {
			t = s.tools[0]
		}
		s.manager.SetTool(t)
	}
	s.cfg = cfg
}

// Texture returns the canvas with its reflection in the mirror chain
// composited over it, and whether it changed since the previous call
func (s *Session) Texture() (*image.RGBA, bool) {
	mirrors := s.graph.Mirrors()
	m := s.graph.MirrorMatrix()
	if !s.texture.dirty && s.texture.composed != nil &&
		len(mirrors) == s.texture.count && m.Equal(s.texture.mirrors, mirrorEpsilon) {
		return s.texture.composed, false
	}

	composed := s.canvas.Image()
	if len(mirrors) > 0 {
		reflected, err := s.canvas.Reflected(m)
		if err != nil {
			s.logger.Warn("failed to reflect texture", zap.Error(err))
		} else {
			composed = reflected
		}
	}

	s.texture = textureState{mirrors: m, count: len(mirrors), composed: composed}
	return composed, true
}

// Scene returns what to draw for the current frame
func (s *Session) Scene() viewer.Scene {
	scene := viewer.NewScene(s.graph)
	scene.Segments = s.cfg.Render.Segments
	scene.DotRadius = s.cfg.Render.DotRadius
	scene.Texture, _ = s.Texture()
	scene.ShowStats = true
	return scene
}
