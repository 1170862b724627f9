package tools

import "github.com/philipparndt/hyperdisk/pkg/geometry"

// FreeHandDraw paints strokes onto the disk texture
type FreeHandDraw struct{}

// Name returns the tool name
func (t *FreeHandDraw) Name() string { return "draw" }

// PointerDown starts a stroke
func (t *FreeHandDraw) PointerDown(v Viewer, p geometry.Vector2) {
	v.Canvas().BeginStroke(p)
	v.TextureChanged()
}

// PointerDrag extends the stroke
func (t *FreeHandDraw) PointerDrag(v Viewer, p geometry.Vector2) {
	v.Canvas().ContinueStroke(p)
	v.TextureChanged()
}

// PointerUp ends the stroke
func (t *FreeHandDraw) PointerUp(v Viewer) {
	v.Canvas().EndStroke()
}
