package viewer

import (
	"image"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"
	"github.com/philipparndt/hyperdisk/pkg/geometry"
)

// PointerHandler receives pointer events in disk coordinates
type PointerHandler interface {
	PointerDown(p geometry.Vector2)
	PointerDrag(p geometry.Vector2)
	PointerUp()
}

// DiskWidget is a fyne widget rendering a Scene through a software raster
type DiskWidget struct {
	widget.BaseWidget
	view    *View
	scene   func() Scene
	handler PointerHandler
	raster  *canvas.Raster
	pressed bool
}

// NewDiskWidget creates a widget drawing the scene returned by scene on each
// refresh
func NewDiskWidget(view *View, scene func() Scene) *DiskWidget {
	w := &DiskWidget{view: view, scene: scene}
	w.raster = canvas.NewRaster(w.draw)
	w.ExtendBaseWidget(w)
	return w
}

// SetPointerHandler sets the receiver of pointer events
func (w *DiskWidget) SetPointerHandler(h PointerHandler) {
	w.handler = h
}

// View returns the widget's view transform
func (w *DiskWidget) View() *View {
	return w.view
}

func (w *DiskWidget) draw(width, height int) image.Image {
	w.view.Resize(width, height)
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	RenderScene(img, w.view, w.scene())
	return img
}

// toWorld converts a widget position to disk coordinates. The raster is
// drawn at device resolution, so logical positions are scaled first.
func (w *DiskWidget) toWorld(pos fyne.Position) geometry.Vector2 {
	scale := float64(1)
	if size := w.Size(); size.Width > 0 {
		scale = float64(w.view.Width) / float64(size.Width)
	}
	return w.view.ScreenToWorld(float64(pos.X)*scale, float64(pos.Y)*scale)
}

// MouseDown starts a tool interaction
func (w *DiskWidget) MouseDown(event *desktop.MouseEvent) {
	if event.Button != desktop.MouseButtonPrimary || w.handler == nil {
		return
	}
	w.pressed = true
	w.handler.PointerDown(w.toWorld(event.Position))
	w.Refresh()
}

// MouseUp ends a tool interaction
func (w *DiskWidget) MouseUp(event *desktop.MouseEvent) {
	if !w.pressed || w.handler == nil {
		return
	}
	w.pressed = false
	w.handler.PointerUp()
	w.Refresh()
}

// Dragged forwards primary drags to the handler and pans otherwise
func (w *DiskWidget) Dragged(event *fyne.DragEvent) {
	if w.pressed && w.handler != nil {
		w.handler.PointerDrag(w.toWorld(event.Position))
	} else {
		w.view.Pan(float64(event.Dragged.DX), float64(event.Dragged.DY))
	}
	w.Refresh()
}

// DragEnd handles the end of a drag event
func (w *DiskWidget) DragEnd() {}

// Scrolled handles scroll events for zooming
func (w *DiskWidget) Scrolled(event *fyne.ScrollEvent) {
	factor := 1 + float64(event.Scrolled.DY)*0.002
	if factor <= 0 {
		return
	}
	p := w.toWorld(event.Position)
	x, y := w.view.WorldToScreen(p)
	w.view.ZoomAt(factor, x, y)
	w.Refresh()
}

// CreateRenderer creates the renderer for the widget
func (w *DiskWidget) CreateRenderer() fyne.WidgetRenderer {
	return &diskWidgetRenderer{widget: w}
}

// diskWidgetRenderer implements fyne.WidgetRenderer
type diskWidgetRenderer struct {
	widget *DiskWidget
}

func (r *diskWidgetRenderer) Layout(size fyne.Size) {
	r.widget.raster.Resize(size)
}

func (r *diskWidgetRenderer) MinSize() fyne.Size {
	return fyne.NewSize(400, 400)
}

func (r *diskWidgetRenderer) Refresh() {
	r.widget.raster.Refresh()
}

func (r *diskWidgetRenderer) Objects() []fyne.CanvasObject {
	return []fyne.CanvasObject{r.widget.raster}
}

func (r *diskWidgetRenderer) Destroy() {}
