package render

import "github.com/gdamore/tcell/v2"

type rendererEntry struct {
	renderer SystemRenderer
	priority RenderPriority
	index    int // registration order for stable sort
}

// Orchestrator coordinates the render pipeline
type Orchestrator struct {
	screen    tcell.Screen
	buffer    *RenderBuffer
	canvas    *BufferCanvas
	renderers []rendererEntry
	regCount  int
}

// NewOrchestrator creates an orchestrator drawing a width x height logical canvas onto screen
func NewOrchestrator(screen tcell.Screen, width, height float64) *Orchestrator {
	cols, rows := screen.Size()
	buf := NewRenderBuffer(cols, rows)
	return &Orchestrator{
		screen:    screen,
		buffer:    buf,
		canvas:    NewBufferCanvas(buf, NewViewport(cols, rows, width, height)),
		renderers: make([]rendererEntry, 0, 8),
	}
}

// Register adds a renderer at the specified priority. Maintains sorted order via insertion sort
func (o *Orchestrator) Register(r SystemRenderer, priority RenderPriority) {
	entry := rendererEntry{
		renderer: r,
		priority: priority,
		index:    o.regCount,
	}
	o.regCount++

	pos := len(o.renderers)
	for i, e := range o.renderers {
		if priority < e.priority || (priority == e.priority && entry.index < e.index) {
			pos = i
			break
		}
	}

	o.renderers = append(o.renderers, rendererEntry{})
	copy(o.renderers[pos+1:], o.renderers[pos:])
	o.renderers[pos] = entry
}

// Resize updates buffer dimensions and syncs the screen
func (o *Orchestrator) Resize(cols, rows int) {
	vp := o.canvas.Viewport()
	o.buffer.Resize(cols, rows)
	o.canvas.SetViewport(NewViewport(cols, rows, vp.Width, vp.Height))
	o.screen.Sync()
}

// Viewport returns the current logical-to-cell mapping
func (o *Orchestrator) Viewport() Viewport {
	return o.canvas.Viewport()
}

// Buffer exposes the composited cells of the last frame
func (o *Orchestrator) Buffer() *RenderBuffer {
	return o.buffer
}

// Compose runs every visible renderer in priority order against c
func (o *Orchestrator) Compose(ctx RenderContext, c Canvas) {
	for _, entry := range o.renderers {
		// Skip if renderer implements VisibilityToggle and is not visible
		if vt, ok := entry.renderer.(VisibilityToggle); ok && !vt.IsVisible() {
			continue
		}
		entry.renderer.Render(ctx, c)
	}
}

// RenderFrame executes the render pipeline: compose, flush, show
func (o *Orchestrator) RenderFrame(ctx RenderContext) {
	o.Compose(ctx, o.canvas)
	o.buffer.Flush(o.screen)
}
