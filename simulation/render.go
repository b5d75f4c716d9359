package simulation

import "gonum.org/v1/plot/vg"

// Renderer names accepted by Render.
const (
	RendererPlot   = "plot"
	RendererCanvas = "canvas"
)

const (
	plotSize     = 6 * vg.Inch
	canvasSizePx = 600
)
