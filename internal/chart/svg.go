package chart

import (
	"fmt"
	"io"

	svg "github.com/ajstarks/svgo"

	"github.com/joescharf/bugdesk/internal/render"
)

// SVG layout, in pixels.
const (
	svgWidth   = 480
	svgHeight  = 300
	marginLeft = 48
	marginTop  = 36
	marginBot  = 40
	marginRite = 16
	yTicks     = 5
)

const barFill = "#4e79a7"

// WriteSVG draws cfg as a bar chart. The y axis always starts at zero.
func WriteSVG(w io.Writer, cfg render.ChartConfig) error {
	canvas := svg.New(w)
	canvas.Start(svgWidth, svgHeight)
	defer canvas.End()

	plotW := svgWidth - marginLeft - marginRite
	plotH := svgHeight - marginTop - marginBot
	x0, y0 := marginLeft, marginTop+plotH

	if cfg.Title != "" {
		canvas.Text(svgWidth/2, marginTop/2+4, cfg.Title, "text-anchor:middle;font-size:14px;font-family:sans-serif")
	}

	top := niceMax(cfg.Max())
	grid := fmt.Sprintf("stroke:%s;stroke-width:1", cfg.Options.YGridColor)
	for i := 0; i <= yTicks; i++ {
		y := y0 - plotH*i/yTicks
		canvas.Line(x0, y, x0+plotW, y, grid)
		canvas.Text(x0-6, y+4, fmt.Sprintf("%d", top*i/yTicks), "text-anchor:end;font-size:10px;font-family:sans-serif")
	}

	labels := cfg.Data.Labels
	if len(labels) == 0 || len(cfg.Data.Datasets) == 0 {
		canvas.Text(x0+plotW/2, y0-plotH/2, "No data", "text-anchor:middle;font-size:12px;font-family:sans-serif")
		return nil
	}
	values := cfg.Data.Datasets[0].Data

	slot := plotW / len(labels)
	xgrid := fmt.Sprintf("stroke:%s;stroke-width:1", cfg.Options.XGridColor)
	for i, label := range labels {
		sx := x0 + i*slot
		canvas.Line(sx, marginTop, sx, y0, xgrid)

		v := 0
		if i < len(values) {
			v = values[i]
		}
		h := plotH * v / top
		canvas.Rect(sx+slot/6, y0-h, slot*2/3, h, "fill:"+barFill)
		canvas.Text(sx+slot/2, y0+16, label, "text-anchor:middle;font-size:11px;font-family:sans-serif")
	}
	canvas.Line(x0+plotW, marginTop, x0+plotW, y0, xgrid)

	if cfg.Options.Legend {
		canvas.Text(svgWidth-marginRite, marginTop-8, cfg.Data.Datasets[0].Label, "text-anchor:end;font-size:10px")
	}
	return nil
}

// niceMax rounds the axis top up so every tick is an integer.
func niceMax(max int) int {
	if max <= 0 {
		return yTicks
	}
	if r := max % yTicks; r != 0 {
		return max + yTicks - r
	}
	return max
}
