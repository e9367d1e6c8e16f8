package service

import (
	"image"
	"image/color"
	"math"

	"github.com/dafibh/nivesh/nivesh-backend/internal/planner"
	"github.com/disintegration/imaging"
)

const (
	ChartWidth     = 960
	ChartHeight    = 480
	ChartPadding   = 24
	ThumbnailWidth = 320
)

var (
	chartBackground = color.NRGBA{R: 255, G: 255, B: 255, A: 255}
	chartAxis       = color.NRGBA{R: 160, G: 160, B: 160, A: 255}
	chartGain       = color.NRGBA{R: 34, G: 139, B: 94, A: 255}
	chartLoss       = color.NRGBA{R: 200, G: 60, B: 60, A: 255}
)

// RenderProjectionChart draws the projection as a bar chart, one bar per year.
// Negative values hang below the zero line.
func RenderProjectionChart(points []planner.ProjectionPoint) *image.NRGBA {
	canvas := imaging.New(ChartWidth, ChartHeight, chartBackground)
	if len(points) == 0 {
		return canvas
	}

	top, bottom := 0.0, 0.0
	for _, p := range points {
		top = math.Max(top, p.Value)
		bottom = math.Min(bottom, p.Value)
	}
	span := top - bottom
	if span == 0 {
		span = 1
	}

	plotWidth := ChartWidth - 2*ChartPadding
	plotHeight := float64(ChartHeight - 2*ChartPadding)
	zeroY := ChartPadding + int(math.Round(top/span*plotHeight))

	slot := plotWidth / len(points)
	barWidth := slot * 3 / 4
	if barWidth < 1 {
		barWidth = 1
	}

	for i, p := range points {
		h := int(math.Round(math.Abs(p.Value) / span * plotHeight))
		if h == 0 {
			continue
		}
		x := ChartPadding + i*slot + (slot-barWidth)/2
		fill, y := chartGain, zeroY-h
		if p.Value < 0 {
			fill, y = chartLoss, zeroY
		}
		canvas = imaging.Paste(canvas, imaging.New(barWidth, h, fill), image.Pt(x, y))
	}

	axis := imaging.New(plotWidth, 1, chartAxis)
	return imaging.Paste(canvas, axis, image.Pt(ChartPadding, zeroY))
}

// RenderThumbnail scales a chart down for previews
func RenderThumbnail(chart image.Image) *image.NRGBA {
	return imaging.Resize(chart, ThumbnailWidth, 0, imaging.Lanczos)
}
