package main

import (
	"fmt"
	"io"
	"math"
	"strings"

	"parkospace/internal/client/view"
	"parkospace/internal/client/viewport"
	"parkospace/internal/domain/entity"
)

const (
	gridWidth  = 48
	gridHeight = 18
)

// terminalMap draws markers on a character grid centered on the current view.
type terminalMap struct {
	center  entity.GeoPoint
	zoom    int
	markers []*terminalMarker
}

type terminalMarker struct {
	spec    view.MarkerSpec
	removed bool
}

func (tm *terminalMarker) Remove() {
	tm.removed = true
}

func (t *terminalMap) SetView(center entity.GeoPoint, zoom int) {
	t.center, t.zoom = center, zoom
}

func (t *terminalMap) FlyTo(center entity.GeoPoint, zoom int) {
	t.center, t.zoom = center, zoom
}

func (t *terminalMap) PlaceMarker(spec view.MarkerSpec) viewport.Marker {
	m := &terminalMarker{spec: spec}
	t.markers = append(t.markers, m)

	return m
}

// span is the longitude width of the grid at the current zoom.
func (t *terminalMap) span() float64 {
	zoom := t.zoom
	if zoom <= 0 {
		zoom = 14
	}

	return 360 / math.Pow(2, float64(zoom)) * 4
}

func (t *terminalMap) Draw(w io.Writer) {
	grid := make([][]rune, gridHeight)
	for i := range grid {
		grid[i] = []rune(strings.Repeat(".", gridWidth))
	}

	lngSpan := t.span()
	latSpan := lngSpan * gridHeight / gridWidth * 2
	rank := 0
	for _, m := range t.markers {
		if m.removed {
			continue
		}

		glyph := '*'
		switch m.spec.Style {
		case view.MarkerUser:
			glyph = '@'
		case view.MarkerSearch:
			glyph = '+'
		case view.MarkerSold:
			rank++
			glyph = 'x'
		case view.MarkerActive:
			rank++
			if rank < 10 {
				glyph = rune('0' + rank)
			}
		}

		col := int(math.Round((m.spec.Position.Lng-t.center.Lng)/lngSpan*gridWidth)) + gridWidth/2
		row := gridHeight/2 - int(math.Round((m.spec.Position.Lat-t.center.Lat)/latSpan*gridHeight))
		if row < 0 || row >= gridHeight || col < 0 || col >= gridWidth {
			continue
		}
		grid[row][col] = glyph
	}

	fmt.Fprintf(w, "+%s+\n", strings.Repeat("-", gridWidth))
	for _, line := range grid {
		fmt.Fprintf(w, "|%s|\n", string(line))
	}
	fmt.Fprintf(w, "+%s+\n", strings.Repeat("-", gridWidth))
	fmt.Fprintf(w, " center %s  zoom %d  (@ you, + search, digits rank, x sold)\n", t.center, t.zoom)
}
