package render

import (
	"fmt"
	"os"

	"github.com/jonboulle/clockwork"
	chart "github.com/wcharczuk/go-chart/v2"

	"github.com/couchcryptid/ship-data-explorer/internal/domain"
)

// WorldMap renders ship positions as a scatter plot on a fixed plate-carree
// plane: longitude -180..180 on x, latitude -90..90 on y. No basemap is
// drawn; the fixed axes keep positions recognizable as a world view.
type WorldMap struct {
	clock clockwork.Clock
}

// NewWorldMap creates a position scatter renderer.
func NewWorldMap(clock clockwork.Clock) *WorldMap {
	return &WorldMap{clock: clock}
}

// Render writes a PNG scatter of the positions to path, overwriting any
// existing file. Returns ErrNoData without writing when positions is empty.
func (m *WorldMap) Render(positions []domain.Geo, path string) error {
	if len(positions) == 0 {
		return ErrNoData
	}

	lons := make([]float64, len(positions))
	lats := make([]float64, len(positions))
	for i, p := range positions {
		lons[i] = p.Lon
		lats[i] = p.Lat
	}

	ch := chart.Chart{
		Title:  fmt.Sprintf("Ship Positions (n=%d, %s)", len(positions), m.clock.Now().UTC().Format("2006-01-02")),
		Width:  1024,
		Height: 512,
		Background: chart.Style{
			Padding: chart.Box{Top: 40, Left: 20, Right: 20},
		},
		XAxis: chart.XAxis{
			Name:  "Longitude",
			Range: &chart.ContinuousRange{Min: -180, Max: 180},
		},
		YAxis: chart.YAxis{
			Name:  "Latitude",
			Range: &chart.ContinuousRange{Min: -90, Max: 90},
		},
		Series: []chart.Series{
			chart.ContinuousSeries{
				Name: "Ships",
				Style: chart.Style{
					StrokeWidth: chart.Disabled,
					DotWidth:    3,
					DotColor:    chart.ColorBlue,
				},
				XValues: lons,
				YValues: lats,
			},
		},
	}

	return writePNG(path, func(f *os.File) error {
		return ch.Render(chart.PNG, f)
	})
}
