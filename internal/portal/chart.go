package portal

import (
	"fmt"
	"math"

	"github.com/cmlabs-hris/employee-portal/internal/domain/statistics"
)

// Palette colors slices by index, cycling when there are more slices than colors.
var Palette = []string{"#4CAF50", "#2196F3", "#FFC107", "#FF5722", "#9C27B0"}

// Chart geometry in SVG user units.
const (
	ChartSize   = 300
	ChartCenter = ChartSize / 2
	ChartRadius = 100
)

// PieChart is a render-ready pie.
type PieChart struct {
	Title  string
	Total  int64
	Slices []PieSlice
}

// PieSlice is one category. Path is empty for zero-valued slices; FullCircle
// is set when a single category holds every employee.
type PieSlice struct {
	Name       string
	Value      int64
	Color      string
	Label      string
	Path       string
	FullCircle bool
	LabelX     float64
	LabelY     float64
}

// BuildPieChart lays out counts clockwise from twelve o'clock.
func BuildPieChart(title string, counts []statistics.StatisticCount) PieChart {
	chart := PieChart{Title: title, Slices: make([]PieSlice, 0, len(counts))}
	for _, c := range counts {
		chart.Total += c.Count
	}

	angle := -math.Pi / 2
	for i, c := range counts {
		slice := PieSlice{
			Name:  c.Name,
			Value: c.Count,
			Color: Palette[i%len(Palette)],
			Label: fmt.Sprintf("%s: %d", c.Name, c.Count),
		}

		if chart.Total > 0 && c.Count > 0 {
			sweep := 2 * math.Pi * float64(c.Count) / float64(chart.Total)
			mid := angle + sweep/2
			slice.LabelX = round2(ChartCenter + 0.6*ChartRadius*math.Cos(mid))
			slice.LabelY = round2(ChartCenter + 0.6*ChartRadius*math.Sin(mid))

			if c.Count == chart.Total {
				slice.FullCircle = true
				slice.LabelX, slice.LabelY = ChartCenter, ChartCenter
			} else {
				slice.Path = arcPath(angle, angle+sweep)
			}
			angle += sweep
		}

		chart.Slices = append(chart.Slices, slice)
	}
	return chart
}

func arcPath(from, to float64) string {
	x1 := ChartCenter + ChartRadius*math.Cos(from)
	y1 := ChartCenter + ChartRadius*math.Sin(from)
	x2 := ChartCenter + ChartRadius*math.Cos(to)
	y2 := ChartCenter + ChartRadius*math.Sin(to)

	largeArc := 0
	if to-from > math.Pi {
		largeArc = 1
	}

	return fmt.Sprintf("M %d %d L %.2f %.2f A %d %d 0 %d 1 %.2f %.2f Z",
		ChartCenter, ChartCenter, x1, y1, ChartRadius, ChartRadius, largeArc, x2, y2)
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
