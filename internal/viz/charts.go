// Package viz renders the dashboard charts as PNG images.
package viz

import (
	"bytes"
	"fmt"
	"image/color"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/Andhika-Putra/dashboard-app/internal/models"
)

const (
	chartWidth  = 6 * vg.Inch
	chartHeight = 4 * vg.Inch
)

var (
	colorBlue   = color.RGBA{R: 31, G: 119, B: 180, A: 255}
	colorRed    = color.RGBA{R: 214, G: 39, B: 40, A: 255}
	colorGreen  = color.RGBA{R: 102, G: 194, B: 165, A: 255}
	colorOrange = color.RGBA{R: 252, G: 141, B: 98, A: 255}
	colorPurple = color.RGBA{R: 141, G: 160, B: 203, A: 255}
)

// clusterPalette indexes by cluster position (Low, Medium, High).
var clusterPalette = []color.Color{colorGreen, colorOrange, colorPurple}

// TemperatureScatter plots temperature against total rentals.
func TemperatureScatter(view []models.DailyRecord) ([]byte, error) {
	return scatterChart(view, "Temperature vs Total Rentals", "Temperature (normalized)",
		func(r models.DailyRecord) float64 { return r.Temperature }, colorBlue)
}

// HumidityScatter plots humidity against total rentals.
func HumidityScatter(view []models.DailyRecord) ([]byte, error) {
	return scatterChart(view, "Humidity vs Total Rentals", "Humidity (normalized)",
		func(r models.DailyRecord) float64 { return r.Humidity }, colorRed)
}

func scatterChart(view []models.DailyRecord, title, xLabel string, x func(models.DailyRecord) float64, c color.Color) ([]byte, error) {
	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = xLabel
	p.Y.Label.Text = "Total Rentals"
	p.Add(plotter.NewGrid())

	if len(view) == 0 {
		setEmptyRange(p)
		return renderPNG(p)
	}

	pts := make(plotter.XYs, len(view))
	for i, r := range view {
		pts[i] = plotter.XY{X: x(r), Y: float64(r.TotalCount)}
	}

	scatter, err := plotter.NewScatter(pts)
	if err != nil {
		return nil, fmt.Errorf("failed to build scatter: %w", err)
	}
	scatter.GlyphStyle.Color = c
	scatter.GlyphStyle.Radius = vg.Points(2)
	scatter.GlyphStyle.Shape = draw.CircleGlyph{}
	p.Add(scatter)

	return renderPNG(p)
}

// WorkingDayBox draws total rentals grouped by day type as box plots.
func WorkingDayBox(view []models.DailyRecord) ([]byte, error) {
	p := plot.New()
	p.Title.Text = "Rentals by Day Type"
	p.Y.Label.Text = "Total Rentals"

	groups := []models.DayType{models.DayTypeWorking, models.DayTypeWeekend}
	names := make([]string, len(groups))
	added := false
	for i, g := range groups {
		names[i] = string(g)

		var values plotter.Values
		for _, r := range view {
			if r.DayType == g {
				values = append(values, float64(r.TotalCount))
			}
		}
		if len(values) == 0 {
			continue
		}

		box, err := plotter.NewBoxPlot(vg.Points(40), float64(i), values)
		if err != nil {
			return nil, fmt.Errorf("failed to build box plot: %w", err)
		}
		p.Add(box)
		added = true
	}
	p.NominalX(names...)

	if !added {
		p.Y.Min, p.Y.Max = 0, 1
	}
	return renderPNG(p)
}

// MonthlyTrendLine draws the mean total rentals per month.
func MonthlyTrendLine(trend []models.MonthlyMean) ([]byte, error) {
	p := plot.New()
	p.Title.Text = "Average Rentals per Month"
	p.X.Label.Text = "Month"
	p.Y.Label.Text = "Average Total Rentals"
	p.Add(plotter.NewGrid())

	if len(trend) == 0 {
		setEmptyRange(p)
		return renderPNG(p)
	}

	pts := make(plotter.XYs, len(trend))
	for i, m := range trend {
		pts[i] = plotter.XY{X: float64(m.Month), Y: m.MeanTotal}
	}

	line, points, err := plotter.NewLinePoints(pts)
	if err != nil {
		return nil, fmt.Errorf("failed to build trend line: %w", err)
	}
	line.Color = colorBlue
	points.Shape = draw.CircleGlyph{}
	points.Radius = vg.Points(3)
	points.Color = colorBlue
	p.Add(line, points)

	return renderPNG(p)
}

// ClusterDistributionBar draws the number of days per cluster.
func ClusterDistributionBar(counts []models.ClusterCount) ([]byte, error) {
	p := plot.New()
	p.Title.Text = "Days per Rental Cluster"
	p.X.Label.Text = "Cluster"
	p.Y.Label.Text = "Days"

	values := make(plotter.Values, len(counts))
	names := make([]string, len(counts))
	for i, c := range counts {
		values[i] = float64(c.Days)
		names[i] = string(c.Cluster)
	}

	bars, err := plotter.NewBarChart(values, vg.Points(30))
	if err != nil {
		return nil, fmt.Errorf("failed to build bar chart: %w", err)
	}
	bars.LineStyle.Width = vg.Length(0)
	bars.Color = colorGreen
	p.Add(bars)
	p.NominalX(names...)

	return renderPNG(p)
}

// SeasonClusterBars draws mean total rentals per season, grouped by cluster.
func SeasonClusterBars(breakdown models.ClusterBreakdown) ([]byte, error) {
	p := plot.New()
	p.Title.Text = "Average Rentals per Season by Cluster"
	p.X.Label.Text = "Season"
	p.Y.Label.Text = "Average Total Rentals"

	seasons := models.AllSeasons()
	seasonIndex := make(map[models.Season]int, len(seasons))
	names := make([]string, len(seasons))
	for i, s := range seasons {
		seasonIndex[s] = i
		names[i] = string(s)
	}

	means := make(map[models.ClusterLabel][]float64)
	for _, label := range models.ClusterLabels() {
		means[label] = make([]float64, len(seasons))
	}
	for _, sm := range breakdown.SeasonMeans {
		means[sm.Cluster][seasonIndex[sm.Season]] = sm.MeanTotal
	}

	width := vg.Points(15)
	for i, label := range models.ClusterLabels() {
		bars, err := plotter.NewBarChart(plotter.Values(means[label]), width)
		if err != nil {
			return nil, fmt.Errorf("failed to build grouped bars: %w", err)
		}
		bars.LineStyle.Width = vg.Length(0)
		bars.Color = clusterPalette[i%len(clusterPalette)]
		bars.Offset = vg.Length(i-1) * width
		p.Add(bars)
		p.Legend.Add(string(label), bars)
	}
	p.Legend.Top = true
	p.NominalX(names...)

	return renderPNG(p)
}

func setEmptyRange(p *plot.Plot) {
	p.X.Min, p.X.Max = 0, 1
	p.Y.Min, p.Y.Max = 0, 1
}

// renderPNG renders p at the dashboard's standard chart size.
func renderPNG(p *plot.Plot) ([]byte, error) {
	writer, err := p.WriterTo(chartWidth, chartHeight, "png")
	if err != nil {
		return nil, fmt.Errorf("failed to render chart: %w", err)
	}

	var buf bytes.Buffer
	if _, err := writer.WriteTo(&buf); err != nil {
		return nil, fmt.Errorf("failed to encode chart: %w", err)
	}
	return buf.Bytes(), nil
}
