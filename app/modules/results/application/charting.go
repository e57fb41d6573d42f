package resultsservice

import (
	"bytes"
	"context"
	"time"

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/Yumax-panda/MK8DX-discordbot/app/shared"
)

var (
	chartBackground = drawing.Color{R: 0x2b, G: 0x2d, B: 0x31, A: 0xff}
	chartText       = drawing.Color{R: 0xdb, G: 0xde, B: 0xe1, A: 0xff}
	chartLine       = drawing.Color{R: 0x58, G: 0x65, B: 0xf2, A: 0xff}
	chartDot        = drawing.Color{R: 0xfe, G: 0xe7, B: 0x5c, A: 0xff}
)

// DifferentialChart renders a PNG line chart of score differentials
// over the guild's registered results.
func (s *ResultsService) DifferentialChart(ctx context.Context, guildID shared.GuildID) ([]byte, error) {
	results, err := s.ResultDB.List(ctx, guildID, nil)
	if err != nil {
		return nil, err
	}
	if len(results) == 0 {
		return renderNoDataPlaceholder()
	}

	xValues := make([]time.Time, len(results))
	yValues := make([]float64, len(results))
	for i, result := range results {
		xValues[i] = result.PlayedAt
		yValues[i] = float64(result.Diff())
	}

	mainSeries := chart.TimeSeries{
		Name:    "Differential",
		XValues: xValues,
		YValues: yValues,
		Style: chart.Style{
			StrokeColor: chartLine,
			StrokeWidth: 2,
			DotWidth:    4,
			DotColor:    chartDot,
		},
	}

	graph := chart.Chart{
		Width:  800,
		Height: 400,
		Background: chart.Style{
			FillColor: chartBackground,
		},
		Canvas: chart.Style{
			FillColor: chartBackground,
		},
		XAxis: chart.XAxis{
			Name:           "Date",
			ValueFormatter: chart.TimeValueFormatterWithFormat("2006-01-02"),
			Style: chart.Style{
				FontColor: chartText,
			},
		},
		YAxis: chart.YAxis{
			Name: "Differential",
			Style: chart.Style{
				FontColor: chartText,
			},
		},
		Series: []chart.Series{
			mainSeries,
			chart.ContinuousSeries{
				Name:    "Even",
				XValues: []float64{chart.TimeToFloat64(xValues[0]), chart.TimeToFloat64(xValues[len(xValues)-1])},
				YValues: []float64{0, 0},
				Style: chart.Style{
					StrokeColor:     chartText,
					StrokeWidth:     1,
					StrokeDashArray: []float64{4, 4},
				},
			},
		},
	}

	buffer := bytes.NewBuffer([]byte{})
	if err := graph.Render(chart.PNG, buffer); err != nil {
		return nil, err
	}
	return buffer.Bytes(), nil
}

func renderNoDataPlaceholder() ([]byte, error) {
	const (
		width  = 400
		height = 200
		msg    = "No results registered"
	)

	graph := chart.Chart{
		Width:  width,
		Height: height,
		Background: chart.Style{
			FillColor: chartBackground,
		},
		Canvas: chart.Style{
			FillColor: chartBackground,
		},
		XAxis: chart.HideXAxis(),
		YAxis: chart.HideYAxis(),
		// Render refuses a chart without series; keep one invisible.
		Series: []chart.Series{
			chart.ContinuousSeries{
				XValues: []float64{0, 1},
				YValues: []float64{0, 0},
				Style: chart.Style{
					StrokeColor: drawing.ColorTransparent,
				},
			},
		},
		Elements: []chart.Renderable{
			func(r chart.Renderer, cb chart.Box, chartDefaults chart.Style) {
				r.SetFontColor(chartText)
				r.SetFontSize(12.0)
				tb := r.MeasureText(msg)
				x := (cb.Width() - tb.Width()) / 2
				y := (cb.Height() + tb.Height()) / 2
				r.Text(msg, x, y)
			},
		},
	}
	buffer := bytes.NewBuffer([]byte{})
	if err := graph.Render(chart.PNG, buffer); err != nil {
		return nil, err
	}
	return buffer.Bytes(), nil
}
