// Package report renders chart and document artifacts from a ledger snapshot.
package report

import (
	"errors"
	"fmt"
	"io"
	"math"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"sales_tracker/internal/sales"
)

// ErrInvalidDate is returned when a record's sale date cannot be parsed.
// Chart rendering is strict about dates, unlike the lenient summary and
// table paths which simply exclude or placeholder them.
var ErrInvalidDate = errors.New("invalid date entries in sales data")

// TrendChart draws the daily sales trend: one dashed line-with-markers
// series per distinct product plus a solid "Total Sales" series, dates
// ascending on the x-axis with rotated tick labels, and a legend naming
// every series. format is "png" or "pdf". Any unparsable sale date aborts
// the render with ErrInvalidDate.
func TrendChart(records []sales.SaleRecord, w io.Writer, format string) error {
	for _, r := range records {
		if _, err := r.Date(); err != nil {
			return fmt.Errorf("%w: %q", ErrInvalidDate, r.SaleDate)
		}
	}

	p := plot.New()
	p.Title.Text = "Sales Trend"
	p.X.Label.Text = "Date"
	p.Y.Label.Text = "Sales Amount"
	p.X.Tick.Marker = plot.TimeTicks{Format: "2006-01-02"}
	p.X.Tick.Label.Rotation = math.Pi / 4
	p.X.Tick.Label.XAlign = draw.XRight
	p.X.Tick.Label.YAlign = draw.YCenter
	p.Legend.Top = true

	if err := addSeries(p, "Total Sales", sales.DailySeries(records, ""), 0, false); err != nil {
		return err
	}
	for i, product := range sales.Products(records) {
		if err := addSeries(p, product, sales.DailySeries(records, product), i+1, true); err != nil {
			return err
		}
	}

	wt, err := p.WriterTo(10*vg.Inch, 5*vg.Inch, format)
	if err != nil {
		return fmt.Errorf("render trend chart: %w", err)
	}
	if _, err := wt.WriteTo(w); err != nil {
		return fmt.Errorf("write trend chart: %w", err)
	}
	return nil
}

func addSeries(p *plot.Plot, name string, series []sales.DailyTotal, i int, dashed bool) error {
	xys := make(plotter.XYs, len(series))
	for j, dt := range series {
		xys[j].X = float64(dt.Date.Unix())
		xys[j].Y = dt.Total.InexactFloat64()
	}

	line, points, err := plotter.NewLinePoints(xys)
	if err != nil {
		return fmt.Errorf("build series %q: %w", name, err)
	}
	line.Color = plotutil.Color(i)
	if dashed {
		line.Dashes = plotutil.Dashes(1)
	}
	points.Color = plotutil.Color(i)
	points.Shape = plotutil.Shape(i)

	p.Add(line, points)
	p.Legend.Add(name, line, points)
	return nil
}
