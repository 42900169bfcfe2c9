// Package charts rasterizes ledger aggregates into PNG images for the
// presentation layer.
package charts

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"io"
	"sort"

	"github.com/shopspring/decimal"
	"github.com/wcharczuk/go-chart/v2"

	"github.com/finsight/backend/internal/ledger"
)

// Bar renders a categorical bar chart and returns it as a
// "data:image/png;base64" URL. An empty input yields an empty string.
func Bar(title string, values map[string]decimal.Decimal) (string, error) {
	if len(values) == 0 {
		return "", nil
	}

	labels := make([]string, 0, len(values))
	for label := range values {
		labels = append(labels, label)
	}
	sort.Strings(labels)

	bars := make([]chart.Value, 0, len(labels))
	for _, label := range labels {
		bars = append(bars, chart.Value{
			Label: label,
			Value: values[label].InexactFloat64(),
		})
	}

	barChart := chart.BarChart{
		Title:    title,
		Width:    1024,
		Height:   512,
		BarWidth: 60,
		Background: chart.Style{
			Padding: chart.Box{Top: 40},
		},
		Bars: bars,
	}

	return render(barChart.Render)
}

// Pie renders the income versus expense split as a pie chart and
// returns it as a "data:image/png;base64" URL. An empty input yields an
// empty string.
func Pie(title string, values map[ledger.Kind]decimal.Decimal) (string, error) {
	if len(values) == 0 {
		return "", nil
	}

	kinds := make([]string, 0, len(values))
	for kind := range values {
		kinds = append(kinds, string(kind))
	}
	sort.Strings(kinds)

	slices := make([]chart.Value, 0, len(kinds))
	for _, kind := range kinds {
		slices = append(slices, chart.Value{
			Label: kind,
			Value: values[ledger.Kind(kind)].InexactFloat64(),
		})
	}

	pieChart := chart.PieChart{
		Title:  title,
		Width:  512,
		Height: 512,
		Values: slices,
	}

	return render(pieChart.Render)
}

func render(renderFunc func(chart.RendererProvider, io.Writer) error) (string, error) {
	var buf bytes.Buffer
	if err := renderFunc(chart.PNG, &buf); err != nil {
		return "", fmt.Errorf("could not render chart: %w", err)
	}

	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(buf.Bytes()), nil
}
