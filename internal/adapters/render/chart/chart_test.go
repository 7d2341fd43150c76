package chart

import (
	"math"
	"strings"
	"testing"

	"github.com/bnema/mlops-panel/internal/domain"
	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSummarize(t *testing.T) {
	summary, ok := Summarize([]float64{5, 1, math.NaN(), 3, 2, 4})
	require.True(t, ok)
	assert.Equal(t, Summary{Min: 1, Q1: 2, Median: 3, Q3: 4, Max: 5}, summary)

	summary, ok = Summarize([]float64{1, 2, 3, 4})
	require.True(t, ok)
	assert.InDelta(t, 1.75, summary.Q1, 1e-9)
	assert.InDelta(t, 2.5, summary.Median, 1e-9)
	assert.InDelta(t, 3.25, summary.Q3, 1e-9)

	_, ok = Summarize(nil)
	assert.False(t, ok)
}

func TestFormatBoxChart(t *testing.T) {
	output := ansi.Strip(Format([]domain.ChartSpec{{
		ID:    domain.ChartFeatures,
		Title: "Feature Distributions",
		Kind:  domain.ChartBox,
		Series: []domain.ChartSeries{
			{Name: "feature1", Values: []float64{4.3, 5.1, 5.8, 6.4, 7.9}},
			{Name: "feature2"},
		},
	}}, 20))

	lines := strings.Split(output, "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "Feature Distributions", strings.TrimSpace(lines[0]))
	assert.Contains(t, lines[1], "feature1")
	assert.Contains(t, lines[1], "┃")
	assert.Contains(t, lines[1], "min 4.30  q1 5.10  med 5.80  q3 6.40  max 7.90")
	assert.Contains(t, lines[2], "no data")
}

func TestFormatPieChart(t *testing.T) {
	output := ansi.Strip(Format([]domain.ChartSpec{{
		ID:     domain.ChartTargets,
		Title:  "Target Class Distribution",
		Kind:   domain.ChartPie,
		Hole:   0.4,
		Series: []domain.ChartSeries{{Name: "target", Labels: []string{"setosa", "virginica"}, Values: []float64{3, 2}}},
	}}, 10))

	assert.Contains(t, output, "Target Class Distribution")
	assert.Contains(t, output, "setosa    [======----]  60.0% (3)")
	assert.Contains(t, output, "virginica [====------]  40.0% (2)")
}

func TestFormatPieChartWithoutLabels(t *testing.T) {
	output := ansi.Strip(Format([]domain.ChartSpec{{Title: "Target Class Distribution", Kind: domain.ChartPie}}, 0))

	assert.Contains(t, output, "no data")
}
