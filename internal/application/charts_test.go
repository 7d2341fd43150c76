package application

import (
	"testing"

	"github.com/bnema/mlops-panel/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildChartsWithoutBatch(t *testing.T) {
	assert.Nil(t, BuildCharts(nil))
}

func TestBuildChartsFeatureAndTargetSeries(t *testing.T) {
	batch, ok := domain.NewBatch(sampleRecords(t, 5))
	require.True(t, ok)

	charts := BuildCharts(batch)
	require.Len(t, charts, 2)

	features := charts[0]
	assert.Equal(t, domain.ChartBox, features.Kind)
	require.Len(t, features.Series, 4)
	for i, series := range features.Series {
		assert.Equal(t, domain.FeatureNames[i], series.Name)
		assert.Len(t, series.Values, 5)
	}
	assert.Equal(t, []float64{0.1, 1.1, 2.1, 3.1, 4.1}, features.Series[0].Values)

	targets := charts[1]
	assert.Equal(t, domain.ChartPie, targets.Kind)
	assert.InDelta(t, 0.4, targets.Hole, 1e-9)
	require.Len(t, targets.Series, 1)
	assert.Equal(t, []string{"setosa", "versicolor"}, targets.Series[0].Labels)
	assert.Equal(t, []float64{3, 2}, targets.Series[0].Values)
}

func TestBuildChartsSkipsMissingValues(t *testing.T) {
	first, err := domain.ParseDataRecord([]byte(`{"feature1":1,"target":2}`))
	require.NoError(t, err)
	second, err := domain.ParseDataRecord([]byte(`{"feature2":"n/a"}`))
	require.NoError(t, err)

	batch, ok := domain.NewBatch([]domain.DataRecord{first, second})
	require.True(t, ok)

	charts := BuildCharts(batch)
	assert.Equal(t, []float64{1}, charts[0].Series[0].Values)
	assert.Empty(t, charts[0].Series[1].Values)
	assert.Equal(t, []string{"2"}, charts[1].Series[0].Labels)
}
