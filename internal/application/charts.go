package application

import "github.com/bnema/mlops-panel/internal/domain"

const targetChartHole = 0.4

// BuildCharts derives the feature distribution and target frequency
// charts from a batch. It never fetches.
func BuildCharts(batch *domain.Batch) []domain.ChartSpec {
	if batch == nil || batch.Len() == 0 {
		return nil
	}

	records := batch.Records()
	return []domain.ChartSpec{
		featureChart(records),
		targetChart(records),
	}
}

func featureChart(records []domain.DataRecord) domain.ChartSpec {
	series := make([]domain.ChartSeries, 0, len(domain.FeatureNames))
	for _, name := range domain.FeatureNames {
		values := make([]float64, 0, len(records))
		for _, record := range records {
			if value, ok := record.Feature(name); ok {
				values = append(values, value)
			}
		}
		series = append(series, domain.ChartSeries{Name: name, Values: values})
	}

	return domain.ChartSpec{
		ID:     domain.ChartFeatures,
		Title:  "Feature Distributions",
		Kind:   domain.ChartBox,
		Series: series,
	}
}

// targetChart counts records per target label; slices keep the order in
// which labels first appear.
func targetChart(records []domain.DataRecord) domain.ChartSpec {
	counts := map[domain.Label]int{}
	order := make([]domain.Label, 0)
	for _, record := range records {
		target, ok := record.Target()
		if !ok {
			continue
		}
		if _, seen := counts[target]; !seen {
			order = append(order, target)
		}
		counts[target]++
	}

	labels := make([]string, 0, len(order))
	values := make([]float64, 0, len(order))
	for _, label := range order {
		labels = append(labels, label.String())
		values = append(values, float64(counts[label]))
	}

	return domain.ChartSpec{
		ID:     domain.ChartTargets,
		Title:  "Target Class Distribution",
		Kind:   domain.ChartPie,
		Hole:   targetChartHole,
		Series: []domain.ChartSeries{{Name: "target", Labels: labels, Values: values}},
	}
}
