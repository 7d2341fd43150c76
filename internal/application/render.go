package application

import (
	"fmt"
	"strconv"

	"github.com/bnema/mlops-panel/internal/domain"
	"github.com/charmbracelet/x/ansi"
)

const (
	storagePreviewRows  = 5
	featurePreviewWidth = 50
)

var storageTableHeader = []string{"ID", "Features", "Timestamp"}

func RenderHealth(result domain.Result[domain.HealthReport]) domain.PanelView {
	report, err := result.Unwrap()
	if err != nil {
		return failureView(domain.PanelHealth, "Error checking system health: "+domain.FailureReason(err))
	}

	items := make([]domain.ViewItem, 0, len(report.Services))
	for _, name := range report.Names() {
		status := report.Services[name]
		tone := domain.ToneDanger
		if status.Class() == domain.StatusClassHealthy {
			tone = domain.ToneSuccess
		}
		items = append(items, domain.ViewItem{Label: name, Value: string(status), Tone: tone})
	}

	view := domain.PanelView{Panel: domain.PanelHealth, Tone: domain.ToneNeutral, Items: items}
	if len(items) == 0 {
		view.Tone = domain.ToneWarning
		view.Lines = []string{"No services reported"}
	}
	return view
}

func RenderCollected(result domain.Result[domain.CollectedBatch]) domain.PanelView {
	batch, err := result.Unwrap()
	if err != nil {
		return failureView(domain.PanelCollector, "Error collecting data: "+domain.FailureReason(err))
	}

	lines := []string{fmt.Sprintf("Collected %d records", batch.Count)}
	if len(batch.Records) > 0 {
		sample, _ := batch.Records[0].MarshalJSON()
		lines = append(lines, "Sample: "+string(sample))
	}

	return domain.PanelView{Panel: domain.PanelCollector, Tone: domain.ToneSuccess, Lines: lines}
}

// RenderSaved is appended below the collector panel content.
func RenderSaved(result domain.Result[domain.SaveReceipt]) domain.PanelView {
	receipt, err := result.Unwrap()
	if err != nil {
		view := failureView(domain.PanelCollector, "Error saving to storage: "+domain.FailureReason(err))
		view.Append = true
		return view
	}

	return domain.PanelView{
		Panel:  domain.PanelCollector,
		Tone:   domain.ToneInfo,
		Lines:  []string{fmt.Sprintf("%d records saved to storage", receipt.Count)},
		Append: true,
	}
}

// RenderStorage returns the storage info view and, on success, the
// storage data view. A failed load leaves the data panel as it was.
func RenderStorage(result domain.Result[domain.StoredRecords]) []domain.PanelView {
	stored, err := result.Unwrap()
	if err != nil {
		return []domain.PanelView{
			failureView(domain.PanelStorageInfo, "Error loading storage data: "+domain.FailureReason(err)),
		}
	}

	total := len(stored.Records)
	info := domain.PanelView{
		Panel: domain.PanelStorageInfo,
		Tone:  domain.ToneInfo,
		Lines: []string{fmt.Sprintf("Total records: %d", total)},
	}

	if total == 0 {
		return []domain.PanelView{info, {
			Panel: domain.PanelStorageData,
			Tone:  domain.ToneWarning,
			Lines: []string{"No data in storage"},
		}}
	}

	preview := stored.Records
	if len(preview) > storagePreviewRows {
		preview = preview[:storagePreviewRows]
	}

	rows := make([][]string, 0, len(preview))
	for _, record := range preview {
		rows = append(rows, []string{
			record.ID(),
			featurePreview(record),
			record.Timestamp(),
		})
	}

	table := &domain.Table{Header: append([]string(nil), storageTableHeader...), Rows: rows}
	if total > storagePreviewRows {
		table.Footer = fmt.Sprintf("Showing %d of %d records", storagePreviewRows, total)
	}

	return []domain.PanelView{info, {Panel: domain.PanelStorageData, Tone: domain.ToneNeutral, Table: table}}
}

// RenderCleared shows the server message and empties the data panel.
func RenderCleared(result domain.Result[domain.ClearReceipt]) []domain.PanelView {
	receipt, err := result.Unwrap()
	if err != nil {
		return []domain.PanelView{
			failureView(domain.PanelStorageInfo, "Error clearing storage: "+domain.FailureReason(err)),
		}
	}

	return []domain.PanelView{
		{Panel: domain.PanelStorageInfo, Tone: domain.ToneSuccess, Lines: []string{receipt.Message}},
		{Panel: domain.PanelStorageData, Tone: domain.ToneNeutral},
	}
}

func RenderTrain(result domain.Result[domain.TrainReport]) domain.PanelView {
	report, err := result.Unwrap()
	if err != nil {
		return remoteFailureView(domain.PanelModel, "Error training model: ", err)
	}

	metrics := report.Metrics
	lines := []string{fmt.Sprintf("Accuracy: Train=%.3f, Test=%.3f", metrics.TrainAccuracy, metrics.TestAccuracy)}
	if detail := modelDetail(metrics); detail != "" {
		lines = append(lines, detail)
	}

	return domain.PanelView{
		Panel: domain.PanelModel,
		Tone:  domain.ToneSuccess,
		Title: "Model trained successfully!",
		Lines: lines,
	}
}

func RenderModelInfo(result domain.Result[domain.ModelInfo]) domain.PanelView {
	info, err := result.Unwrap()
	if err != nil {
		return remoteFailureView(domain.PanelModel, "Error loading model info: ", err)
	}

	if !info.Loaded() {
		lines := []string{}
		if info.Message != "" {
			lines = append(lines, info.Message)
		}
		return domain.PanelView{Panel: domain.PanelModel, Tone: domain.ToneWarning, Title: "No model trained", Lines: lines}
	}

	view := domain.PanelView{Panel: domain.PanelModel, Tone: domain.ToneInfo, Title: "Model loaded"}
	if info.Metadata != nil {
		if detail := modelDetail(*info.Metadata); detail != "" {
			view.Lines = append(view.Lines, detail)
		}
		if info.Metadata.TrainAccuracy > 0 || info.Metadata.TestAccuracy > 0 {
			view.Lines = append(view.Lines, fmt.Sprintf("Accuracy: Train=%.3f, Test=%.3f", info.Metadata.TrainAccuracy, info.Metadata.TestAccuracy))
		}
		if info.Metadata.TrainedAt != "" {
			view.Lines = append(view.Lines, "Trained at: "+info.Metadata.TrainedAt)
		}
	}
	return view
}

func RenderPrediction(result domain.Result[domain.Prediction]) domain.PanelView {
	prediction, err := result.Unwrap()
	if err != nil {
		return remoteFailureView(domain.PanelPrediction, "Error making prediction: ", err)
	}

	lines := []string{
		"Class: " + prediction.PredictedClass.String(),
		"Probabilities:",
	}
	for i, label := range prediction.ClassLabels {
		lines = append(lines, fmt.Sprintf("%s: %s", label, formatProbability(prediction.Probabilities, i)))
	}

	return domain.PanelView{
		Panel: domain.PanelPrediction,
		Tone:  domain.ToneSuccess,
		Title: "Prediction Result",
		Lines: lines,
	}
}

// RenderActivity maps log entries to display lines in the same order.
// Errors get the danger severity; every other kind is shown as info.
func RenderActivity(entries []domain.ActivityEntry) []domain.ActivityLine {
	lines := make([]domain.ActivityLine, 0, len(entries))
	for _, entry := range entries {
		severity := domain.SeverityInfo
		if entry.Kind == domain.ActivityError {
			severity = domain.SeverityDanger
		}
		lines = append(lines, domain.ActivityLine{
			Timestamp: entry.Timestamp,
			Message:   entry.Message,
			Severity:  severity,
		})
	}
	return lines
}

func failureView(panel domain.Panel, line string) domain.PanelView {
	return domain.PanelView{Panel: panel, Tone: domain.ToneDanger, Lines: []string{line}}
}

// remoteFailureView shows a service-reported error as is and prefixes
// transport failures with the operation context.
func remoteFailureView(panel domain.Panel, transportPrefix string, err error) domain.PanelView {
	if domain.IsDomainFailure(err) {
		return failureView(panel, domain.FailureReason(err))
	}
	return failureView(panel, transportPrefix+domain.FailureReason(err))
}

func modelDetail(metrics domain.TrainMetrics) string {
	switch {
	case metrics.Samples > 0 && metrics.ModelType != "":
		return fmt.Sprintf("Samples: %d, model: %s", metrics.Samples, metrics.ModelType)
	case metrics.Samples > 0:
		return fmt.Sprintf("Samples: %d", metrics.Samples)
	case metrics.ModelType != "":
		return "Model: " + metrics.ModelType
	default:
		return ""
	}
}

func formatProbability(probabilities []float64, index int) string {
	if index >= len(probabilities) {
		return "n/a"
	}
	return strconv.FormatFloat(probabilities[index]*100, 'f', 2, 64) + "%"
}

// featurePreview is the first featurePreviewWidth cells of the features
// JSON followed by an ellipsis, which is appended even to short values.
func featurePreview(record domain.DataRecord) string {
	return ansi.Truncate(record.FeaturesJSON(), featurePreviewWidth, "") + "..."
}
