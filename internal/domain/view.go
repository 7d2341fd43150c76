package domain

type Panel string

const (
	PanelHealth      Panel = "health"
	PanelCollector   Panel = "collector"
	PanelStorageInfo Panel = "storage-info"
	PanelStorageData Panel = "storage-data"
	PanelModel       Panel = "model"
	PanelPrediction  Panel = "prediction"
)

// Panels lists every result panel in display order.
var Panels = []Panel{
	PanelHealth,
	PanelCollector,
	PanelStorageInfo,
	PanelStorageData,
	PanelModel,
	PanelPrediction,
}

type Tone string

const (
	ToneNeutral Tone = "neutral"
	ToneSuccess Tone = "success"
	ToneInfo    Tone = "info"
	ToneWarning Tone = "warning"
	ToneDanger  Tone = "danger"
)

// PanelView is the complete description of what a panel shows after an
// update. Append views are added below the current content instead of
// replacing it.
type PanelView struct {
	Panel  Panel      `json:"panel" yaml:"panel"`
	Tone   Tone       `json:"tone" yaml:"tone"`
	Title  string     `json:"title,omitempty" yaml:"title,omitempty"`
	Lines  []string   `json:"lines,omitempty" yaml:"lines,omitempty"`
	Items  []ViewItem `json:"items,omitempty" yaml:"items,omitempty"`
	Table  *Table     `json:"table,omitempty" yaml:"table,omitempty"`
	Append bool       `json:"append,omitempty" yaml:"append,omitempty"`
}

// ViewItem is one tile of a tiled panel, such as a service in the health
// panel.
type ViewItem struct {
	Label string `json:"label" yaml:"label"`
	Value string `json:"value" yaml:"value"`
	Tone  Tone   `json:"tone" yaml:"tone"`
}

type Table struct {
	Header []string   `json:"header" yaml:"header"`
	Rows   [][]string `json:"rows" yaml:"rows"`
	Footer string     `json:"footer,omitempty" yaml:"footer,omitempty"`
}

// IsEmpty reports whether the view clears the panel.
func (v PanelView) IsEmpty() bool {
	return v.Title == "" && len(v.Lines) == 0 && len(v.Items) == 0 && v.Table == nil
}

type Severity string

const (
	SeverityInfo   Severity = "info"
	SeverityDanger Severity = "danger"
)

type ActivityLine struct {
	Timestamp string   `json:"timestamp" yaml:"timestamp"`
	Message   string   `json:"message" yaml:"message"`
	Severity  Severity `json:"severity" yaml:"severity"`
}

type ChartKind string

const (
	ChartBox ChartKind = "box"
	ChartPie ChartKind = "pie"
)

const (
	ChartFeatures = "features-chart"
	ChartTargets  = "predictions-chart"
)

// ChartSpec describes one chart for the chart sink. Box charts carry one
// series per feature; pie charts carry a single series whose labels are
// the slices.
type ChartSpec struct {
	ID     string        `json:"id" yaml:"id"`
	Title  string        `json:"title" yaml:"title"`
	Kind   ChartKind     `json:"kind" yaml:"kind"`
	Series []ChartSeries `json:"series" yaml:"series"`
	Hole   float64       `json:"hole,omitempty" yaml:"hole,omitempty"`
}

type ChartSeries struct {
	Name   string    `json:"name" yaml:"name"`
	Labels []string  `json:"labels,omitempty" yaml:"labels,omitempty"`
	Values []float64 `json:"values" yaml:"values"`
}
