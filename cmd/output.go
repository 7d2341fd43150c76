package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"sync"

	"github.com/bnema/mlops-panel/internal/adapters/render/chart"
	"github.com/bnema/mlops-panel/internal/adapters/render/panels"
	"github.com/bnema/mlops-panel/internal/domain"
	"gopkg.in/yaml.v3"
)

type outputFormat string

const (
	outputText outputFormat = "text"
	outputJSON outputFormat = "json"
	outputYAML outputFormat = "yaml"
)

func parseOutputFormat(value string) (outputFormat, error) {
	switch format := outputFormat(value); format {
	case outputText, outputJSON, outputYAML:
		return format, nil
	default:
		return "", fmt.Errorf("unsupported output format %q (want text, json or yaml)", value)
	}
}

type outputDocument struct {
	Panels   []outputPanel         `json:"panels" yaml:"panels"`
	Charts   []domain.ChartSpec    `json:"charts,omitempty" yaml:"charts,omitempty"`
	Activity []domain.ActivityLine `json:"activity,omitempty" yaml:"activity,omitempty"`
}

type outputPanel struct {
	Panel   domain.Panel       `json:"panel" yaml:"panel"`
	Heading string             `json:"heading" yaml:"heading"`
	Blocks  []domain.PanelView `json:"blocks" yaml:"blocks"`
}

func newOutputDocument(snapshot panels.Snapshot, withActivity bool) outputDocument {
	doc := outputDocument{
		Panels: make([]outputPanel, 0, len(snapshot.Sections)),
		Charts: snapshot.Charts,
	}
	for _, section := range snapshot.Sections {
		doc.Panels = append(doc.Panels, outputPanel{
			Panel:   section.Panel,
			Heading: panels.Heading(section.Panel),
			Blocks:  section.Blocks,
		})
	}
	if withActivity {
		doc.Activity = snapshot.Activity
	}
	return doc
}

func writeSnapshot(out io.Writer, snapshot panels.Snapshot, format outputFormat, withActivity bool) error {
	if format == outputText {
		rendered := panels.Render(snapshot, panels.RenderOptions{
			ShowActivity: withActivity,
			ChartWidth:   chart.DefaultWidth,
		})
		_, err := fmt.Fprintln(out, rendered)
		return err
	}

	return encode(out, format, newOutputDocument(snapshot, withActivity))
}

func encode(out io.Writer, format outputFormat, value any) error {
	switch format {
	case outputJSON:
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(value)
	case outputYAML:
		enc := yaml.NewEncoder(out)
		enc.SetIndent(2)
		if err := enc.Encode(value); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("unsupported output format %q", format)
	}
}

// streamView prints every panel update as soon as it is shown. Charts and
// activity are not streamed.
type streamView struct {
	mu     sync.Mutex
	out    io.Writer
	format outputFormat
	err    error
}

func (v *streamView) ShowPanel(view domain.PanelView) {
	snapshot := panels.Snapshot{Sections: []panels.Section{{Panel: view.Panel, Blocks: []domain.PanelView{view}}}}

	v.mu.Lock()
	defer v.mu.Unlock()
	if v.err != nil {
		return
	}

	if v.format == outputJSON {
		// one compact document per line
		data, err := json.Marshal(newOutputDocument(snapshot, false))
		if err == nil {
			_, err = fmt.Fprintln(v.out, string(data))
		}
		v.err = err
		return
	}
	if v.format == outputYAML {
		if _, err := fmt.Fprintln(v.out, "---"); err != nil {
			v.err = err
			return
		}
	}
	v.err = writeSnapshot(v.out, snapshot, v.format, false)
}

func (v *streamView) ShowCharts([]domain.ChartSpec) {}

func (v *streamView) ShowActivity([]domain.ActivityLine) {}

func (v *streamView) Err() error {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.err
}
