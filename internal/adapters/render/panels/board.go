package panels

import (
	"slices"
	"sync"

	"github.com/bnema/mlops-panel/internal/domain"
)

// Section is the current content of one panel.
type Section struct {
	Panel  domain.Panel
	Blocks []domain.PanelView
}

type Snapshot struct {
	Sections []Section
	Charts   []domain.ChartSpec
	Activity []domain.ActivityLine
}

// Board collects view updates for later printing. Panels keep the order
// in which they were first shown. It is safe for concurrent use.
type Board struct {
	mu       sync.Mutex
	order    []domain.Panel
	blocks   map[domain.Panel][]domain.PanelView
	charts   []domain.ChartSpec
	activity []domain.ActivityLine
}

func NewBoard() *Board {
	return &Board{blocks: map[domain.Panel][]domain.PanelView{}}
}

func (b *Board) ShowPanel(view domain.PanelView) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if _, ok := b.blocks[view.Panel]; !ok {
		b.order = append(b.order, view.Panel)
	}
	b.blocks[view.Panel] = Apply(b.blocks[view.Panel], view)
}

func (b *Board) ShowCharts(charts []domain.ChartSpec) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.charts = slices.Clone(charts)
}

func (b *Board) ShowActivity(lines []domain.ActivityLine) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.activity = slices.Clone(lines)
}

func (b *Board) Snapshot() Snapshot {
	b.mu.Lock()
	defer b.mu.Unlock()

	sections := make([]Section, 0, len(b.order))
	for _, panel := range b.order {
		sections = append(sections, Section{Panel: panel, Blocks: slices.Clone(b.blocks[panel])})
	}

	return Snapshot{
		Sections: sections,
		Charts:   slices.Clone(b.charts),
		Activity: slices.Clone(b.activity),
	}
}

// Apply returns the content of a panel after view is shown on it: an
// appending view is added below, any other view replaces everything.
func Apply(blocks []domain.PanelView, view domain.PanelView) []domain.PanelView {
	if view.Append {
		return append(slices.Clone(blocks), view)
	}
	return []domain.PanelView{view}
}
