package ports

import (
	"context"

	"github.com/bnema/mlops-panel/internal/domain"
)

// View receives rendered panel updates. Implementations must be safe for
// concurrent use; actions may run on several goroutines at once.
type View interface {
	ShowPanel(view domain.PanelView)
	ShowCharts(charts []domain.ChartSpec)
	ShowActivity(lines []domain.ActivityLine)
}

// Prompter handles the interactive steps that happen before a request is
// issued.
type Prompter interface {
	Confirm(ctx context.Context, question string) (bool, error)
	Notify(message string)
}
