package cmd

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunWithSpinnerSkipsAnimationOffTerminal(t *testing.T) {
	var output bytes.Buffer
	failure := errors.New("boom")

	err := runWithSpinner(context.Background(), &output, "Training model...", func(context.Context) error {
		return failure
	})

	require.ErrorIs(t, err, failure)
	assert.Empty(t, output.String())
}

func TestWaitingModelClearsAndQuitsWhenActionFinishes(t *testing.T) {
	m := waitingModel{spinner: spinner.New(), label: "Collecting data..."}
	assert.Contains(t, m.View(), "Collecting data...")

	next, cmd := m.Update(actionFinishedMsg{})
	require.NotNil(t, cmd)
	assert.Empty(t, next.View())
}
