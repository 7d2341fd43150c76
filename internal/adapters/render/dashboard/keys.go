package dashboard

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the dashboard key bindings. Action keys are ignored
// while an input field has focus.
type KeyMap struct {
	Health       key.Binding
	Collect      key.Binding
	Save         key.Binding
	Load         key.Binding
	Clear        key.Binding
	Train        key.Binding
	Predict      key.Binding
	ModelInfo    key.Binding
	RefreshChart key.Binding
	NextInput    key.Binding
	Blur         key.Binding
	Confirm      key.Binding
	Decline      key.Binding
	Quit         key.Binding
}

var DefaultKeyMap = KeyMap{
	Health: key.NewBinding(
		key.WithKeys("h"),
		key.WithHelp("h", "health"),
	),
	Collect: key.NewBinding(
		key.WithKeys("c"),
		key.WithHelp("c", "collect"),
	),
	Save: key.NewBinding(
		key.WithKeys("s"),
		key.WithHelp("s", "save"),
	),
	Load: key.NewBinding(
		key.WithKeys("l"),
		key.WithHelp("l", "load"),
	),
	Clear: key.NewBinding(
		key.WithKeys("x"),
		key.WithHelp("x", "clear storage"),
	),
	Train: key.NewBinding(
		key.WithKeys("t"),
		key.WithHelp("t", "train"),
	),
	Predict: key.NewBinding(
		key.WithKeys("p"),
		key.WithHelp("p", "predict"),
	),
	ModelInfo: key.NewBinding(
		key.WithKeys("m"),
		key.WithHelp("m", "model info"),
	),
	RefreshChart: key.NewBinding(
		key.WithKeys("r"),
		key.WithHelp("r", "charts"),
	),
	NextInput: key.NewBinding(
		key.WithKeys("tab"),
		key.WithHelp("tab", "edit inputs"),
	),
	Blur: key.NewBinding(
		key.WithKeys("esc", "enter"),
		key.WithHelp("esc", "done editing"),
	),
	Confirm: key.NewBinding(
		key.WithKeys("y", "Y"),
		key.WithHelp("y", "yes"),
	),
	Decline: key.NewBinding(
		key.WithKeys("n", "N", "esc"),
		key.WithHelp("n", "no"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{
		k.Health, k.Collect, k.Save, k.Load, k.Clear,
		k.Train, k.Predict, k.ModelInfo, k.RefreshChart, k.NextInput, k.Quit,
	}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Health, k.Collect, k.Save, k.Load, k.Clear},
		{k.Train, k.Predict, k.ModelInfo, k.RefreshChart},
		{k.NextInput, k.Blur, k.Quit},
	}
}
