package app

import "rkpm/internal/power/sequencer"

// Config holds runtime wiring options for building the app.
type Config struct {
	Board     string           // built-in board table name, e.g. "rk3588"
	BoardFile string           // optional YAML board table; overrides Board
	Home      string           // state directory, e.g. $HOME/.pmuctl
	Seq       sequencer.Config // polling budgets; zero values select defaults
}
