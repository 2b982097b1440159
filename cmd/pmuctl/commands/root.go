package commands

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"

	"github.com/spf13/cobra"

	"rkpm/internal/app"
	"rkpm/internal/domain"
	"rkpm/internal/power/sequencer"
)

var (
	home      string
	board     string
	boardFile string
	verbose   bool
	budget    int

	wire *app.Wire
)

func Execute() error {
	root := &cobra.Command{
		Use:           "pmuctl",
		Short:         "Power-domain control for Rockchip PMUs (simulated)",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			lvl := slog.LevelInfo
			if verbose {
				lvl = slog.LevelDebug
			}
			slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lvl})))

			if home == "" {
				dir, err := os.UserHomeDir()
				if err != nil {
					return err
				}
				home = filepath.Join(dir, ".pmuctl")
			}

			var err error
			wire, err = app.NewWire(app.Config{
				Board:     board,
				BoardFile: boardFile,
				Home:      home,
				Seq: sequencer.Config{
					RepairBudget: budget,
					StableBudget: budget,
					MemoryBudget: budget,
					AckBudget:    budget,
					IdleBudget:   budget,
				},
			})
			return err
		},
	}

	root.PersistentFlags().StringVar(&home, "home", "", "state dir (default ~/.pmuctl)")
	root.PersistentFlags().StringVar(&board, "board", "rk3588", "built-in board table")
	root.PersistentFlags().StringVar(&boardFile, "board-file", "", "YAML board table (overrides --board)")
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging")
	root.PersistentFlags().IntVar(&budget, "poll-budget", 0, "polling iteration bound (0 = default)")

	root.AddCommand(onCmd(), offCmd(), statusCmd(), domainsCmd(), qosCmd(), demoCmd(), resetCmd())
	return root.Execute()
}

// resolveDomain accepts either a table name ("vcodec") or a numeric
// identifier ("13").
func resolveDomain(arg string) (domain.PowerDomain, *domain.Descriptor, error) {
	if pd, d, err := wire.Info.DomainByName(arg); err == nil {
		return pd, d, nil
	}
	n, err := strconv.ParseUint(arg, 0, 32)
	if err != nil {
		return 0, nil, fmt.Errorf("unknown domain %q", arg)
	}
	pd := domain.PowerDomain(n)
	d, err := wire.Info.Domain(pd)
	if err != nil {
		return 0, nil, fmt.Errorf("unknown domain %q", arg)
	}
	return pd, d, nil
}
