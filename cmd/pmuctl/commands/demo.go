package commands

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"rkpm/internal/domain"
)

// demoCmd walks the codec cluster through a full lifecycle: parent up,
// child up, a dependency-ordering refusal, then a child power cycle that
// preserves its QoS configuration across the off/on transition.
func demoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Run a scripted parent/child power cycle with QoS preservation",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := wire.Reset(); err != nil {
				return err
			}

			parent, child, err := demoPair()
			if err != nil {
				return err
			}
			pName := wire.Info.Domains[parent].Name
			cName := wire.Info.Domains[child].Name

			step := func(n int, what string) { fmt.Printf("%d. %s\n", n, what) }

			step(1, fmt.Sprintf("power on %s", pName))
			if err := wire.Manager.PowerOnWithDeps(parent); err != nil {
				return err
			}

			step(2, fmt.Sprintf("power on %s", cName))
			if err := wire.Manager.PowerOnWithDeps(child); err != nil {
				return err
			}

			step(3, fmt.Sprintf("power off %s (must be refused, %s still active)", pName, cName))
			if err = wire.Manager.PowerOffWithDeps(parent); err == nil {
				return fmt.Errorf("power off %s unexpectedly succeeded", pName)
			}
			slog.Info("refused as expected", "err", err)

			step(4, fmt.Sprintf("power cycle %s", cName))
			if err := wire.Manager.PowerOffWithDeps(child); err != nil {
				return err
			}
			if !wire.Manager.QoSSaved(child) {
				return fmt.Errorf("no qos snapshot saved for %s", cName)
			}
			if err := wire.Manager.PowerOnWithDeps(child); err != nil {
				return err
			}

			step(5, fmt.Sprintf("tear down %s then %s", cName, pName))
			if err := wire.Manager.PowerOffWithDeps(child); err != nil {
				return err
			}
			if err := wire.Manager.PowerOffWithDeps(parent); err != nil {
				return err
			}

			fmt.Println("demo complete")
			return wire.Persist()
		},
	}
}

// demoPair picks a parent/child pair with QoS ports on the child, so the
// power cycle exercises save and restore.
func demoPair() (parent, child domain.PowerDomain, err error) {
	for _, pd := range wire.Info.SortedDomains() {
		d := wire.Info.Domains[pd]
		if d.Dep == nil || d.Dep.Parent == nil || !d.HasQoS() {
			continue
		}
		return *d.Dep.Parent, pd, nil
	}
	return 0, 0, errors.New("board has no parent/child pair with qos ports")
}
