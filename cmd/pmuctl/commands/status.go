package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func statusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status [domain]",
		Short: "Show hardware power state, for one domain or all",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				pd, d, err := resolveDomain(args[0])
				if err != nil {
					return err
				}
				on, err := wire.Manager.DomainOn(pd)
				if err != nil {
					return err
				}
				fmt.Printf("%-10s %-4s active=%v\n", d.Name, onOff(on), wire.Manager.IsActive(pd))
				return nil
			}

			for _, pd := range wire.Info.SortedDomains() {
				d := wire.Info.Domains[pd]
				on, err := wire.Manager.DomainOn(pd)
				if err != nil {
					return err
				}
				fmt.Printf("%-10s %-4s active=%v\n", d.Name, onOff(on), wire.Manager.IsActive(pd))
			}
			return nil
		},
	}
}

func onOff(on bool) string {
	if on {
		return "on"
	}
	return "off"
}
