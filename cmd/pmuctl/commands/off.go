package commands

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"
)

func offCmd() *cobra.Command {
	var force bool
	cmd := &cobra.Command{
		Use:   "off <domain>",
		Short: "Power a domain off",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			pd, d, err := resolveDomain(args[0])
			if err != nil {
				return err
			}

			if force {
				err = wire.Manager.PowerOff(pd)
			} else {
				err = wire.Manager.PowerOffWithDeps(pd)
			}
			if err != nil {
				return err
			}

			slog.Info("powered off", "domain", d.Name)
			fmt.Printf("%s: off\n", d.Name)
			return wire.Persist()
		},
	}
	cmd.Flags().BoolVar(&force, "force", false, "skip dependency checking")
	return cmd
}
