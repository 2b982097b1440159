package commands

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"
)

func onCmd() *cobra.Command {
	var force bool
	cmd := &cobra.Command{
		Use:   "on <domain>",
		Short: "Power a domain on",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			pd, d, err := resolveDomain(args[0])
			if err != nil {
				return err
			}

			if force {
				err = wire.Manager.PowerOn(pd)
			} else {
				err = wire.Manager.PowerOnWithDeps(pd)
			}
			if err != nil {
				return err
			}

			slog.Info("powered on", "domain", d.Name)
			fmt.Printf("%s: on\n", d.Name)
			return wire.Persist()
		},
	}
	cmd.Flags().BoolVar(&force, "force", false, "skip dependency checking")
	return cmd
}
