package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func qosCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "qos <domain>",
		Short: "Show a domain's QoS ports and snapshot state",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			pd, d, err := resolveDomain(args[0])
			if err != nil {
				return err
			}
			if !d.HasQoS() {
				fmt.Printf("%s: no qos ports\n", d.Name)
				return nil
			}

			fmt.Printf("%s: %d port(s), snapshot saved=%v\n", d.Name, len(d.QoSPorts), wire.Manager.QoSSaved(pd))
			for i, base := range d.QoSPorts {
				fmt.Printf("  port %d @ %#x\n", i, base)
			}
			return nil
		},
	}
}
