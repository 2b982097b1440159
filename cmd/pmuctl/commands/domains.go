package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func domainsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "domains",
		Short: "List the board's power domains and their relations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Printf("board: %s (%d domains)\n", wire.Info.Name, len(wire.Info.Domains))
			for _, pd := range wire.Info.SortedDomains() {
				d := wire.Info.Domains[pd]

				var notes []string
				if d.HasMemory() {
					notes = append(notes, "mem")
				}
				if d.HasIdle() {
					notes = append(notes, "idle")
				}
				if d.HasQoS() {
					notes = append(notes, fmt.Sprintf("qos=%d", len(d.QoSPorts)))
				}
				if d.AlwaysOn {
					notes = append(notes, "always-on")
				}
				if d.KeeponStartup {
					notes = append(notes, "keepon")
				}
				if d.ActiveWakeup {
					notes = append(notes, "wakeup")
				}
				if d.Dep != nil && d.Dep.Parent != nil {
					notes = append(notes, "parent="+wire.Info.Domains[*d.Dep.Parent].Name)
				}
				if d.Dep != nil && len(d.Dep.Children) > 0 {
					names := make([]string, 0, len(d.Dep.Children))
					for _, c := range d.Dep.Children {
						names = append(names, wire.Info.Domains[c].Name)
					}
					notes = append(notes, "children="+strings.Join(names, ","))
				}

				fmt.Printf("%3d  %-10s %s\n", uint32(pd), d.Name, strings.Join(notes, " "))
			}
			return nil
		},
	}
}
