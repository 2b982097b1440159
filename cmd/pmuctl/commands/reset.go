package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func resetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "reset",
		Short: "Discard persisted state and cold-boot the simulator",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := wire.Reset(); err != nil {
				return err
			}
			fmt.Printf("%s: reset to cold boot\n", wire.Info.Name)
			return nil
		},
	}
}
