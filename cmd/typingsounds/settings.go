// SPDX-License-Identifier: EPL-2.0

package main

import (
	"fmt"
	"math"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/ik5/typingsounds/settings"
)

func newToggleMuteCmd(root *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "toggle-mute",
		Short: "Toggle mute typing sounds",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store := settings.NewFileStore(root.settingsPath)

			s, err := store.Load()
			if err != nil {
				cmd.PrintErrf("warning: %v, starting from defaults\n", err)
			}
			s.Muted = !s.Muted

			if err := store.Save(s); err != nil {
				return err
			}
			if s.Muted {
				fmt.Fprintln(cmd.OutOrStdout(), "typing sounds muted")
			} else {
				fmt.Fprintln(cmd.OutOrStdout(), "typing sounds unmuted")
			}
			return nil
		},
	}
}

func newVolumeCmd(root *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "volume [level]",
		Short: "Show or set the click volume (0 to 1)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store := settings.NewFileStore(root.settingsPath)

			s, err := store.Load()
			if err != nil {
				cmd.PrintErrf("warning: %v, starting from defaults\n", err)
			}

			if len(args) == 1 {
				v, err := strconv.ParseFloat(args[0], 64)
				if err != nil {
					return fmt.Errorf("invalid volume %q: %w", args[0], err)
				}
				if math.IsNaN(v) {
					return fmt.Errorf("invalid volume %q", args[0])
				}
				s.Volume = v
				s = s.Clamped()
				if err := store.Save(s); err != nil {
					return err
				}
			}

			fmt.Fprintf(cmd.OutOrStdout(), "volume %.2f\n", s.Volume)
			return nil
		},
	}
}
