// SPDX-License-Identifier: EPL-2.0

package main

import (
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
)

const appName = "typingsounds"

type rootOptions struct {
	settingsPath string
	soundsDir    string
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   appName,
		Short: "Typewriter clicks while you type",
		Long: `typingsounds plays a short click for every key you press in its
terminal scratch pad. Each key nudges the pitch its own way, and up to
a fixed number of clicks may overlap before new ones are dropped.`,
		SilenceUsage: true,
	}

	configDir := defaultConfigDir()
	cmd.PersistentFlags().StringVar(&opts.settingsPath, "settings", filepath.Join(configDir, "settings.toml"),
		"settings file")
	cmd.PersistentFlags().StringVar(&opts.soundsDir, "sounds", filepath.Join(configDir, "sounds"),
		"directory holding key, space and enter clips")

	cmd.AddCommand(
		newRunCmd(opts),
		newGenCmd(opts),
		newToggleMuteCmd(opts),
		newVolumeCmd(opts),
	)

	return cmd
}

func defaultConfigDir() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "." + appName
	}
	return filepath.Join(dir, appName)
}

func defaultLogPath() string {
	dir, err := os.UserCacheDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, appName, appName+".log")
}
