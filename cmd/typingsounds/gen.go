// SPDX-License-Identifier: EPL-2.0

package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"

	"github.com/spf13/cobra"

	"github.com/ik5/typingsounds/formats/wav"
)

type genOptions struct {
	*rootOptions
	sampleRate int
	force      bool
}

func newGenCmd(root *rootOptions) *cobra.Command {
	opts := &genOptions{rootOptions: root}

	cmd := &cobra.Command{
		Use:   "gen",
		Short: "Create default key, space and enter clips",
		Long: `Synthesizes key.wav, space.wav and enter.wav into the sounds
directory. Existing clips are kept unless --force is given.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return generateClips(cmd, opts)
		},
	}

	cmd.Flags().IntVar(&opts.sampleRate, "sample-rate", 44100, "clip sample rate in Hz")
	cmd.Flags().BoolVar(&opts.force, "force", false, "overwrite existing clips")

	return cmd
}

func generateClips(cmd *cobra.Command, opts *genOptions) error {
	if opts.sampleRate <= 0 {
		return fmt.Errorf("--sample-rate must be positive, got %d", opts.sampleRate)
	}
	if err := os.MkdirAll(opts.soundsDir, 0o755); err != nil {
		return fmt.Errorf("creating sounds directory: %w", err)
	}

	names := make([]string, 0, len(clickShapes))
	for name := range clickShapes {
		names = append(names, name)
	}
	slices.Sort(names)

	for _, name := range names {
		path := filepath.Join(opts.soundsDir, name+".wav")

		if !opts.force {
			if _, err := os.Stat(path); err == nil {
				fmt.Fprintf(cmd.OutOrStdout(), "kept %s\n", path)
				continue
			} else if !errors.Is(err, fs.ErrNotExist) {
				return err
			}
		}

		if err := writeClip(path, synthesize(clickShapes[name], opts.sampleRate), opts.sampleRate); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", path)
	}
	return nil
}

func writeClip(path string, samples []float32, sampleRate int) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating clip: %w", err)
	}

	if err := wav.Encode(f, sampleRate, 1, samples); err != nil {
		f.Close()
		return fmt.Errorf("%s: %w", path, err)
	}
	return f.Close()
}
