// SPDX-License-Identifier: EPL-2.0

package main

import (
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/spf13/cobra"

	"github.com/ik5/typingsounds"
	"github.com/ik5/typingsounds/formats"
	"github.com/ik5/typingsounds/pitch"
	"github.com/ik5/typingsounds/playback"
	"github.com/ik5/typingsounds/settings"
	"github.com/ik5/typingsounds/voice"
)

type runOptions struct {
	*rootOptions
	sampleRate int
	latency    time.Duration
	voices     int
	variation  float64
	fixedPitch bool
	logPath    string
	verbose    bool
}

func newRunCmd(root *rootOptions) *cobra.Command {
	opts := &runOptions{rootOptions: root}

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Open the clicking scratch pad",
		Long: `Opens a full screen scratch pad. Every key press plays the key, space
or enter clip from the sounds directory. Run "typingsounds gen" first to
create default clips.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runScratchPad(opts)
		},
	}

	f := cmd.Flags()
	f.IntVar(&opts.sampleRate, "sample-rate", 44100, "output sample rate in Hz")
	f.DurationVar(&opts.latency, "latency", 20*time.Millisecond, "output buffer length")
	f.IntVar(&opts.voices, "voices", voice.DefaultSize, "clicks of one kind that may overlap")
	f.Float64Var(&opts.variation, "pitch-variation", pitch.DefaultVariation, "largest relative pitch change")
	f.BoolVar(&opts.fixedPitch, "fixed-pitch", false, "play every click at its recorded pitch")
	f.StringVar(&opts.logPath, "log-file", defaultLogPath(), "log file, empty to disable")
	f.BoolVarP(&opts.verbose, "verbose", "v", false, "log debug messages")

	return cmd
}

func runScratchPad(opts *runOptions) error {
	if opts.voices <= 0 {
		return fmt.Errorf("--voices must be positive, got %d", opts.voices)
	}
	if !(opts.variation >= 0 && opts.variation < 1) {
		return fmt.Errorf("--pitch-variation must be in [0,1), got %v", opts.variation)
	}

	logger, logFile, err := openLog(opts.logPath, opts.verbose)
	if err != nil {
		return err
	}
	defer logFile.Close()

	player, err := playback.Open(formats.NewRegistry(), opts.sampleRate, opts.latency,
		playback.WithLogger(logger))
	if err != nil {
		return err
	}
	defer player.Close()

	host := newTerminalHost(opts.soundsDir)
	plugin := typingsounds.New(host, player, settings.NewFileStore(opts.settingsPath),
		typingsounds.WithLogger(logger),
		typingsounds.WithPoolSize(opts.voices),
		typingsounds.WithPitchVariation(opts.variation),
		typingsounds.WithPitchVariationEnabled(!opts.fixedPitch),
	)
	if err := plugin.Load(); err != nil {
		return err
	}
	defer plugin.Unload()

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("opening terminal: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("opening terminal: %w", err)
	}
	defer screen.Fini()
	screen.EnableFocus()

	newScratchPad(screen, host, plugin, logger).run()
	return nil
}
