// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Command wmrender renders a watermark overlay offscreen.
//
// It lays the overlay out exactly as the upload preview or the playback
// page would, then writes it as PNG, optionally composited over a still
// frame of the video:
//
//	wmrender render --text "Jane Doe" --position top-left --frame still.jpg -o out.png
//	wmrender layout --video-width 1920 --video-height 1080 --container-width 640
//	wmrender positions
package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/gogpu/watermark"
	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd(os.Stdout, os.Stderr).ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}

// globalFlags are shared by every subcommand.
type globalFlags struct {
	preset  string
	verbose bool
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	var g globalFlags

	root := &cobra.Command{
		Use:           "wmrender",
		Short:         "wmrender - watermark overlay renderer",
		Long:          "Renders the freelancer watermark overlay offscreen with gg, at any container width and device pixel ratio.",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := slog.LevelWarn
			if g.verbose {
				level = slog.LevelDebug
			}
			watermark.SetLogger(slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level})))
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			watermark.SetLogger(nil)
		},
	}
	root.SetOut(stdout)
	root.SetErr(stderr)

	root.PersistentFlags().StringVar(&g.preset, "preset", "", "YAML preset file with default settings")
	root.PersistentFlags().BoolVarP(&g.verbose, "verbose", "v", false, "verbose output")

	root.AddCommand(newRenderCmd(&g))
	root.AddCommand(newLayoutCmd(&g))
	root.AddCommand(newPositionsCmd())
	root.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "wmrender %s\n", watermark.Version)
		},
	})
	return root
}
