// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package main

import (
	"errors"
	"fmt"
	"image"
	_ "image/jpeg" // frame decoder
	"image/png"
	"os"

	"github.com/gogpu/watermark"
	"github.com/gogpu/watermark/ggsurface"
	"github.com/spf13/cobra"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
	"gopkg.in/yaml.v3"
)

var errNothingToDraw = errors.New("nothing to draw: empty text or unknown video size")

func newRenderCmd(g *globalFlags) *cobra.Command {
	var (
		flags  = defaultSettings()
		frame  string
		output string
	)
	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render the overlay to a PNG file",
		Long: `Render the overlay to a PNG file.

With --frame the overlay is composited over the still image, which is
scaled to the backing store size. Unless --video-width or --video-height
is given, the frame size is used as the intrinsic video size.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := resolveSettings(cmd.Flags(), g.preset)
			if err != nil {
				return err
			}

			var still image.Image
			if frame != "" {
				still, err = decodeFrame(frame)
				if err != nil {
					return err
				}
				if !cmd.Flags().Changed("video-width") && !cmd.Flags().Changed("video-height") {
					size := still.Bounds().Size()
					s.VideoWidth, s.VideoHeight = size.X, size.Y
				}
			}

			cfg, opts, err := s.overlay()
			if err != nil {
				return err
			}
			if _, ok := watermark.Compute(s.metrics(), s.ContainerWidth, cfg, opts); !ok {
				return errNothingToDraw
			}

			surface := ggsurface.NewImageSurface(s.DPR)
			defer surface.Close()
			watermark.Draw(watermark.Target{
				Video:     s.metrics(),
				Container: watermark.FixedWidth(s.ContainerWidth),
				Surface:   surface,
			}, cfg, opts)

			if still != nil {
				if err := writePNG(output, surface.Composite(still)); err != nil {
					return err
				}
			} else if err := surface.SavePNG(output); err != nil {
				return fmt.Errorf("save %s: %w", output, err)
			}

			watermark.Logger().Info("wmrender: saved",
				"path", output, "width", surface.Width(), "height", surface.Height())
			fmt.Fprintf(cmd.OutOrStdout(), "%s (%dx%d)\n", output, surface.Width(), surface.Height())
			return nil
		},
	}
	flags.bindFlags(cmd.Flags())
	cmd.Flags().StringVar(&frame, "frame", "", "still video frame (PNG, JPEG, BMP, TIFF or WebP) to composite under the overlay")
	cmd.Flags().StringVarP(&output, "output", "o", "watermark.png", "output file")
	return cmd
}

// planView is the YAML form of a watermark.Plan.
type planView struct {
	Display  [2]float64 `yaml:"display"`
	Backing  [2]int     `yaml:"backing"`
	Scale    float64    `yaml:"scale"`
	Text     string     `yaml:"text"`
	Font     string     `yaml:"font"`
	Align    string     `yaml:"align"`
	Baseline string     `yaml:"baseline"`
	Anchor   [2]float64 `yaml:"anchor"`
	Fill     [4]float64 `yaml:"fill"`
	Shadow   struct {
		Color [4]float64 `yaml:"color"`
		Blur  float64    `yaml:"blur"`
	} `yaml:"shadow"`
}

func newPlanView(p watermark.Plan) planView {
	v := planView{
		Display:  [2]float64{p.DisplayWidth, p.DisplayHeight},
		Backing:  [2]int{p.BackingWidth, p.BackingHeight},
		Scale:    p.Scale,
		Text:     p.Text,
		Font:     p.Font.String(),
		Align:    p.Align.String(),
		Baseline: p.Baseline.String(),
		Anchor:   [2]float64{p.X, p.Y},
		Fill:     [4]float64{p.Fill.R, p.Fill.G, p.Fill.B, p.Fill.A},
	}
	v.Shadow.Color = [4]float64{p.Shadow.Color.R, p.Shadow.Color.G, p.Shadow.Color.B, p.Shadow.Color.A}
	v.Shadow.Blur = p.Shadow.Blur
	return v
}

func newLayoutCmd(g *globalFlags) *cobra.Command {
	flags := defaultSettings()
	cmd := &cobra.Command{
		Use:   "layout",
		Short: "Print the computed overlay layout as YAML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := resolveSettings(cmd.Flags(), g.preset)
			if err != nil {
				return err
			}
			cfg, opts, err := s.overlay()
			if err != nil {
				return err
			}
			plan, ok := watermark.Compute(s.metrics(), s.ContainerWidth, cfg, opts)
			if !ok {
				return errNothingToDraw
			}
			enc := yaml.NewEncoder(cmd.OutOrStdout())
			if err := enc.Encode(newPlanView(plan)); err != nil {
				return err
			}
			return enc.Close()
		},
	}
	flags.bindFlags(cmd.Flags())
	return cmd
}

func newPositionsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "positions",
		Short: "List the watermark positions",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			for _, p := range watermark.Positions() {
				fmt.Fprintf(cmd.OutOrStdout(), "%-13s %s\n", p, p.Label())
			}
		},
	}
}

func decodeFrame(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open frame: %w", err)
	}
	defer f.Close()
	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode frame %s: %w", path, err)
	}
	return img, nil
}

func writePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return f.Close()
}
