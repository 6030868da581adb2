// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"cogentcore.org/gallery/base/errors"
	"cogentcore.org/gallery/base/logx"
	"cogentcore.org/gallery/base/tomlx"
	"cogentcore.org/gallery/config"
	"cogentcore.org/gallery/demos"
	"cogentcore.org/gallery/render"
	"cogentcore.org/gallery/system"
	"cogentcore.org/gallery/system/driver"
	"cogentcore.org/gallery/system/driver/offscreen"
)

// app holds the state shared by the commands.
type app struct {
	configFile     string
	verbose, quiet bool
	config         *config.Config
}

func newRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:           "gallery",
		Short:         "Run the 3D demo scenes of the gallery",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			switch {
			case a.verbose:
				logx.SetLevel(slog.LevelDebug)
			case a.quiet:
				logx.SetLevel(slog.LevelWarn)
			}
			c, err := config.Load(a.configFile)
			if err != nil {
				return err
			}
			a.config = c
			return nil
		},
	}
	pf := root.PersistentFlags()
	pf.StringVar(&a.configFile, "config", config.DefaultFile, "configuration file")
	pf.BoolVarP(&a.verbose, "verbose", "v", false, "log debug messages")
	pf.BoolVarP(&a.quiet, "quiet", "q", false, "only log warnings and errors")
	root.MarkFlagsMutuallyExclusive("verbose", "quiet")

	root.AddCommand(a.listCmd(), a.runCmd(), a.paramsCmd())
	return root
}

func (a *app) listCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the demos",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 8, 2, ' ', 0)
			for _, dm := range demos.All() {
				fmt.Fprintf(tw, "%s\t%s\n", dm.Name, dm.Title)
			}
			return tw.Flush()
		},
	}
}

func (a *app) runCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run [demo]",
		Short: "Run a demo until its window is closed or the frame count is reached",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c := a.config
			if len(args) == 1 {
				c.Demo = args[0]
			}
			if err := c.Expand(); err != nil {
				return err
			}
			if err := c.Validate(); err != nil {
				return err
			}
			return run(cmd.Context(), c)
		},
	}
	// flags override the config file only when given
	cmd.PreRun = func(cmd *cobra.Command, args []string) {
		c := a.config
		bindInt(cmd, "width", &c.Width)
		bindInt(cmd, "height", &c.Height)
		bindString(cmd, "driver", &c.Driver)
		bindFloat(cmd, "ratio", &c.PixelRatio)
		bindFloat(cmd, "max-ratio", &c.MaxPixelRatio)
		bindInt(cmd, "frames", &c.Frames)
		bindString(cmd, "capture", &c.Capture)
		bindString(cmd, "params", &c.Params)
		bindBool(cmd, "watch", &c.Watch)
		bindBool(cmd, "fail-fast", &c.FailFast)
		bindBool(cmd, "antialias", &c.Renderer.Antialias)
		bindBool(cmd, "alpha", &c.Renderer.Alpha)
		bindString(cmd, "assets", &c.Assets)
	}
	fs := cmd.Flags()
	fs.Int("width", 1024, "viewport width in logical pixels")
	fs.Int("height", 768, "viewport height in logical pixels")
	fs.String("driver", "auto", "host driver: auto or offscreen")
	fs.Float32("ratio", 1, "device pixel ratio of offscreen hosts")
	fs.Float32("max-ratio", 2, "maximum pixel ratio used for rendering")
	fs.Int("frames", 0, "number of offscreen frames to render, 0 for no limit")
	fs.String("capture", "", "image file the last offscreen frame is saved to")
	fs.String("params", "", "TOML file of demo parameter values")
	fs.Bool("watch", false, "reload the parameter file when it changes")
	fs.Bool("fail-fast", false, "stop at the first frame error")
	fs.Bool("antialias", true, "smooth the edges of primitives")
	fs.Bool("alpha", false, "keep the alpha channel of the background")
	fs.String("assets", "assets", "directory of the files loaded by demos")
	return cmd
}

func (a *app) paramsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "params <demo> [file]",
		Short: "Write the default parameter values of a demo as TOML",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			dm, err := demos.Get(args[0])
			if err != nil {
				return err
			}
			host := offscreen.NewHost(system.Sz(1, 1), 1)
			s, err := demos.Start(host, dm, demos.Options{AssetDir: a.config.Assets})
			if err != nil {
				return err
			}
			defer func() { errors.Log(s.Stop()) }()
			if len(args) == 2 {
				return s.Params.Save(args[1])
			}
			return tomlx.Write(s.Params.Values(), cmd.OutOrStdout())
		},
	}
}

// run runs the configured demo until the host stops.
func run(ctx context.Context, c *config.Config) error {
	dm, err := demos.Get(c.Demo)
	if err != nil {
		return err
	}
	host, err := driver.NewHost(driver.Options{
		Title:      "Gallery: " + dm.Title,
		Size:       c.Size(),
		PixelRatio: c.PixelRatio,
		Offscreen:  c.Driver == "offscreen",
		MaxFrames:  c.Frames,
	})
	if err != nil {
		return err
	}
	s, err := demos.Start(host, dm, demos.Options{
		Director:   c.Director(),
		ParamsFile: c.Params,
		AssetDir:   c.Assets,
	})
	if err != nil {
		return err
	}
	defer func() { errors.Log(s.Stop()) }()

	if err := serve(ctx, host, s, c); err != nil {
		return err
	}
	slog.Info("gallery: stopped", "demo", dm.Name, "frames", s.Director.Frames())
	if err := s.Director.Err(); err != nil {
		return err
	}
	if c.Capture != "" {
		return capture(host, c.Capture)
	}
	return nil
}

// serve runs the host until it stops, with the parameter file watcher
// when enabled. The host runs on the calling goroutine: desktop hosts
// must run on the main thread.
func serve(ctx context.Context, host system.Host, s *demos.Scene, c *config.Config) error {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt)
	defer stop()
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	g, ctx := errgroup.WithContext(ctx)
	if c.Watch {
		g.Go(func() error {
			return s.Params.Watch(ctx, c.Params)
		})
	}
	err := host.Run(ctx)
	cancel()
	if werr := g.Wait(); werr != nil {
		return werr
	}
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

// capture saves the last image presented on an offscreen host.
func capture(host system.Host, filename string) error {
	oh, ok := host.(*offscreen.Host)
	if !ok {
		slog.Warn("gallery: capture needs the offscreen driver", "file", filename)
		return nil
	}
	img := oh.SurfaceOf(system.DefaultSelector).Image()
	if img == nil {
		return errors.New("gallery: no frame to capture")
	}
	if err := render.SaveImage(img, filename); err != nil {
		return err
	}
	slog.Info("gallery: captured", "file", filename, "size", img.Rect.Size())
	return nil
}

func bindString(cmd *cobra.Command, name string, v *string) {
	if f := cmd.Flags().Lookup(name); f != nil && f.Changed {
		*v = f.Value.String()
	}
}

func bindBool(cmd *cobra.Command, name string, v *bool) {
	if f := cmd.Flags().Lookup(name); f != nil && f.Changed {
		*v = errors.Log1(cmd.Flags().GetBool(name))
	}
}

func bindInt(cmd *cobra.Command, name string, v *int) {
	if f := cmd.Flags().Lookup(name); f != nil && f.Changed {
		*v = errors.Log1(cmd.Flags().GetInt(name))
	}
}

func bindFloat(cmd *cobra.Command, name string, v *float32) {
	if f := cmd.Flags().Lookup(name); f != nil && f.Changed {
		*v = errors.Log1(cmd.Flags().GetFloat32(name))
	}
}
