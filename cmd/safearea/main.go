// Copyright (c) 2025, Floralens. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command safearea resolves a safe-area snapshot for a described
// device and prints the snapshot, derived metrics, and tab bar policy.
// It runs the full pipeline against the offscreen driver and is the
// quickest way to see what a given screen resolves to:
//
//	safearea resolve --width 393 --height 852 --platform ios --version 17.2
package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/floralens/safearea/device"
	"github.com/floralens/safearea/insets"
	"github.com/floralens/safearea/platform"
	"github.com/floralens/safearea/platform/offscreen"
	"github.com/floralens/safearea/safearea"
	"github.com/floralens/safearea/tabbar"
)

var (
	width      float32
	height     float32
	platName   string
	version    string
	rawInsets  string
	failSensor bool
	format     string
	profiles   string
)

// report is the printable result of one resolution.
type report struct {
	Snapshot      safearea.Snapshot `json:"snapshot" toml:"snapshot" yaml:"snapshot"`
	TabBar        tabbar.Config     `json:"tabBar" toml:"tab_bar" yaml:"tabBar"`
	TabBarPadding float32           `json:"tabBarPadding" toml:"tab_bar_padding" yaml:"tabBarPadding"`
	Spacing       float32           `json:"spacing" toml:"spacing" yaml:"spacing"`
}

var rootCmd = &cobra.Command{
	Use:          "safearea",
	Short:        "Inspect adaptive safe-area layout resolution",
	SilenceUsage: true,
}

var resolveCmd = &cobra.Command{
	Use:   "resolve",
	Short: "Resolve a safe-area snapshot for a described device",
	RunE: func(cmd *cobra.Command, args []string) error {
		return resolve(cmd)
	},
}

func init() {
	f := resolveCmd.Flags()
	f.Float32Var(&width, "width", 393, "screen width in layout points")
	f.Float32Var(&height, "height", 852, "screen height in layout points")
	f.StringVar(&platName, "platform", "ios", "platform (ios, android, web)")
	f.StringVar(&version, "version", "", "platform version, e.g. 17.2 or 28")
	f.StringVar(&rawInsets, "insets", "", "raw sensor insets as top,right,bottom,left")
	f.BoolVar(&failSensor, "fail-sensor", false, "simulate an unavailable safe-area sensor")
	f.StringVar(&format, "format", "toml", "output format (toml, yaml, json)")
	f.StringVar(&profiles, "profiles", "", "TOML file with fallback inset overrides")
	rootCmd.AddCommand(resolveCmd)
}

func resolve(cmd *cobra.Command) error {
	p, err := device.PlatformFromString(platName)
	if err != nil {
		return err
	}
	if profiles != "" {
		f, err := os.Open(profiles)
		if err != nil {
			return err
		}
		defer f.Close()
		table, err := insets.LoadTable(f)
		if err != nil {
			return err
		}
		insets.StandardTable = table
	}

	app := offscreen.New()
	app.Plat = p
	app.Version = device.ParseVersion(version)
	app.Width, app.Height = width, height
	if failSensor {
		app.SensorErr = fmt.Errorf("safe area sensor unavailable")
	} else if rawInsets != "" {
		in, err := parseInsets(rawInsets)
		if err != nil {
			return err
		}
		app.Insets = in
	}

	snap := safearea.NewResolver(app, nil).Resolve()
	m := safearea.NewMetrics(snap, platform.SystemClock{}, nil)
	rep := report{
		Snapshot:      snap,
		TabBar:        tabbar.Build(snap),
		TabBarPadding: m.TabBarPadding(),
		Spacing:       m.DynamicSpacing(16),
	}
	return write(cmd, rep)
}

func parseInsets(s string) (insets.Floats, error) {
	parts := strings.Split(s, ",")
	vals := make([]float32, 0, len(parts))
	for _, p := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(p), 32)
		if err != nil {
			return insets.Floats{}, fmt.Errorf("parsing insets %q: %w", s, err)
		}
		vals = append(vals, float32(v))
	}
	return insets.NewFloats(vals...), nil
}

func write(cmd *cobra.Command, rep report) error {
	out := cmd.OutOrStdout()
	switch format {
	case "toml":
		return toml.NewEncoder(out).Encode(rep)
	case "yaml":
		return yaml.NewEncoder(out).Encode(rep)
	case "json":
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(rep)
	}
	return fmt.Errorf("unknown format %q", format)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
