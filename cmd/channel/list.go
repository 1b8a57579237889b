package main

import (
	"fmt"
	"os"
	"sort"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/spf13/cobra"

	"github.com/acousticcorner/channel/internal/anim"
	"github.com/acousticcorner/channel/internal/candle"
	"github.com/acousticcorner/channel/internal/config"
	"github.com/acousticcorner/channel/internal/lava"
	"github.com/acousticcorner/channel/internal/metrics"
	"github.com/acousticcorner/channel/internal/surface"
)

func newTable(header table.Row) table.Writer {
	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.SetStyle(table.StyleRounded)
	t.AppendHeader(header)
	return t
}

func listEpisodes(cmd *cobra.Command, args []string) error {
	cfg, _, err := loadSettings(cmd)
	if err != nil {
		return err
	}
	cat, err := loadCatalog(cfg)
	if err != nil {
		return err
	}

	t := newTable(table.Row{"ID", "Title", "Artist", "Year", "Intro", "Mode", "Length", "Badge"})
	for _, ep := range cat.Episodes {
		t.AppendRow(table.Row{ep.ID, ep.Title, ep.Artist, ep.Year, ep.IntroKind(), ep.Mode, ep.Summary(), ep.Badge})
	}
	t.AppendFooter(table.Row{"", "", "", "", "", "", fmt.Sprintf("%d episodes", cat.Len())})
	t.Render()
	return nil
}

func listExports(cmd *cobra.Command, args []string) error {
	cfg, _, err := loadSettings(cmd)
	if err != nil {
		return err
	}
	runs, err := exportStore(cfg).List()
	if err != nil {
		return err
	}
	if len(runs) == 0 {
		fmt.Println("No exports found")
		return nil
	}

	t := newTable(table.Row{"ID", "Intro", "Label", "Timestamp", "Seconds", "Frames", "Size"})
	t.SetColumnConfigs([]table.ColumnConfig{
		{Name: "Seconds", Align: text.AlignRight},
		{Name: "Frames", Align: text.AlignRight},
	})
	for _, r := range runs {
		t.AppendRow(table.Row{
			r.ID, r.Intro, r.Label,
			r.Timestamp.Format(time.DateTime),
			fmt.Sprintf("%.2f", r.Seconds),
			r.Frames,
			fmt.Sprintf("%dx%d@%g", r.Width, r.Height, r.Ratio),
		})
	}
	t.Render()
	return nil
}

func listPresets(cmd *cobra.Command, args []string) error {
	t := newTable(table.Row{"Preset", "Width", "Height", "Ratio", "Buffer"})
	for _, name := range config.ListPresets() {
		s := config.Presets[name]
		m := surface.Measure(surface.NewFixed(s.Width, s.Height, s.Ratio))
		t.AppendRow(table.Row{name, m.Width, m.Height, m.Ratio, fmt.Sprintf("%dx%d", m.BufferWidth, m.BufferHeight)})
	}
	t.Render()
	return nil
}

// runProfile renders an intro against simulated time, timing each paint.
func runProfile(cmd *cobra.Command, args []string) error {
	cfg, logger, err := loadSettings(cmd)
	if err != nil {
		return err
	}
	canvas := surface.New(surface.NewFixed(cfg.Surface.Width, cfg.Surface.Height, cfg.Surface.Ratio))
	label := "Acoustic Corner"
	start := time.Now()

	var scene anim.Scene
	var dur time.Duration
	switch args[0] {
	case "candle":
		scene = candle.NewScene(canvas, label)
		dur = anim.DurationOf(introSeconds(cmd, cfg.Candle.Seconds), candle.DefaultSeconds)
	case "lava":
		r := lava.NewRenderer(cfg.Lava.Field)
		scene = r.NewScene(canvas, cfg.Lava.Palette, label, lava.Seed(label, start))
		dur = anim.DurationOf(introSeconds(cmd, cfg.Lava.Seconds), lava.DefaultSeconds)
	default:
		return fmt.Errorf("unknown intro %q (candle, lava)", args[0])
	}

	probe := metrics.NewProbe(scene)
	host, clock, sched, _ := anim.Headless(start)
	host.Logger = logger
	done := anim.Start(host, probe, dur)
	anim.Drive(clock, sched, done, time.Second/time.Duration(cfg.FPS), nil)

	m := canvas.Metrics()
	fmt.Printf("%s intro, %d frames at %d fps on %dx%d@%g\n\n", args[0], len(probe.Samples), cfg.FPS, m.Width, m.Height, m.Ratio)

	values := probe.Values()
	names := make([]string, 0, len(values))
	for name := range values {
		names = append(names, name)
	}
	sort.Strings(names)
	t := newTable(table.Row{"Metric", "Value"})
	for _, name := range names {
		t.AppendRow(table.Row{name, fmt.Sprintf("%.4f", values[name])})
	}
	t.Render()

	fmt.Println()
	fmt.Println(metrics.Plot(probe.Series(metrics.PaintMillis), 70, 10, "paint ms per frame"))
	if args[0] == "lava" {
		fmt.Println()
		fmt.Println(metrics.Plot(probe.Series(metrics.CoveragePercent), 70, 10, "field coverage %"))
	}
	return nil
}
