package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
)

var (
	configFile  string
	preset      string
	dataDir     string
	catalogPath string
	logLevel    string
	logFormat   string

	// Presentation: tui, gui or headless
	mode string

	// Intro flags
	seconds     float64
	blobColor   string
	liquidColor string
	glowColor   string
	exportRun   bool

	// Playback flags
	trackIndex  int
	playAll     bool
	slotCount   int
	shuffleSeed int64
)

// main registers the channel commands and runs the root command, exiting
// with status 1 on error.
func main() {
	rootCmd := &cobra.Command{
		Use:          "channel",
		Short:        "acoustic corner channel player and intro renderer",
		SilenceUsage: true,
		RunE:         runChannel,
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&configFile, "config", "", "config file (yaml)")
	pf.StringVar(&preset, "preset", "", "surface preset (tv, phone, small)")
	pf.StringVar(&dataDir, "data", "", "export directory")
	pf.StringVar(&catalogPath, "catalog", "", "episodes.json path")
	pf.StringVar(&logLevel, "log-level", "", "log level (debug, info, warn, error)")
	pf.StringVar(&logFormat, "log-format", "", "log format (console, json)")
	pf.StringVar(&mode, "mode", "tui", "presentation: tui, gui or headless")

	candleCmd := &cobra.Command{
		Use:   "candle [label]",
		Short: "play the candle intro",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runCandle,
	}
	candleCmd.Flags().Float64Var(&seconds, "seconds", 0, "duration (default from config)")
	candleCmd.Flags().BoolVar(&exportRun, "export", false, "render headless and save a GIF")

	lavaCmd := &cobra.Command{
		Use:   "lava [label]",
		Short: "play the lava lamp intro",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runLava,
	}
	lavaCmd.Flags().Float64Var(&seconds, "seconds", 0, "duration (default from config)")
	lavaCmd.Flags().StringVar(&blobColor, "blob", "", "blob color (hex)")
	lavaCmd.Flags().StringVar(&liquidColor, "liquid", "", "liquid color (hex)")
	lavaCmd.Flags().StringVar(&glowColor, "glow", "", "glow color (hex)")
	lavaCmd.Flags().BoolVar(&exportRun, "export", false, "render headless and save a GIF")

	episodesCmd := &cobra.Command{
		Use:   "episodes",
		Short: "list catalog episodes",
		RunE:  listEpisodes,
	}

	playCmd := &cobra.Command{
		Use:   "play [episode-id]",
		Short: "play an episode intro, then show what plays",
		Args:  cobra.ExactArgs(1),
		RunE:  runPlay,
	}
	playCmd.Flags().IntVar(&trackIndex, "track", 0, "track index")

	channelCmd := &cobra.Command{
		Use:   "shuffle",
		Short: "run the shuffled channel",
		RunE:  runChannel,
	}
	for _, c := range []*cobra.Command{rootCmd, channelCmd} {
		c.Flags().BoolVar(&playAll, "all", false, "play every track of every episode")
		c.Flags().IntVar(&slotCount, "count", 0, "stop after this many intros (0 = one pass)")
		c.Flags().Int64Var(&shuffleSeed, "seed", 0, "shuffle seed (0 = time based)")
	}

	profileCmd := &cobra.Command{
		Use:       "profile [candle|lava]",
		Short:     "profile frame cost and lava field coverage",
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{"candle", "lava"},
		RunE:      runProfile,
	}
	profileCmd.Flags().Float64Var(&seconds, "seconds", 0, "duration (default from config)")

	exportsCmd := &cobra.Command{
		Use:   "exports",
		Short: "list saved intro exports",
		RunE:  listExports,
	}

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list surface presets",
		RunE:  listPresets,
	}

	rootCmd.AddCommand(candleCmd, lavaCmd, episodesCmd, playCmd, channelCmd, profileCmd, exportsCmd, presetsCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func seedOrNow() uint64 {
	if shuffleSeed != 0 {
		return uint64(shuffleSeed)
	}
	return uint64(time.Now().UnixNano())
}
