package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/acousticcorner/channel/internal/anim"
	"github.com/acousticcorner/channel/internal/candle"
	"github.com/acousticcorner/channel/internal/catalog"
	"github.com/acousticcorner/channel/internal/channel"
	"github.com/acousticcorner/channel/internal/config"
	"github.com/acousticcorner/channel/internal/export"
	"github.com/acousticcorner/channel/internal/gui"
	"github.com/acousticcorner/channel/internal/lava"
	"github.com/acousticcorner/channel/internal/logging"
	"github.com/acousticcorner/channel/internal/preview"
	"github.com/acousticcorner/channel/internal/surface"
)

// resolveConfig starts from the defaults, replaces them with the config file
// when one is given, and then applies the named surface preset on top.
func resolveConfig(file, presetName string) (*config.Config, error) {
	cfg := config.DefaultConfig()
	if file != "" {
		fileCfg, err := config.Load(file)
		if err != nil {
			return nil, fmt.Errorf("load config: %w", err)
		}
		cfg = fileCfg
	}
	if presetName != "" && !cfg.Apply(presetName) {
		return nil, fmt.Errorf("unknown preset %q (have %s)", presetName, strings.Join(config.ListPresets(), ", "))
	}
	return cfg, nil
}

// loadSettings resolves the config the same way for every command: defaults,
// then the config file, then the preset, then explicitly set flags.
func loadSettings(cmd *cobra.Command) (*config.Config, *slog.Logger, error) {
	cfg, err := resolveConfig(configFile, preset)
	if err != nil {
		return nil, nil, err
	}

	pf := cmd.Flags()
	if pf.Changed("data") {
		cfg.DataDir = dataDir
	}
	if pf.Changed("catalog") {
		cfg.Catalog = catalogPath
	}
	if pf.Changed("log-level") {
		cfg.Log.Level = logLevel
	}
	if pf.Changed("log-format") {
		cfg.Log.Format = logFormat
	}
	if err := cfg.Validate(); err != nil {
		return nil, nil, err
	}

	out := os.Stderr
	if mode == "tui" && !pf.Changed("log-level") && cfg.Log.Format == "" {
		// The terminal preview owns stdout; keep logs quiet unless asked for.
		cfg.Log.Level = "error"
	}
	logger, err := logging.New(logging.Options{Level: cfg.Log.Level, Format: cfg.Log.Format, Output: out})
	if err != nil {
		return nil, nil, err
	}
	return cfg, logger, nil
}

// introSeconds picks the --seconds flag when set, else the configured default.
func introSeconds(cmd *cobra.Command, configured float64) float64 {
	if cmd.Flags().Changed("seconds") {
		return seconds
	}
	return configured
}

// introJob is one intro ready to present.
type introJob struct {
	intro   string
	label   string
	title   string
	status  string
	seconds float64
	palette *lava.Palette
	start   func(host anim.Host, c *surface.Canvas) *anim.Completion
}

func candleJob(label string, secs float64) introJob {
	return introJob{
		intro:   catalog.IntroCandle,
		label:   label,
		seconds: secs,
		start: func(host anim.Host, c *surface.Canvas) *anim.Completion {
			return candle.Run(host, c, label, secs)
		},
	}
}

func lavaJob(r *lava.Renderer, palette lava.Palette, label string, secs float64) introJob {
	return introJob{
		intro:   catalog.IntroLava,
		label:   label,
		seconds: secs,
		palette: &palette,
		start: func(host anim.Host, c *surface.Canvas) *anim.Completion {
			return r.Run(host, c, palette, label, secs)
		},
	}
}

func episodeJob(cfg *config.Config, ep catalog.Episode) introJob {
	if ep.IntroKind() == catalog.IntroLava {
		return lavaJob(lava.NewRenderer(cfg.Lava.Field), ep.LavaPalette(), ep.Label(), cfg.Lava.Seconds)
	}
	return candleJob(ep.Label(), cfg.Candle.Seconds)
}

// present shows job in the selected presentation mode. autoQuit returns as
// soon as the intro finishes.
func present(cfg *config.Config, logger *slog.Logger, job introJob, autoQuit bool) error {
	if job.title == "" {
		job.title = job.label
	}
	switch mode {
	case "tui":
		return preview.Run(job.start, preview.Options{
			Title:    job.title,
			Status:   job.status,
			FPS:      cfg.FPS,
			AutoQuit: autoQuit,
			Store:    exportStore(cfg),
			Intro:    job.intro,
			Logger:   logger,
		})
	case "gui":
		return gui.NewApp(gui.Options{
			Title:     job.title,
			Status:    job.status,
			Width:     int(cfg.Surface.Width),
			Height:    int(cfg.Surface.Height),
			FPS:       cfg.FPS,
			AutoClose: autoQuit,
			Logger:    logger,
		}).Run(job.start)
	case "headless":
		return playHeadless(cfg, logger, job)
	default:
		return fmt.Errorf("unknown mode %q (tui, gui, headless)", mode)
	}
}

// playHeadless runs the intro in real time on an offscreen canvas.
func playHeadless(cfg *config.Config, logger *slog.Logger, job introJob) error {
	sched := anim.NewTickerScheduler(anim.SystemClock{}, cfg.FPS)
	defer sched.Stop()
	host := anim.Host{Clock: anim.SystemClock{}, Scheduler: sched, Logger: logger}
	canvas := surface.New(surface.NewFixed(cfg.Surface.Width, cfg.Surface.Height, cfg.Surface.Ratio))

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	began := time.Now()
	if err := job.start(host, canvas).Wait(ctx); err != nil {
		return err
	}
	fmt.Printf("%s intro %q finished in %.2fs\n", job.intro, job.label, time.Since(began).Seconds())
	if job.status != "" {
		fmt.Println(job.status)
	}
	return nil
}

// exportJob renders job against simulated time and saves it as a GIF.
func exportJob(cfg *config.Config, logger *slog.Logger, job introJob) error {
	store := exportStore(cfg)
	if err := store.Init(); err != nil {
		return fmt.Errorf("init export dir: %w", err)
	}
	target := surface.NewFixed(cfg.Surface.Width, cfg.Surface.Height, cfg.Surface.Ratio)
	canvas := surface.New(target)

	fps := min(cfg.FPS, 30)
	rec := export.Capture(time.Now(), fps, canvas, 480, func(host anim.Host) *anim.Completion {
		host.Logger = logger
		return job.start(host, canvas)
	})

	m := canvas.Metrics()
	id, err := store.Save(export.RunMetadata{
		Intro:   job.intro,
		Label:   job.label,
		Seconds: rec.Elapsed.Seconds(),
		FPS:     fps,
		Width:   m.Width,
		Height:  m.Height,
		Ratio:   m.Ratio,
		Palette: job.palette,
	}, rec)
	if err != nil {
		return err
	}
	fmt.Printf("Saved %d frames to %s\n", len(rec.Frames), store.Path(id))
	return nil
}

func runCandle(cmd *cobra.Command, args []string) error {
	cfg, logger, err := loadSettings(cmd)
	if err != nil {
		return err
	}
	label := "Acoustic Corner"
	if len(args) > 0 {
		label = args[0]
	}
	job := candleJob(label, introSeconds(cmd, cfg.Candle.Seconds))
	if exportRun {
		return exportJob(cfg, logger, job)
	}
	return present(cfg, logger, job, false)
}

func runLava(cmd *cobra.Command, args []string) error {
	cfg, logger, err := loadSettings(cmd)
	if err != nil {
		return err
	}
	label := "Acoustic Corner"
	if len(args) > 0 {
		label = args[0]
	}
	palette := cfg.Lava.Palette
	if cmd.Flags().Changed("blob") {
		palette.Blob = blobColor
	}
	if cmd.Flags().Changed("liquid") {
		palette.Liquid = liquidColor
	}
	if cmd.Flags().Changed("glow") {
		palette.Glow = glowColor
	}
	job := lavaJob(lava.NewRenderer(cfg.Lava.Field), palette.WithDefaults(), label, introSeconds(cmd, cfg.Lava.Seconds))
	if exportRun {
		return exportJob(cfg, logger, job)
	}
	return present(cfg, logger, job, false)
}

func loadCatalog(cfg *config.Config) (*catalog.Catalog, error) {
	cat, err := catalog.Load(cfg.Catalog)
	if err != nil {
		return nil, fmt.Errorf("load catalog: %w", err)
	}
	return cat, nil
}

func runPlay(cmd *cobra.Command, args []string) error {
	cfg, logger, err := loadSettings(cmd)
	if err != nil {
		return err
	}
	cat, err := loadCatalog(cfg)
	if err != nil {
		return err
	}
	ep, err := cat.Find(args[0])
	if err != nil {
		return err
	}
	if len(ep.Tracks) == 0 {
		return fmt.Errorf("episode %s has no playable tracks", ep.ID)
	}
	if trackIndex < 0 || trackIndex >= len(ep.Tracks) {
		return fmt.Errorf("track %d out of range (episode has %d)", trackIndex, len(ep.Tracks))
	}

	slot := channel.Slot{Episode: ep, Track: trackIndex}
	if mode == "headless" {
		return playSlots(cfg, logger, []channel.Slot{slot}, false)
	}
	np := channel.Describe(slot, false)
	job := episodeJob(cfg, ep)
	job.title = ep.Title
	job.status = np.Title + " • " + np.URL
	return present(cfg, logger, job, false)
}

// playSlots runs each slot through the channel controller in real time and
// prints what plays after every intro.
func playSlots(cfg *config.Config, logger *slog.Logger, slots []channel.Slot, fromPlayAll bool) error {
	sched := anim.NewTickerScheduler(anim.SystemClock{}, cfg.FPS)
	defer sched.Stop()
	host := anim.Host{Clock: anim.SystemClock{}, Scheduler: sched, Logger: logger}
	canvas := surface.New(surface.NewFixed(cfg.Surface.Width, cfg.Surface.Height, cfg.Surface.Ratio))

	ctrl := channel.NewController(host, canvas, cfg.Lava.Field, logger)
	ctrl.CandleSeconds = cfg.Candle.Seconds
	ctrl.LavaSeconds = cfg.Lava.Seconds

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	for _, slot := range slots {
		np, err := ctrl.Play(ctx, slot, fromPlayAll)
		if errors.Is(err, context.Canceled) {
			return nil
		}
		if err != nil {
			return err
		}
		fmt.Println(np.Title)
		if np.Status != "" {
			fmt.Println("  " + np.Status)
		}
		fmt.Println("  " + np.URL)
	}
	return nil
}

// channelSlots lists the slots for one pass of the channel: every track in
// catalog order with --all, otherwise the first track of each shuffled
// episode.
func channelSlots(cat *catalog.Catalog) ([]channel.Slot, bool) {
	var slots []channel.Slot
	if playAll {
		seq := channel.PlayAll(cat.Episodes)
		n := seq.Len()
		if slotCount > 0 {
			n = slotCount
		}
		for i := 0; i < n && seq.Len() > 0; i++ {
			s, _ := seq.Current()
			slots = append(slots, s)
			seq.Next()
		}
		return slots, true
	}

	for _, ep := range channel.Shuffle(cat.Episodes, seedOrNow()) {
		if len(ep.Tracks) == 0 {
			continue
		}
		slots = append(slots, channel.Slot{Episode: ep})
	}
	if slotCount > 0 && slotCount < len(slots) {
		slots = slots[:slotCount]
	}
	return slots, false
}

func runChannel(cmd *cobra.Command, args []string) error {
	cfg, logger, err := loadSettings(cmd)
	if err != nil {
		return err
	}
	cat, err := loadCatalog(cfg)
	if err != nil {
		return err
	}
	slots, fromPlayAll := channelSlots(cat)
	if len(slots) == 0 {
		return catalog.ErrNoEpisodes
	}
	if mode == "headless" {
		return playSlots(cfg, logger, slots, fromPlayAll)
	}

	for _, slot := range slots {
		np := channel.Describe(slot, fromPlayAll)
		job := episodeJob(cfg, slot.Episode)
		job.title = slot.Episode.Title
		job.status = np.Title
		if np.Status != "" {
			job.status += " • " + np.Status
		}
		if err := present(cfg, logger, job, true); err != nil {
			return err
		}
		fmt.Println(np.Title + "  " + np.URL)
	}
	return nil
}

func exportStore(cfg *config.Config) *export.Store {
	return export.New(cfg.DataDir)
}
