package export

import (
	"errors"
	"image"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/acousticcorner/channel/internal/anim"
	"github.com/acousticcorner/channel/internal/candle"
	"github.com/acousticcorner/channel/internal/lava"
	"github.com/acousticcorner/channel/internal/surface"
)

func solidFrames(n, w, h int) *Recording {
	rec := &Recording{Delay: time.Second / 10}
	for i := 0; i < n; i++ {
		img := image.NewRGBA(image.Rect(0, 0, w, h))
		for j := range img.Pix {
			img.Pix[j] = uint8(i * 40)
		}
		rec.Frames = append(rec.Frames, img)
	}
	return rec
}

func TestStoreSaveAndLoad(t *testing.T) {
	dir := t.TempDir()
	store := New(filepath.Join(dir, "exports"))
	if err := store.Init(); err != nil {
		t.Fatalf("Init: %v", err)
	}

	pal := lava.Palette{}.WithDefaults()
	id, err := store.Save(RunMetadata{Intro: "lava", Label: "Low — 1994", Seconds: 3, FPS: 10, Width: 32, Height: 24, Ratio: 1, Palette: &pal}, solidFrames(3, 32, 24))
	if err != nil {
		t.Fatalf("Save: %v", err)
	}

	meta, err := store.Load(id)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if meta.ID != id || meta.Frames != 3 || meta.Label != "Low — 1994" || meta.Palette == nil {
		t.Errorf("metadata = %+v", meta)
	}

	g, err := store.LoadGIF(id)
	if err != nil {
		t.Fatalf("LoadGIF: %v", err)
	}
	if len(g.Image) != 3 || g.Delay[0] != 10 {
		t.Errorf("gif frames=%d delay=%v", len(g.Image), g.Delay)
	}
	if b := g.Image[0].Bounds(); b.Dx() != 32 || b.Dy() != 24 {
		t.Errorf("gif size %v", b)
	}

	runs, err := store.List()
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(runs) != 1 || runs[0].ID != id {
		t.Errorf("List = %+v", runs)
	}
}

func TestStoreRejectsEmptyRecording(t *testing.T) {
	store := New(t.TempDir())
	if _, err := store.Save(RunMetadata{Intro: "candle"}, &Recording{}); !errors.Is(err, ErrNoFrames) {
		t.Errorf("err = %v", err)
	}
}

func TestStoreSaveFailureLeavesNoRun(t *testing.T) {
	dir := t.TempDir()
	store := New(dir)
	// GIF frames are limited to 65535 pixels per side.
	rec := &Recording{Delay: time.Second / 10, Frames: []*image.RGBA{image.NewRGBA(image.Rect(0, 0, 1<<16, 1))}}
	if _, err := store.Save(RunMetadata{Intro: "lava"}, rec); err == nil {
		t.Fatal("expected an error for an oversized frame")
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 0 {
		t.Errorf("failed save left %d entries in %s", len(entries), dir)
	}
}

func TestListMissingDir(t *testing.T) {
	runs, err := New(filepath.Join(t.TempDir(), "none")).List()
	if err != nil || len(runs) != 0 {
		t.Errorf("List = %v, %v", runs, err)
	}
}

func TestListSkipsBrokenRuns(t *testing.T) {
	dir := t.TempDir()
	if err := os.MkdirAll(filepath.Join(dir, "broken"), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "broken", metadataFile), []byte("{"), 0644); err != nil {
		t.Fatal(err)
	}
	runs, err := New(dir).List()
	if err != nil || len(runs) != 0 {
		t.Errorf("List = %v, %v", runs, err)
	}
}

func TestCaptureCandle(t *testing.T) {
	c := surface.New(surface.NewFixed(320, 360, 1))
	rec := Capture(time.Unix(0, 0), 10, c, 160, func(h anim.Host) *anim.Completion {
		return candle.Run(h, c, "Nirvana — 1993", 1)
	})
	if len(rec.Frames) != 10 {
		t.Errorf("frames = %d, want 10", len(rec.Frames))
	}
	if rec.Elapsed != time.Second {
		t.Errorf("elapsed = %v", rec.Elapsed)
	}
	if b := rec.Frames[0].Bounds(); b.Dx() != 160 || b.Dy() != 180 {
		t.Errorf("frame size %v", b)
	}
	if rec.Frames[0] == rec.Frames[1] {
		t.Error("frames share a buffer")
	}
	if rec.Frames[0].RGBAAt(0, 0).A != 255 {
		t.Error("frame not opaque")
	}
}
