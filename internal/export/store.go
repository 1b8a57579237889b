package export

import (
	"encoding/json"
	"errors"
	"fmt"
	"image"
	"image/color/palette"
	"image/draw"
	"image/gif"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/acousticcorner/channel/internal/lava"
)

const (
	metadataFile = "metadata.json"
	gifFile      = "intro.gif"
)

var ErrNoFrames = errors.New("export: recording has no frames")

type Store struct {
	baseDir string
}

func New(baseDir string) *Store {
	return &Store{baseDir: baseDir}
}

func (s *Store) Init() error {
	return os.MkdirAll(s.baseDir, 0755)
}

type RunMetadata struct {
	ID        string        `json:"id"`
	Intro     string        `json:"intro"`
	Label     string        `json:"label"`
	Timestamp time.Time     `json:"timestamp"`
	Seconds   float64       `json:"seconds"`
	FPS       int           `json:"fps"`
	Frames    int           `json:"frames"`
	Width     int           `json:"width"`
	Height    int           `json:"height"`
	Ratio     float64       `json:"ratio"`
	Palette   *lava.Palette `json:"palette,omitempty"`
	File      string        `json:"file"`
}

// Save writes rec as a looping GIF next to a metadata.json sidecar and
// returns the run id. A failed save leaves no run directory behind.
func (s *Store) Save(meta RunMetadata, rec *Recording) (id string, err error) {
	if rec == nil || len(rec.Frames) == 0 {
		return "", ErrNoFrames
	}
	meta.ID = fmt.Sprintf("%s_%d_%s", meta.Intro, time.Now().Unix(), uuid.NewString()[:8])
	meta.Timestamp = time.Now()
	meta.Frames = len(rec.Frames)
	meta.File = gifFile

	runDir := filepath.Join(s.baseDir, meta.ID)
	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", err
	}
	defer func() {
		if err != nil {
			os.RemoveAll(runDir)
		}
	}()

	if err := writeGIF(filepath.Join(runDir, gifFile), rec); err != nil {
		return "", fmt.Errorf("write gif: %w", err)
	}
	if err := writeMetadata(filepath.Join(runDir, metadataFile), meta); err != nil {
		return "", fmt.Errorf("write metadata: %w", err)
	}
	return meta.ID, nil
}

func writeMetadata(path string, meta RunMetadata) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(meta); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func writeGIF(path string, rec *Recording) error {
	delay := max(2, int(rec.Delay/(10*time.Millisecond)))
	anim := gif.GIF{LoopCount: 0}
	for _, frame := range rec.Frames {
		p := image.NewPaletted(frame.Bounds(), palette.Plan9)
		draw.FloydSteinberg.Draw(p, frame.Bounds(), frame, frame.Bounds().Min)
		anim.Image = append(anim.Image, p)
		anim.Delay = append(anim.Delay, delay)
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := gif.EncodeAll(f, &anim); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// List returns saved runs, newest first.
func (s *Store) List() ([]RunMetadata, error) {
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return []RunMetadata{}, nil
		}
		return nil, err
	}

	runs := make([]RunMetadata, 0)
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		meta, err := s.Load(entry.Name())
		if err != nil {
			continue
		}
		runs = append(runs, *meta)
	}
	sort.Slice(runs, func(i, j int) bool { return runs[i].Timestamp.After(runs[j].Timestamp) })
	return runs, nil
}

func (s *Store) Load(runID string) (*RunMetadata, error) {
	data, err := os.ReadFile(filepath.Join(s.baseDir, runID, metadataFile))
	if err != nil {
		return nil, err
	}
	var meta RunMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, err
	}
	return &meta, nil
}

// LoadGIF decodes a saved run's animation.
func (s *Store) LoadGIF(runID string) (*gif.GIF, error) {
	f, err := os.Open(filepath.Join(s.baseDir, runID, gifFile))
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return gif.DecodeAll(f)
}

// Path returns the directory of a run.
func (s *Store) Path(runID string) string {
	return filepath.Join(s.baseDir, runID)
}
