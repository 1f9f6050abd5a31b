package site

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/klauspost/compress/gzip"
	"github.com/philly/arch-blog/postpage/internal/platform/eventbus"
	"github.com/philly/arch-blog/postpage/internal/platform/events"
	"github.com/philly/arch-blog/postpage/internal/platform/logger"
)

// Output file names.
const (
	IndexFile   = "index.html"
	PropsFile   = "props.json"
	GzipSuffix  = ".gz"
	stagePrefix = ".postpage-build-"
)

// Config holds the static build settings.
type Config struct {
	OutputDir   string
	Precompress bool
}

// Result summarizes a finished build.
type Result struct {
	OutputDir string
	Files     []string
	PostCount int
	Bytes     int64
	Duration  time.Duration
}

// Builder runs one static build: a pipeline cycle followed by writing its
// artifacts to the output directory.
type Builder struct {
	pipeline *Pipeline
	config   Config
	bus      *eventbus.Bus
	logger   logger.Logger
	now      func() time.Time
}

// NewBuilder creates a new static site builder
func NewBuilder(pipeline *Pipeline, config Config, bus *eventbus.Bus, logger logger.Logger) *Builder {
	return &Builder{
		pipeline: pipeline,
		config:   config,
		bus:      bus,
		logger:   logger,
		now:      time.Now,
	}
}

// Build runs the cycle and writes the output files. The output directory is
// staged next to its final path and swapped in once every file is written, so
// a failed build leaves the previous output untouched.
func (b *Builder) Build(ctx context.Context) (*Result, error) {
	start := b.now()

	artifacts, err := b.pipeline.Run(ctx)
	if err != nil {
		b.fail(ctx, err)
		return nil, err
	}

	files := map[string][]byte{
		IndexFile: artifacts.HTML,
		PropsFile: artifacts.PropsJSON,
	}
	if b.config.Precompress {
		gz, err := gzipBytes(artifacts.HTML)
		if err != nil {
			err = &StageError{Stage: StageWrite, Err: wrap(ErrWriteFailed, err)}
			b.fail(ctx, err)
			return nil, err
		}
		files[IndexFile+GzipSuffix] = gz
	}

	written, size, err := writeAll(b.config.OutputDir, files)
	if err != nil {
		err = &StageError{Stage: StageWrite, Err: wrap(ErrWriteFailed, err)}
		b.fail(ctx, err)
		return nil, err
	}

	result := &Result{
		OutputDir: b.config.OutputDir,
		Files:     written,
		PostCount: len(artifacts.Units),
		Bytes:     size,
		Duration:  b.now().Sub(start),
	}

	b.bus.Publish(ctx, eventbus.Event{
		Topic: events.PageBuiltTopic,
		Payload: events.PageBuiltEvent{
			OutputDir:  result.OutputDir,
			Files:      result.Files,
			PostCount:  result.PostCount,
			Bytes:      result.Bytes,
			Duration:   result.Duration,
			OccurredAt: b.now(),
		},
	})
	return result, nil
}

func (b *Builder) fail(ctx context.Context, err error) {
	stage := StageLoad
	var stageErr *StageError
	if errors.As(err, &stageErr) {
		stage = stageErr.Stage
	}
	b.bus.Publish(ctx, eventbus.Event{
		Topic: events.BuildFailedTopic,
		Payload: events.BuildFailedEvent{
			Stage:      stage,
			Err:        err,
			OccurredAt: b.now(),
		},
	})
}

func gzipBytes(data []byte) ([]byte, error) {
	var buf bytes.Buffer
	zw, err := gzip.NewWriterLevel(&buf, gzip.BestCompression)
	if err != nil {
		return nil, err
	}
	if _, err := zw.Write(data); err != nil {
		return nil, err
	}
	if err := zw.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// writeAll writes files into a sibling staging dir and swaps it in for dir.
// The output dir then holds exactly the files of this build.
func writeAll(dir string, files map[string][]byte) ([]string, int64, error) {
	if dir == "" {
		return nil, 0, fmt.Errorf("empty output dir")
	}
	dir = filepath.Clean(dir)
	if base := filepath.Base(dir); base == "." || base == ".." || base == string(filepath.Separator) {
		return nil, 0, fmt.Errorf("output dir %q must name a directory", dir)
	}
	parent := filepath.Dir(dir)
	if err := os.MkdirAll(parent, 0o755); err != nil {
		return nil, 0, err
	}
	stage, err := os.MkdirTemp(parent, stagePrefix)
	if err != nil {
		return nil, 0, err
	}
	defer os.RemoveAll(stage)
	if err := os.Chmod(stage, 0o755); err != nil {
		return nil, 0, err
	}

	names := make([]string, 0, len(files))
	for name := range files {
		names = append(names, name)
	}
	sort.Strings(names)

	var size int64
	for _, name := range names {
		data := files[name]
		if err := os.WriteFile(filepath.Join(stage, name), data, 0o644); err != nil {
			return nil, 0, fmt.Errorf("stage %s: %w", name, err)
		}
		size += int64(len(data))
	}

	if err := swapDir(stage, dir); err != nil {
		return nil, 0, err
	}
	return names, size, nil
}

// swapDir replaces dir with stage. The previous dir is moved aside first and
// restored if stage cannot take its place.
func swapDir(stage, dir string) error {
	retired := ""
	if _, err := os.Stat(dir); err == nil {
		retired = stage + ".old"
		if err := os.Rename(dir, retired); err != nil {
			return fmt.Errorf("retire previous output: %w", err)
		}
	} else if !errors.Is(err, fs.ErrNotExist) {
		return err
	}

	if err := os.Rename(stage, dir); err != nil {
		if retired != "" {
			if restoreErr := os.Rename(retired, dir); restoreErr != nil {
				return errors.Join(fmt.Errorf("move output: %w", err), fmt.Errorf("restore previous output: %w", restoreErr))
			}
		}
		return fmt.Errorf("move output: %w", err)
	}

	if retired != "" {
		_ = os.RemoveAll(retired)
	}
	return nil
}
