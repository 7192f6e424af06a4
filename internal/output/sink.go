package output

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"zipcode-jp/internal/apperror"
	"zipcode-jp/internal/pipeline"
)

// FileSink writes build results as static files under a root directory.
type FileSink struct {
	root        string
	callback    string
	concurrency int
}

// NewFileSink creates a FileSink. concurrency bounds the number of prefixes written at once.
func NewFileSink(root, callback string, concurrency int) *FileSink {
	if concurrency < 1 {
		concurrency = 1
	}
	return &FileSink{root: root, callback: callback, concurrency: concurrency}
}

func (s *FileSink) hint() string {
	return fmt.Sprintf(`Please reset data files with "git checkout %s"`, s.root)
}

// Publish clears previous output and writes the six artifacts of every prefix.
// A prefix is either written completely or not at all.
func (s *FileSink) Publish(ctx context.Context, result *pipeline.Result) error {
	for _, dir := range Dirs {
		if err := os.RemoveAll(filepath.Join(s.root, dir)); err != nil {
			return apperror.New(apperror.CodeDirectoryRemovingFailed, "failed to remove output directory", err).WithHint(s.hint())
		}
	}
	for _, dir := range Dirs {
		if err := os.MkdirAll(filepath.Join(s.root, dir), 0o755); err != nil {
			return apperror.New(apperror.CodeDirectoryMakingFailed, "failed to make output directory", err).WithHint(s.hint())
		}
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(s.concurrency)
	for _, prefix := range result.Buckets.Prefixes() {
		prefix := prefix
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			artifacts, err := Render(prefix, s.callback, result.Buckets[prefix], result.Minimized(prefix))
			if err != nil {
				return err
			}
			if err := s.writePrefix(artifacts); err != nil {
				return fmt.Errorf("output: prefix %s: %w", prefix, err)
			}
			log.Debug().Str("prefix", prefix).Int("records", len(result.Buckets[prefix])).Msg("prefix written")
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return apperror.New(apperror.CodeFileSavingFailed, "failed to save output files", err).WithHint(s.hint())
	}
	return nil
}

func (s *FileSink) writePrefix(artifacts []Artifact) error {
	written := make([]string, 0, len(artifacts))
	for _, a := range artifacts {
		path := filepath.Join(s.root, a.Path)
		if err := writeFileAtomic(path, a.Data); err != nil {
			for _, p := range written {
				os.Remove(p)
			}
			return err
		}
		written = append(written, path)
	}
	return nil
}

func writeFileAtomic(path string, data []byte) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	if err := os.Chmod(tmp.Name(), 0o644); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), path)
}
