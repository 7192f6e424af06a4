package source

import (
	"context"
	"fmt"
	"os"

	"github.com/rs/zerolog/log"

	"zipcode-jp/internal/apperror"
	"zipcode-jp/internal/models"
)

// Source loads KEN_ALL records from a remote archive or a local file.
// File takes precedence over URL.
type Source struct {
	fetcher *Fetcher
	url     string
	file    string
}

// New creates a Source. Either url or file must be set.
func New(fetcher *Fetcher, url, file string) *Source {
	return &Source{fetcher: fetcher, url: url, file: file}
}

// Load fetches, extracts, decodes and parses the registry.
func (s *Source) Load(ctx context.Context) ([]models.Record, error) {
	archive, err := s.archive(ctx)
	if err != nil {
		return nil, apperror.New(apperror.CodeFetchFailed, "failed to get zip code archive", err)
	}
	log.Debug().Int("bytes", len(archive)).Msg("archive loaded")

	raw, err := Unzip(archive)
	if err != nil {
		return nil, apperror.New(apperror.CodeDecompressFailed, "failed to decompress zip code archive", err)
	}

	text, err := DecodeShiftJIS(raw)
	if err != nil {
		return nil, apperror.New(apperror.CodeDecodeFailed, "failed to decode zip code csv", err)
	}

	records, err := ParseCSV(text)
	if err != nil {
		return nil, apperror.New(apperror.CodeParseFailed, "failed to parse zip code csv", err)
	}
	return records, nil
}

func (s *Source) archive(ctx context.Context) ([]byte, error) {
	if s.file != "" {
		data, err := os.ReadFile(s.file)
		if err != nil {
			return nil, fmt.Errorf("source: failed to read %s: %w", s.file, err)
		}
		return data, nil
	}
	if s.url == "" {
		return nil, fmt.Errorf("source: no archive url or file configured")
	}
	return s.fetcher.Fetch(ctx, s.url)
}
