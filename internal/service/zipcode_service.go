package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"zipcode-jp/internal/models"
	"zipcode-jp/internal/pipeline"

	"golang.org/x/text/width"
)

var (
	ErrInvalidZipCode = errors.New("service: zip code must be 7 digits")
	ErrInvalidPrefix  = errors.New("service: prefix must be 3 digits")
)

// ZipCodeService contains the lookup logic over stored zip codes
type ZipCodeService struct {
	repo ZipCodeRepository
}

// ZipCodeRepository interface for dependency injection
type ZipCodeRepository interface {
	FindByZipCode(ctx context.Context, zipCode string) ([]models.ZipCode, error)
	FindByPrefix(ctx context.Context, prefix string) ([]models.ZipCode, error)
}

// NewZipCodeService creates a new zip code service
func NewZipCodeService(repo ZipCodeRepository) *ZipCodeService {
	return &ZipCodeService{repo: repo}
}

// CanonicalZipCode folds full-width digits and strips the 〒 mark and the hyphen,
// so that "〒１００-０００５" becomes "1000005".
func CanonicalZipCode(input string) string {
	s := width.Fold.String(strings.TrimSpace(input))
	s = strings.TrimPrefix(s, "〒")
	return strings.ReplaceAll(s, "-", "")
}

func isDigits(s string, n int) bool {
	if len(s) != n {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// Lookup returns all records published under a zip code
func (s *ZipCodeService) Lookup(ctx context.Context, zipCode string) ([]models.ZipCode, error) {
	code := CanonicalZipCode(zipCode)
	if !isDigits(code, 7) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidZipCode, zipCode)
	}

	zipCodes, err := s.repo.FindByZipCode(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("service: failed to find zip code: %w", err)
	}

	return zipCodes, nil
}

// LookupPrefix returns all records whose zip code starts with prefix
func (s *ZipCodeService) LookupPrefix(ctx context.Context, prefix string) ([]models.ZipCode, error) {
	p := CanonicalZipCode(prefix)
	if !isDigits(p, models.PrefixLength) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidPrefix, prefix)
	}

	zipCodes, err := s.repo.FindByPrefix(ctx, p)
	if err != nil {
		return nil, fmt.Errorf("service: failed to find prefix: %w", err)
	}

	return zipCodes, nil
}

// LookupPrefixMinimized is LookupPrefix returning the minimized projection
func (s *ZipCodeService) LookupPrefixMinimized(ctx context.Context, prefix string) ([]models.Minimized, error) {
	zipCodes, err := s.LookupPrefix(ctx, prefix)
	if err != nil {
		return nil, err
	}

	minimized := make([]models.Minimized, len(zipCodes))
	for i, z := range zipCodes {
		minimized[i] = pipeline.Minimize(z.Record())
	}
	return minimized, nil
}
