package randomvin

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/ashmarin/vinbot/internal/domain"
)

// DefaultMaxAttempts bounds one Next call across format rejections,
// duplicates and per-VIN decode failures.
const DefaultMaxAttempts = 10

// ErrExhausted indicates the attempt budget ran out without producing a
// decodable, previously unseen VIN.
var ErrExhausted = errors.New("random VIN attempts exhausted")

// Source supplies candidate VIN strings.
type Source interface {
	Fetch(ctx context.Context) (string, error)
}

// Decoder turns a VIN into its decoded attributes.
type Decoder interface {
	Decode(ctx context.Context, vin domain.VIN) (domain.DecodedAttributes, error)
}

// Cache remembers VINs already shown to users.
type Cache interface {
	Contains(vin string) bool
	Add(vin string)
}

// Service runs the bounded random-VIN lookup loop against injected
// source, decoder and cache capabilities.
type Service struct {
	source      Source
	decoder     Decoder
	cache       Cache
	maxAttempts int
}

// NewService creates a random-VIN service. A non-positive maxAttempts
// falls back to DefaultMaxAttempts.
func NewService(source Source, decoder Decoder, cache Cache, maxAttempts int) *Service {
	if maxAttempts <= 0 {
		maxAttempts = DefaultMaxAttempts
	}
	return &Service{
		source:      source,
		decoder:     decoder,
		cache:       cache,
		maxAttempts: maxAttempts,
	}
}

// Next fetches, deduplicates and decodes one random VIN.
//
// A hard failure of the source call (status, timeout, network) aborts the
// whole operation; only format rejections, duplicates and per-VIN decode
// failures consume attempts and continue. Candidates that reach the decode
// step stay in the cache even when their decode fails, so they are not
// offered again.
func (s *Service) Next(ctx context.Context) (domain.DecodedAttributes, error) {
	for attempt := 1; attempt <= s.maxAttempts; attempt++ {
		candidate, err := s.source.Fetch(ctx)
		if err != nil {
			return domain.DecodedAttributes{}, fmt.Errorf("random VIN source: %w", err)
		}

		vin, err := domain.ParseVIN(candidate)
		if err != nil {
			slog.Debug("Random VIN candidate rejected", "candidate", candidate, "attempt", attempt)
			continue
		}

		if s.cache.Contains(vin.String()) {
			slog.Debug("Random VIN candidate already shown", "vin", vin, "attempt", attempt)
			continue
		}
		s.cache.Add(vin.String())

		attrs, err := s.decoder.Decode(ctx, vin)
		if err != nil {
			slog.Debug("Random VIN decode failed", "vin", vin, "attempt", attempt, "error", err)
			continue
		}

		return attrs, nil
	}

	return domain.DecodedAttributes{}, ErrExhausted
}
