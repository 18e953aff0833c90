package service

import (
	"context"
	"errors"
	"log/slog"

	"github.com/google/uuid"

	"github.com/phrazzld/tikkun-core/internal/archetype"
	"github.com/phrazzld/tikkun-core/internal/domain"
	"github.com/phrazzld/tikkun-core/internal/domain/numerology"
	"github.com/phrazzld/tikkun-core/internal/platform/logger"
	"github.com/phrazzld/tikkun-core/internal/redact"
	"github.com/phrazzld/tikkun-core/internal/report"
)

// ErrNilDependency is returned when a reading service is constructed
// without one of its collaborators.
var ErrNilDependency = errors.New("reading service requires non-nil dependencies")

// ReadingService generates complete readings.
type ReadingService interface {
	// Analyze derives the numeric profile for the birth date and optional
	// full name, resolves it against the knowledge base, and composes the
	// report. Errors from any stage propagate unmodified; the service
	// never retries or substitutes defaults.
	Analyze(ctx context.Context, birth domain.BirthDate, name *domain.FullName) (*domain.Report, error)
}

// readingService is the standard implementation of ReadingService.
type readingService struct {
	numbers  numerology.Service
	resolver *archetype.Resolver
	composer *report.Composer
	logger   *slog.Logger
}

// NewReadingService creates a ReadingService from explicit collaborators.
func NewReadingService(
	numbers numerology.Service,
	resolver *archetype.Resolver,
	composer *report.Composer,
	log *slog.Logger,
) (ReadingService, error) {
	if numbers == nil || resolver == nil || composer == nil || log == nil {
		return nil, ErrNilDependency
	}

	return &readingService{
		numbers:  numbers,
		resolver: resolver,
		composer: composer,
		logger:   log.With(slog.String("component", "reading_service")),
	}, nil
}

// NewDefaultReadingService wires the Pythagorean letter table, the
// embedded knowledge base, and the embedded report layout.
func NewDefaultReadingService(log *slog.Logger) (ReadingService, error) {
	catalog, err := archetype.NewDefaultCatalog()
	if err != nil {
		return nil, err
	}

	composer, err := report.NewComposer(catalog)
	if err != nil {
		return nil, err
	}

	return NewReadingService(
		numerology.NewDefaultService(),
		archetype.NewResolver(catalog),
		composer,
		log,
	)
}

// Analyze implements the ReadingService interface.
func (s *readingService) Analyze(
	ctx context.Context,
	birth domain.BirthDate,
	name *domain.FullName,
) (*domain.Report, error) {
	log := logger.FromContextOrDefault(ctx, s.logger).With(
		slog.String("reading_id", uuid.New().String()))

	profile, err := s.numbers.DeriveProfile(birth, name)
	if err != nil {
		// Error text can echo the date or name back; logs get the
		// redacted form only.
		log.Warn("failed to derive numeric profile",
			slog.String("error", redact.Error(err)))
		return nil, err
	}

	resolved, err := s.resolver.Resolve(profile)
	if err != nil {
		// A knowledge-base gap is a deployment defect, not bad input; log
		// it loudly before surfacing it.
		log.Error("failed to resolve archetype profile",
			slog.String("life_path", profile.LifePath.String()),
			slog.String("error", redact.Error(err)))
		return nil, err
	}

	composed, err := s.composer.Compose(resolved, name != nil)
	if err != nil {
		log.Error("failed to compose report",
			slog.String("error", redact.Error(err)))
		return nil, err
	}

	log.Debug("reading composed",
		slog.String("life_path", profile.LifePath.PathString()),
		slog.Bool("has_name", name != nil),
		slog.Int("sections", len(composed.Sections)))

	return &composed, nil
}
