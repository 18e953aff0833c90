package numerology

import (
	"github.com/phrazzld/tikkun-core/internal/domain"
)

// Service defines the profile-derivation operations exposed to the rest of
// the pipeline.
type Service interface {
	// DeriveProfile computes the full numeric profile for a birth date and
	// optional full name. With a nil name the profile carries only the
	// date-derived numbers.
	DeriveProfile(date domain.BirthDate, name *domain.FullName) (domain.NumericProfile, error)
}

// defaultService is the standard implementation of the Service interface.
type defaultService struct {
	mapper *Mapper
}

// NewDefaultService creates a numerology service over the Pythagorean
// letter table.
func NewDefaultService() Service {
	return &defaultService{mapper: NewDefaultMapper()}
}

// NewServiceWithTable creates a numerology service over a custom letter
// table.
func NewServiceWithTable(table *LetterTable) Service {
	return &defaultService{mapper: NewMapper(table)}
}

// DeriveProfile implements the Service interface.
func (s *defaultService) DeriveProfile(
	date domain.BirthDate,
	name *domain.FullName,
) (domain.NumericProfile, error) {
	dates, err := AnalyzeDate(date)
	if err != nil {
		return domain.NumericProfile{}, err
	}

	profile := domain.NumericProfile{
		Date:        date,
		LifePath:    dates.LifePath,
		DayEnergy:   dates.DayEnergy,
		MonthEnergy: dates.MonthEnergy,
		YearEnergy:  dates.YearEnergy,
	}

	if name == nil {
		return profile, nil
	}

	names, err := s.mapper.MapName(*name)
	if err != nil {
		return domain.NumericProfile{}, err
	}

	profile.Expression = &names.Expression
	profile.Soul = &names.Soul
	profile.Personality = &names.Personality

	return profile, nil
}
