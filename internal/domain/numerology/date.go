package numerology

import (
	"github.com/phrazzld/tikkun-core/internal/domain"
)

// DateNumbers holds the four numbers derived from a birth date alone.
type DateNumbers struct {
	LifePath    domain.ReducedNumber
	DayEnergy   domain.ReducedNumber
	MonthEnergy domain.ReducedNumber
	YearEnergy  domain.ReducedNumber
}

// AnalyzeDate derives the date-based numbers from a validated birth date.
//
// The life path comes from the digit sum of the entire date: the digits of
// the day plus the digits of the month plus the digits of the year, then
// one reduction. It is never computed by re-summing the three already
// reduced energies - reducing first loses the master-number signal the
// original digits carry (day 29 contributes 11 to the total, not 2).
func AnalyzeDate(date domain.BirthDate) (DateNumbers, error) {
	dayEnergy, err := Reduce(date.Day)
	if err != nil {
		return DateNumbers{}, err
	}

	monthEnergy, err := Reduce(date.Month)
	if err != nil {
		return DateNumbers{}, err
	}

	yearEnergy, err := Reduce(digitSum(date.Year))
	if err != nil {
		return DateNumbers{}, err
	}

	lifePath, err := Reduce(digitSum(date.Day) + digitSum(date.Month) + digitSum(date.Year))
	if err != nil {
		return DateNumbers{}, err
	}

	return DateNumbers{
		LifePath:    lifePath,
		DayEnergy:   dayEnergy,
		MonthEnergy: monthEnergy,
		YearEnergy:  yearEnergy,
	}, nil
}

// DateDigitSum returns the digit sum of the whole date before the final
// reduction. The report overview shows this intermediate total.
func DateDigitSum(date domain.BirthDate) int {
	return digitSum(date.Day) + digitSum(date.Month) + digitSum(date.Year)
}

// YearDigitSum returns the digit sum of the year, shown separately in the
// report overview.
func YearDigitSum(date domain.BirthDate) int {
	return digitSum(date.Year)
}
