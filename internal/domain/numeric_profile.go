package domain

// NumericProfile is the full set of reduced numbers derived for one
// subject. The name-derived fields are nil when no full name was supplied;
// downstream code must treat absence as "omit", never as a default value.
type NumericProfile struct {
	Date BirthDate `json:"date"`

	LifePath    ReducedNumber `json:"life_path"`
	DayEnergy   ReducedNumber `json:"day_energy"`
	MonthEnergy ReducedNumber `json:"month_energy"`
	YearEnergy  ReducedNumber `json:"year_energy"`

	Expression  *ReducedNumber `json:"expression,omitempty"`
	Soul        *ReducedNumber `json:"soul,omitempty"`
	Personality *ReducedNumber `json:"personality,omitempty"`
}

// HasName reports whether the profile carries name-derived numbers.
func (p NumericProfile) HasName() bool {
	return p.Expression != nil && p.Soul != nil && p.Personality != nil
}

// Number returns the reduced number for a dimension and whether it is
// present in the profile. Name dimensions report false when the profile
// was built without a full name.
func (p NumericProfile) Number(d Dimension) (ReducedNumber, bool) {
	switch d {
	case DimensionLifePath:
		return p.LifePath, true
	case DimensionDay:
		return p.DayEnergy, true
	case DimensionMonth:
		return p.MonthEnergy, true
	case DimensionYear:
		return p.YearEnergy, true
	case DimensionExpression:
		if p.Expression != nil {
			return *p.Expression, true
		}
	case DimensionSoul:
		if p.Soul != nil {
			return *p.Soul, true
		}
	case DimensionPersonality:
		if p.Personality != nil {
			return *p.Personality, true
		}
	}
	return ReducedNumber{}, false
}
