package domain

// Dimension identifies one of the numeric dimensions a reading is built
// from. The life path is always the primary dimension; the rest act as
// modifiers.
type Dimension string

// Supported dimensions.
const (
	DimensionLifePath    Dimension = "life_path"
	DimensionDay         Dimension = "day"
	DimensionMonth       Dimension = "month"
	DimensionYear        Dimension = "year"
	DimensionExpression  Dimension = "expression"
	DimensionSoul        Dimension = "soul"
	DimensionPersonality Dimension = "personality"
)

// ModifierDimensions lists the non-primary dimensions in their fixed
// blending priority order. Modifier fragments always appear in this order
// within a theme.
var ModifierDimensions = []Dimension{
	DimensionDay,
	DimensionMonth,
	DimensionYear,
	DimensionExpression,
	DimensionSoul,
	DimensionPersonality,
}

// AllDimensions lists every dimension the knowledge base must cover.
var AllDimensions = []Dimension{
	DimensionLifePath,
	DimensionDay,
	DimensionMonth,
	DimensionYear,
	DimensionExpression,
	DimensionSoul,
	DimensionPersonality,
}

// IsValid reports whether d is one of the supported dimensions.
func (d Dimension) IsValid() bool {
	switch d {
	case DimensionLifePath, DimensionDay, DimensionMonth, DimensionYear,
		DimensionExpression, DimensionSoul, DimensionPersonality:
		return true
	default:
		return false
	}
}

// Label returns the human-readable name used in report text.
func (d Dimension) Label() string {
	switch d {
	case DimensionLifePath:
		return "life path"
	case DimensionDay:
		return "day of birth"
	case DimensionMonth:
		return "month of birth"
	case DimensionYear:
		return "year of birth"
	case DimensionExpression:
		return "expression number"
	case DimensionSoul:
		return "soul number"
	case DimensionPersonality:
		return "personality number"
	default:
		return string(d)
	}
}

// FromName reports whether the dimension is derived from the full name
// rather than the birth date.
func (d Dimension) FromName() bool {
	switch d {
	case DimensionExpression, DimensionSoul, DimensionPersonality:
		return true
	default:
		return false
	}
}
