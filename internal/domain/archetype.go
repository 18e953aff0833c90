package domain

// Theme identifies one narrative aspect of an archetype descriptor.
type Theme string

// Supported themes.
const (
	ThemePurpose          Theme = "purpose"
	ThemeChallenges       Theme = "challenges"
	ThemeEmotionalPattern Theme = "emotional_pattern"
	ThemePowerStyle       Theme = "power_style"
	ThemeRelationalStyle  Theme = "relational_style"
	ThemeServiceType      Theme = "service_type"
)

// ReportThemes lists the themes in the fixed order their sections appear
// in a composed report.
var ReportThemes = []Theme{
	ThemePurpose,
	ThemeChallenges,
	ThemeEmotionalPattern,
	ThemePowerStyle,
	ThemeRelationalStyle,
	ThemeServiceType,
}

// SectionTitle returns the report section heading for the theme.
func (t Theme) SectionTitle() string {
	switch t {
	case ThemePurpose:
		return "Life Purpose"
	case ThemeChallenges:
		return "Recurring Challenges"
	case ThemeEmotionalPattern:
		return "Emotional Patterns"
	case ThemePowerStyle:
		return "Power Style"
	case ThemeRelationalStyle:
		return "Relational Style"
	case ThemeServiceType:
		return "Service Type"
	default:
		return string(t)
	}
}

// ArchetypeDescriptor is the knowledge-base record for one
// (dimension, reduced number) pair: a title plus one text fragment per
// theme and an illustrative example.
type ArchetypeDescriptor struct {
	Title            string `json:"title"             yaml:"title"`
	Purpose          string `json:"purpose"           yaml:"purpose"`
	Challenges       string `json:"challenges"        yaml:"challenges"`
	EmotionalPattern string `json:"emotional_pattern" yaml:"emotional_pattern"`
	PowerStyle       string `json:"power_style"       yaml:"power_style"`
	RelationalStyle  string `json:"relational_style"  yaml:"relational_style"`
	ServiceType      string `json:"service_type"      yaml:"service_type"`
	Example          string `json:"example"           yaml:"example"`
}

// ThemeText returns the descriptor's fragment for a theme.
func (d ArchetypeDescriptor) ThemeText(t Theme) string {
	switch t {
	case ThemePurpose:
		return d.Purpose
	case ThemeChallenges:
		return d.Challenges
	case ThemeEmotionalPattern:
		return d.EmotionalPattern
	case ThemePowerStyle:
		return d.PowerStyle
	case ThemeRelationalStyle:
		return d.RelationalStyle
	case ThemeServiceType:
		return d.ServiceType
	default:
		return ""
	}
}

// ArchetypeModifier is one non-primary dimension's contribution to a
// blended profile. EchoesPrimary marks modifiers that resolved to the same
// number as the life path; the composer words those fragments differently
// from diverging ones.
type ArchetypeModifier struct {
	Dimension     Dimension           `json:"dimension"`
	Number        ReducedNumber       `json:"number"`
	Descriptor    ArchetypeDescriptor `json:"descriptor"`
	EchoesPrimary bool                `json:"echoes_primary"`
}

// ArchetypeProfile is the resolved, blended set of descriptors for one
// subject: the primary life-path descriptor plus ordered modifiers.
// Modifiers follow the fixed priority day, month, year, expression, soul,
// personality; name-derived entries are simply absent when the profile
// was built without a full name.
type ArchetypeProfile struct {
	Numbers   NumericProfile      `json:"numbers"`
	Primary   ArchetypeDescriptor `json:"primary"`
	Modifiers []ArchetypeModifier `json:"modifiers"`
}
