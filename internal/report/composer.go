package report

import (
	_ "embed"
	"fmt"
	"strings"
	"text/template"

	"github.com/phrazzld/tikkun-core/internal/domain"
	"github.com/phrazzld/tikkun-core/internal/domain/numerology"
)

//go:embed templates/overview.tmpl
var defaultOverviewTemplate string

// reportTitle heads every reading.
const reportTitle = "Archetype and Tikkun Reading"

// overviewSection names the arithmetic section that precedes the themes.
const overviewSection = "Overview"

// nameSection names the closing section present only in full readings.
const nameSection = "Name Contribution"

// Content supplies the narrative fixtures the composer injects around the
// descriptor fragments. *archetype.Catalog satisfies it.
type Content interface {
	// Lens returns the framing phrase for a modifier dimension.
	Lens(dim domain.Dimension) string

	// Energy returns the basic-energy blurb for a single digit 1-9.
	Energy(base int) (string, error)
}

// Composer renders archetype profiles into reports. A Composer is
// immutable and safe for concurrent use.
type Composer struct {
	content      Content
	overviewTmpl *template.Template
}

// NewComposer creates a Composer using the embedded overview template.
func NewComposer(content Content) (*Composer, error) {
	return NewComposerWithTemplate(content, defaultOverviewTemplate)
}

// NewComposerWithTemplate creates a Composer with a caller-supplied
// overview template, for deployments that restyle the arithmetic section.
func NewComposerWithTemplate(content Content, overview string) (*Composer, error) {
	tmpl, err := template.New("overview").Parse(overview)
	if err != nil {
		return nil, fmt.Errorf("failed to parse overview template: %w", err)
	}
	return &Composer{content: content, overviewTmpl: tmpl}, nil
}

// overviewData feeds the overview template.
type overviewData struct {
	Date         domain.BirthDate
	YearDigitSum int
	DateDigitSum int
	LifePath     string
	Energies     []overviewEnergy
}

type overviewEnergy struct {
	Label  string
	Raw    int
	Number string
	Blurb  string
}

// Compose produces the report for a resolved profile. Sections appear in
// fixed order: Overview, then one section per theme (Life Purpose,
// Recurring Challenges, Emotional Patterns, Power Style, Relational
// Style, Service Type), then the name contribution when a name was
// supplied.
//
// Each theme section carries the primary life-path fragment first, the
// ordered modifier fragments after it, and one illustrative example drawn
// from the primary descriptor. When hasName is false the header says the
// reading is date-only; the name fragments are structurally absent from
// the profile, nothing is filtered here.
func (c *Composer) Compose(profile domain.ArchetypeProfile, hasName bool) (domain.Report, error) {
	overview, err := c.composeOverview(profile.Numbers)
	if err != nil {
		return domain.Report{}, err
	}

	sections := make([]domain.ReportSection, 0, len(domain.ReportThemes)+2)
	sections = append(sections, domain.ReportSection{Name: overviewSection, Body: overview})

	for _, theme := range domain.ReportThemes {
		sections = append(sections, domain.ReportSection{
			Name: theme.SectionTitle(),
			Body: c.composeTheme(profile, theme),
		})
	}

	if hasName {
		sections = append(sections, domain.ReportSection{
			Name: nameSection,
			Body: composeNameContribution(profile),
		})
	}

	return domain.Report{
		Title:    reportTitle,
		Header:   composeHeader(profile.Numbers, hasName),
		Sections: sections,
	}, nil
}

func composeHeader(numbers domain.NumericProfile, hasName bool) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Born %s, walking life path %s.",
		numbers.Date, numbers.LifePath.PathString())
	b.WriteString(" Read this as a symbolic map, not a rigid sentence.")

	if !hasName {
		b.WriteString(" This reading is date-only: no full name was supplied, so the expression, soul, and personality dimensions are absent.")
	}

	return b.String()
}

func (c *Composer) composeOverview(numbers domain.NumericProfile) (string, error) {
	energies := make([]overviewEnergy, 0, 3)
	for _, entry := range []struct {
		label  string
		raw    int
		number domain.ReducedNumber
	}{
		{"Day", numbers.Date.Day, numbers.DayEnergy},
		{"Month", numbers.Date.Month, numbers.MonthEnergy},
		{"Year", numbers.Date.Year, numbers.YearEnergy},
	} {
		blurb, err := c.content.Energy(entry.number.Base())
		if err != nil {
			return "", err
		}
		energies = append(energies, overviewEnergy{
			Label:  entry.label,
			Raw:    entry.raw,
			Number: entry.number.PathString(),
			Blurb:  blurb,
		})
	}

	data := overviewData{
		Date:         numbers.Date,
		YearDigitSum: numerology.YearDigitSum(numbers.Date),
		DateDigitSum: numerology.DateDigitSum(numbers.Date),
		LifePath:     numbers.LifePath.PathString(),
		Energies:     energies,
	}

	var b strings.Builder
	if err := c.overviewTmpl.Execute(&b, data); err != nil {
		return "", fmt.Errorf("failed to execute overview template: %w", err)
	}
	return strings.TrimRight(b.String(), "\n"), nil
}

func (c *Composer) composeTheme(profile domain.ArchetypeProfile, theme domain.Theme) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Life path %s, %s: %s",
		profile.Numbers.LifePath.PathString(),
		profile.Primary.Title,
		profile.Primary.ThemeText(theme))

	// Modifier fragments stay distinct: one per dimension, never merged,
	// never replacing the primary text.
	for _, modifier := range profile.Modifiers {
		b.WriteString("\n")
		fmt.Fprintf(&b, "Also shaped by the %s (%s), %s, %s: %s",
			modifier.Dimension.Label(),
			modifier.Number.PathString(),
			c.content.Lens(modifier.Dimension),
			blendNote(modifier, profile.Numbers.LifePath),
			modifier.Descriptor.ThemeText(theme))
	}

	b.WriteString("\n")
	fmt.Fprintf(&b, "For reflection: %s", profile.Primary.Example)

	return b.String()
}

// blendNote words the relationship between a modifier and the primary
// number, so divergence is explicit rather than silently conflated.
func blendNote(modifier domain.ArchetypeModifier, lifePath domain.ReducedNumber) string {
	if modifier.EchoesPrimary {
		return "which echoes the life path"
	}
	return fmt.Sprintf("which nuances the life path %s", lifePath.PathString())
}

func composeNameContribution(profile domain.ArchetypeProfile) string {
	var b strings.Builder

	b.WriteString("The date shows the soul's underlying plan; the name shows the style in which that plan is lived day to day.")

	for _, modifier := range profile.Modifiers {
		if !modifier.Dimension.FromName() {
			continue
		}
		b.WriteString("\n")
		fmt.Fprintf(&b, "Your %s vibrates in %s, %s.",
			modifier.Dimension.Label(),
			modifier.Number.PathString(),
			modifier.Descriptor.Title)
	}

	return b.String()
}
