package archetype

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/phrazzld/tikkun-core/internal/domain"
)

//go:embed data/archetypes.yaml
var defaultCatalogData []byte

// catalogDocument is the on-disk shape of the knowledge base. Number
// entries carry the full descriptor once; dimension entries add the lens
// phrase used when a modifier fragment is worded; overrides replace
// individual descriptor fields for a specific (dimension, number) pair.
type catalogDocument struct {
	Numbers    map[int]domain.ArchetypeDescriptor    `yaml:"numbers"`
	Dimensions map[string]dimensionEntry             `yaml:"dimensions"`
	Overrides  map[string]map[int]descriptorOverride `yaml:"overrides"`
	Energies   map[int]string                        `yaml:"energies"`
}

type dimensionEntry struct {
	Lens string `yaml:"lens"`
}

// descriptorOverride uses pointer fields so an absent key is
// distinguishable from an explicit empty string (which is rejected).
type descriptorOverride struct {
	Title            *string `yaml:"title"`
	Purpose          *string `yaml:"purpose"`
	Challenges       *string `yaml:"challenges"`
	EmotionalPattern *string `yaml:"emotional_pattern"`
	PowerStyle       *string `yaml:"power_style"`
	RelationalStyle  *string `yaml:"relational_style"`
	ServiceType      *string `yaml:"service_type"`
	Example          *string `yaml:"example"`
}

// Catalog is the loaded, immutable knowledge base. It guarantees an entry
// for every (dimension, reduced value) pair, a lens phrase for every
// dimension, and a basic-energy blurb for every single digit.
type Catalog struct {
	descriptors map[domain.Dimension]map[int]domain.ArchetypeDescriptor
	lenses      map[domain.Dimension]string
	energies    map[int]string
}

// NewDefaultCatalog loads the embedded knowledge base.
func NewDefaultCatalog() (*Catalog, error) {
	return LoadCatalog(defaultCatalogData)
}

// LoadCatalog parses and validates knowledge-base data, then expands it
// into the full (dimension, number) lookup. Completeness is enforced here
// so resolution never discovers a gap at request time.
func LoadCatalog(data []byte) (*Catalog, error) {
	var doc catalogDocument
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidCatalog, err)
	}

	if err := validateDocument(&doc); err != nil {
		return nil, err
	}

	catalog := &Catalog{
		descriptors: make(map[domain.Dimension]map[int]domain.ArchetypeDescriptor, len(domain.AllDimensions)),
		lenses:      make(map[domain.Dimension]string, len(domain.AllDimensions)),
		energies:    make(map[int]string, len(doc.Energies)),
	}

	for base, text := range doc.Energies {
		catalog.energies[base] = text
	}

	for _, dim := range domain.AllDimensions {
		catalog.lenses[dim] = doc.Dimensions[string(dim)].Lens

		byNumber := make(map[int]domain.ArchetypeDescriptor, len(domain.AllReducedValues))
		for _, value := range domain.AllReducedValues {
			descriptor := doc.Numbers[value]
			if override, ok := doc.Overrides[string(dim)][value]; ok {
				applyOverride(&descriptor, override)
			}
			byNumber[value] = descriptor
		}
		catalog.descriptors[dim] = byNumber
	}

	return catalog, nil
}

// Descriptor returns the archetype descriptor for a dimension and reduced
// number. A miss is a configuration defect and returns
// ErrKnowledgeBaseGap.
func (c *Catalog) Descriptor(dim domain.Dimension, n domain.ReducedNumber) (domain.ArchetypeDescriptor, error) {
	byNumber, ok := c.descriptors[dim]
	if ok {
		if descriptor, found := byNumber[n.Value]; found {
			return descriptor, nil
		}
	}
	return domain.ArchetypeDescriptor{}, fmt.Errorf("%w: %s/%d", ErrKnowledgeBaseGap, dim, n.Value)
}

// Lens returns the dimension's framing phrase for modifier fragments.
func (c *Catalog) Lens(dim domain.Dimension) string {
	return c.lenses[dim]
}

// Energy returns the basic-energy blurb for a single digit 1-9, used by
// the report overview. A miss returns ErrKnowledgeBaseGap.
func (c *Catalog) Energy(base int) (string, error) {
	text, ok := c.energies[base]
	if !ok {
		return "", fmt.Errorf("%w: energy/%d", ErrKnowledgeBaseGap, base)
	}
	return text, nil
}

func validateDocument(doc *catalogDocument) error {
	for _, value := range domain.AllReducedValues {
		descriptor, ok := doc.Numbers[value]
		if !ok {
			return fmt.Errorf("%w: missing number entry %d", ErrInvalidCatalog, value)
		}
		if descriptor.Title == "" || descriptor.Example == "" {
			return fmt.Errorf("%w: number %d needs a title and an example", ErrInvalidCatalog, value)
		}
		for _, theme := range domain.ReportThemes {
			if descriptor.ThemeText(theme) == "" {
				return fmt.Errorf("%w: number %d is missing theme %q", ErrInvalidCatalog, value, theme)
			}
		}
	}

	for _, dim := range domain.AllDimensions {
		entry, ok := doc.Dimensions[string(dim)]
		if !ok || entry.Lens == "" {
			return fmt.Errorf("%w: dimension %q needs a lens", ErrInvalidCatalog, dim)
		}
	}

	for dimKey, byNumber := range doc.Overrides {
		if !domain.Dimension(dimKey).IsValid() {
			return fmt.Errorf("%w: override for unknown dimension %q", ErrInvalidCatalog, dimKey)
		}
		for value, override := range byNumber {
			if _, ok := doc.Numbers[value]; !ok {
				return fmt.Errorf("%w: override %s/%d targets unknown number", ErrInvalidCatalog, dimKey, value)
			}
			if err := validateOverride(dimKey, value, override); err != nil {
				return err
			}
		}
	}

	for base := 1; base <= 9; base++ {
		if doc.Energies[base] == "" {
			return fmt.Errorf("%w: missing energy entry %d", ErrInvalidCatalog, base)
		}
	}

	return nil
}

func validateOverride(dimKey string, value int, override descriptorOverride) error {
	fields := map[string]*string{
		"title":             override.Title,
		"purpose":           override.Purpose,
		"challenges":        override.Challenges,
		"emotional_pattern": override.EmotionalPattern,
		"power_style":       override.PowerStyle,
		"relational_style":  override.RelationalStyle,
		"service_type":      override.ServiceType,
		"example":           override.Example,
	}
	for name, field := range fields {
		if field != nil && *field == "" {
			return fmt.Errorf("%w: override %s/%d sets empty %s", ErrInvalidCatalog, dimKey, value, name)
		}
	}
	return nil
}

func applyOverride(descriptor *domain.ArchetypeDescriptor, override descriptorOverride) {
	if override.Title != nil {
		descriptor.Title = *override.Title
	}
	if override.Purpose != nil {
		descriptor.Purpose = *override.Purpose
	}
	if override.Challenges != nil {
		descriptor.Challenges = *override.Challenges
	}
	if override.EmotionalPattern != nil {
		descriptor.EmotionalPattern = *override.EmotionalPattern
	}
	if override.PowerStyle != nil {
		descriptor.PowerStyle = *override.PowerStyle
	}
	if override.RelationalStyle != nil {
		descriptor.RelationalStyle = *override.RelationalStyle
	}
	if override.ServiceType != nil {
		descriptor.ServiceType = *override.ServiceType
	}
	if override.Example != nil {
		descriptor.Example = *override.Example
	}
}
