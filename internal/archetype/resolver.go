package archetype

import (
	"github.com/phrazzld/tikkun-core/internal/domain"
)

// Resolver turns a numeric profile into a blended archetype profile using
// a loaded catalog. A Resolver is immutable and safe for concurrent use.
type Resolver struct {
	catalog *Catalog
}

// NewResolver creates a Resolver over the given catalog.
func NewResolver(catalog *Catalog) *Resolver {
	return &Resolver{catalog: catalog}
}

// Resolve looks up the life-path descriptor as the primary archetype and
// attaches one modifier per present dimension, in the fixed priority
// order day, month, year, expression, soul, personality.
//
// Blending never overwrites: the primary text always survives, each
// modifier stays a distinct fragment, and absent dimensions (no full
// name) contribute nothing rather than a default. A lookup miss
// propagates ErrKnowledgeBaseGap unchanged.
func (r *Resolver) Resolve(profile domain.NumericProfile) (domain.ArchetypeProfile, error) {
	primary, err := r.catalog.Descriptor(domain.DimensionLifePath, profile.LifePath)
	if err != nil {
		return domain.ArchetypeProfile{}, err
	}

	modifiers := make([]domain.ArchetypeModifier, 0, len(domain.ModifierDimensions))
	for _, dim := range domain.ModifierDimensions {
		number, ok := profile.Number(dim)
		if !ok {
			continue
		}

		descriptor, err := r.catalog.Descriptor(dim, number)
		if err != nil {
			return domain.ArchetypeProfile{}, err
		}

		modifiers = append(modifiers, domain.ArchetypeModifier{
			Dimension:     dim,
			Number:        number,
			Descriptor:    descriptor,
			EchoesPrimary: number.Value == profile.LifePath.Value,
		})
	}

	return domain.ArchetypeProfile{
		Numbers:   profile,
		Primary:   primary,
		Modifiers: modifiers,
	}, nil
}
