package report

import (
	"encoding/json"
	"fmt"

	"github.com/specialistvlad/petagego/internal/species"
)

// record is the structured per-animal output shape. Struct order is the
// printed key order. Progress ratios are deliberately unclamped so consumers
// can see an age overshooting the typical lifespan.
type record struct {
	SpeciesInputLabel  string  `json:"species_input_label"`
	Age                float64 `json:"age"`
	HumanEquivalentAge float64 `json:"human_equivalent_age"`
	SpeciesMaxLifespan float64 `json:"species_max_lifespan"`
	HumanMaxLifespan   float64 `json:"human_max_lifespan"`
	SpeciesProgress    float64 `json:"species_progress"`
	HumanProgress      float64 `json:"human_progress"`
}

// writeJSON prints one pretty-printed object per animal. The objects are
// emitted back to back, not wrapped in a list.
func (b *Builder) writeJSON(rows []row, age float64) error {
	for _, r := range rows {
		rec := record{
			SpeciesInputLabel:  r.displayLabel,
			Age:                age,
			HumanEquivalentAge: r.humanAge,
			SpeciesMaxLifespan: r.animalMax,
			HumanMaxLifespan:   species.HumanMaxLifespan,
			SpeciesProgress:    age / r.animalMax,
			HumanProgress:      r.humanAge / species.HumanMaxLifespan,
		}

		data, err := json.MarshalIndent(rec, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to encode record for %q: %w", r.displayLabel, err)
		}
		fmt.Fprintln(b.out, string(data))
	}
	return nil
}
