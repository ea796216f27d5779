package resolve

import (
	"context"

	"github.com/agext/levenshtein"

	"github.com/specialistvlad/petagego/internal/ctxlog"
	"github.com/specialistvlad/petagego/internal/species"
)

// suggestionMaxDistance bounds how many edits away from a valid key an input
// may be before the suggestion is dropped as noise.
const suggestionMaxDistance = 3

// Match pairs the user's original spelling with the record it resolved to.
// The input spelling survives into summary lines and structured output; the
// record carries the canonical key used for bar labels.
type Match struct {
	Input  string
	Record species.Record
}

// Resolve validates the requested animals and age. A nil age or an empty
// name list means the arguments were not provided. Names resolve in input
// order and the first unknown one aborts the run, so later names are never
// inspected. An age beyond 1.5x an animal's typical lifespan logs a warning
// on the context logger but still resolves.
func Resolve(ctx context.Context, names []string, age *float64) ([]Match, error) {
	logger := ctxlog.FromContext(ctx)

	if age == nil || len(names) == 0 {
		return nil, ErrMissingArgs
	}
	if *age < 0 {
		return nil, &InvalidAgeError{Age: *age}
	}

	matches := make([]Match, 0, len(names))
	for _, name := range names {
		rec, ok := species.Lookup(name)
		if !ok {
			return nil, &UnknownSpeciesError{Name: name, Suggestion: Suggest(name)}
		}

		if *age > rec.MaxLifespan*1.5 {
			logger.Warn("Age exceeds typical lifespan.",
				"age", *age, "animal", name, "max_lifespan", rec.MaxLifespan)
		}

		matches = append(matches, Match{Input: name, Record: rec})
	}

	logger.Debug("All requested animals resolved.", "count", len(matches))
	return matches, nil
}

// Suggest returns the valid key closest to input by Levenshtein distance, or
// "" when even the closest key is suggestionMaxDistance or more edits away.
// Ties keep the earliest key in table order. The comparison is case-sensitive
// on purpose: case-insensitive matches never reach the suggestion path.
func Suggest(input string) string {
	best := ""
	bestDist := -1
	for _, key := range species.Keys() {
		dist := levenshtein.Distance(input, key, nil)
		if bestDist < 0 || dist < bestDist {
			best, bestDist = key, dist
		}
	}
	if bestDist < 0 || bestDist >= suggestionMaxDistance {
		return ""
	}
	return best
}
