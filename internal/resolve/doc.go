// Package resolve validates the requested animals and age, translating raw
// CLI input into species records. Resolution is fail-fast: the first unknown
// animal aborts the whole request, carrying a closest-match suggestion when
// the input looks like a typo. An age far beyond an animal's typical lifespan
// logs a warning but never fails the run.
package resolve
