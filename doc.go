// Package patterns is a collection of small, independent examples of classic design patterns.
//
// # Iterator
//
//   - behavioral/iterator/formation: squads and platoons led by their own commanders
//   - behavioral/iterator/squaditer: walking a squad forward and backwards
//   - behavioral/iterator/platooniter: walking a whole platoon as one flat sequence
//
// # Observer
//
//   - behavioral/observer/conductor: the Cat sets how many times the choir performs
//   - behavioral/observer/repeat: every participant repeats its own sound
//   - behavioral/observer/pitch: participants decline messages of a pitch they can't sing
//
// # Composite
//
//   - structural/composite/roster: a squad filled one unit at a time
//   - structural/composite/variadic: a squad seeded in one constructor call
//   - structural/composite/ammo: bullets counted across units, squads and platoons
//
// Every example has a binary under cmd/ that prints its demonstration to stdout.
// Log entries go to stderr, tuned by PATTERNS_LOG_LEVEL and PATTERNS_LOG_FORMAT.
package patterns
