// Package verification contains the ordered record of a verifier run.
//
// Every step appends an Event; the Report keeps them in the order they happened
// together with the first error, so callers and tests can inspect a run without
// scraping console output.
package verification
