// Package sample runs generators outside of a property test.
//
// Every generator is registered as a named Kind. A Sampler turns a Request
// into a Batch: value i of the batch is drawn from a fresh random source
// seeded with Seed+i, so a batch is reproducible, and a longer batch extends
// a shorter one with the same seed. Values are generated concurrently with a
// bounded errgroup and returned in seed order.
//
// Each value is rendered to text and handed back to the parser, which
// decides the Verdict:
//
//	accepted   the parser accepted every rendered text
//	overflow   a numeric component does not fit in 64 bits
//	rejected   the parser refused the text
//	absent     an optional generator produced nothing
//	discarded  the generator gave up on the draw
//	panicked   the generator refused to produce a value
//
// Verify exposes the same check for arbitrary text, and Check applies it to
// a list of values, producing a CheckReport.
package sample
