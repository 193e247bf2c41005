// Package generators populates graphs with classic topologies through the
// native engine. A generator mutates the graph natively and then registers
// every new vertex and edge under supplier-generated identifiers, so the
// target graph must carry both a vertex and an edge supplier.
//
// Randomized generators are deterministic for a fixed seed. Without
// WithSeed the seed is drawn from the wall clock.
package generators
