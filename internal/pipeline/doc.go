// Package pipeline resolves batches of containers and drives generation.
//
// Containers are independent of each other, so Resolve fans them out over a
// bounded number of goroutines. Every failure becomes a diagnostic carrying
// its container, field and directive; results keep the input order.
package pipeline
