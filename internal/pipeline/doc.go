// Package pipeline streams PAF records through validate.Check on a pool of
// workers and hands the outcomes to a visit callback in input order.
//
// The only contract it needs from sequences is validate.WindowProvider.
// This keeps the pipeline swappable and testable.
package pipeline
