// Package buffer provides reusable float64 working buffers for
// allocation-friendly short-time processing. DSP functions accept raw
// []float64 slices; Buffer is an optional convenience for callers that
// manage padded signals and scratch memory in hot paths.
package buffer
