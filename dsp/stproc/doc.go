// Package stproc provides short-time analysis and synthesis of
// discrete-time signals: slicing a signal into overlapping windowed
// frames, and reconstructing a signal from a frame sequence by
// overlap-add.
//
// Analysis and synthesis share one framing convention, described by
// [Geometry]: frames of the window's length advance by a hop size
// resolved from a [window.Hop] specification, and boundary frames are
// completed by zero padding. When the (window, hop) pair satisfies the
// constant-overlap-add property (see window.VerifyCOLA) and analysis
// uses the synthesis-aligned grid, overlap-add reconstructs the
// analyzed signal exactly up to the window's overlap level.
//
// All operations are pure functions over caller-owned slices: inputs
// are never mutated, outputs are freshly allocated, and results are
// bit-reproducible for identical inputs. Frames returned by [Analyze]
// and by [FrameReader.Next] are independent copies by default; the
// reader's WithFrameReuse option opts into a reused read-only view for
// streaming consumers.
package stproc
