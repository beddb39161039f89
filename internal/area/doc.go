// Package area computes the net paintable area of a wall.
//
// The package is the calculation core behind the wallarea form and CLI. It owns:
//
//   - Parsing raw field text into positive numbers (ParseNumber)
//   - Validating a whole Form and collecting every field error (Validate)
//   - Computing gross, opening and net area (Compute)
//   - The canonical default form and dirty tracking (DefaultState, IsDirty)
//
// Nothing in this package performs I/O or holds state between calls. The presentation
// layer owns the Form, mutates it, and calls Calculate when the user asks for a result.
package area
