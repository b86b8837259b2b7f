// SPDX-License-Identifier: EPL-2.0

// Package g191 is the conformance oracle for the g711 package.
//
// It exposes the four slice routines of the ITU-T G.191 software tool library
// (ulaw_compress, ulaw_expand, alaw_compress, alaw_expand) in their C
// loop-based formulation. Both sides of each routine are int16 buffers, as in
// the C library, and lseg is min(len(in), len(out)).
//
// By default the routines are plain Go. When cgo is enabled, building with
// -tags g191native links the C routines instead:
//
//	go test -tags g191native ./...
//
// Only tests import this package.
package g191
