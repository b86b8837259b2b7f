// SPDX-License-Identifier: EPL-2.0

package g711

// Law is a G.711 companding rule.
//
// Implementations are stateless; the zero value is ready to use and is only
// ever used as a type parameter to pick the algorithm at compile time.
type Law interface {
	// Compress converts a 16-bit linear sample to an 8-bit code.
	Compress(linear int16) uint8
	// Expand converts an 8-bit code back to a 16-bit linear sample.
	Expand(log uint8) int16
}

// ULaw selects the μ-law rule (North America, Japan).
type ULaw struct{}

func (ULaw) Compress(linear int16) uint8 { return CompressULaw(linear) }
func (ULaw) Expand(log uint8) int16      { return ExpandULaw(log) }
func (ULaw) String() string              { return "u-law" }

// ALaw selects the A-law rule (Europe, most of the rest of the world).
type ALaw struct{}

func (ALaw) Compress(linear int16) uint8 { return CompressALaw(linear) }
func (ALaw) Expand(log uint8) int16      { return ExpandALaw(log) }
func (ALaw) String() string              { return "A-law" }
