// SPDX-License-Identifier: MIT

package instrument

import "fmt"

// Quantity identifies one counted primitive operation.
type Quantity int

const (
	// Compares counts element comparisons.
	Compares Quantity = iota
	// Swaps counts element exchanges.
	Swaps
	// Copies counts element moves (a swap contributes SwapCopies).
	Copies
	// Hits counts array accesses (reads and writes).
	Hits
	// Fixes counts inversions removed by a conditional swap.
	Fixes
	// Lookups counts symbol-table style probes.
	Lookups

	numQuantities
)

// Inversions is the name of the derived per-run quantity recorded after an
// algorithm finishes (see Helper.PostProcess). It has no live counter.
const Inversions = "inversions"

var quantityNames = [numQuantities]string{
	Compares: "compares",
	Swaps:    "swaps",
	Copies:   "copies",
	Hits:     "hits",
	Fixes:    "fixes",
	Lookups:  "lookups",
}

// String returns the StatPack name of q ("compares", "swaps", …).
func (q Quantity) String() string {
	if q < 0 || q >= numQuantities {
		return fmt.Sprintf("Quantity(%d)", int(q))
	}

	return quantityNames[q]
}

// Valid reports whether q is one of the declared quantities.
func (q Quantity) Valid() bool { return q >= 0 && q < numQuantities }

// Quantities returns all counted quantities in declaration order.
func Quantities() []Quantity {
	out := make([]Quantity, numQuantities)
	for i := range out {
		out[i] = Quantity(i)
	}

	return out
}

// ParseQuantity maps a name back to its Quantity.
func ParseQuantity(name string) (Quantity, bool) {
	for i, n := range quantityNames {
		if n == name {
			return Quantity(i), true
		}
	}

	return 0, false
}

// Counts is a value snapshot of every counter. Copying a Counts never
// aliases the live counters it was taken from.
type Counts [numQuantities]int64

// Get returns the count for q (0 for an invalid q).
func (c Counts) Get(q Quantity) int64 {
	if !q.Valid() {
		return 0
	}

	return c[q]
}

// Map converts the snapshot into the name → value form consumed by
// stats.StatPack.Gather.
func (c Counts) Map() map[string]float64 {
	m := make(map[string]float64, numQuantities)
	for i, v := range c {
		m[quantityNames[i]] = float64(v)
	}

	return m
}

// IsZero reports whether every counter is zero.
func (c Counts) IsZero() bool { return c == Counts{} }

func (c Counts) String() string {
	return fmt.Sprintf("compares=%d swaps=%d copies=%d hits=%d fixes=%d lookups=%d",
		c[Compares], c[Swaps], c[Copies], c[Hits], c[Fixes], c[Lookups])
}
