// SPDX-License-Identifier: MIT
// Package: lvcolor/builder
//
// impl_petersen.go - implementation of Petersen() constructor.
//
// Contract:
//   • Ten vertices: outer 5-cycle on the first five IDs, inner pentagram on
//     the last five, spokes outer[i] -> inner[i].
//   • Emits outer cycle, then spokes, then the pentagram.
//
// The Petersen graph is 3-regular, has 15 edges and chromatic number 3.

package builder

const (
	methodPetersen = "Petersen"
	petersenRing   = 5
)

// Petersen returns a Constructor that builds the Petersen graph.
func Petersen() Constructor {
	return func(b *buffer, _ builderConfig) error {
		outer := b.addVertices(2 * petersenRing)
		inner := outer + petersenRing
		for i := 0; i < petersenRing; i++ {
			b.addEdge(outer+i, outer+(i+1)%petersenRing)
		}
		for i := 0; i < petersenRing; i++ {
			b.addEdge(outer+i, inner+i)
		}
		for i := 0; i < petersenRing; i++ {
			b.addEdge(inner+i, inner+(i+2)%petersenRing)
		}

		return nil
	}
}
