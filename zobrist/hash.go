// Package zobrist generates zobrist hashes for puzzle positions.
// https://en.wikipedia.org/wiki/Zobrist_hashing
//
// Orientation and length are fixed for a vehicle's whole lifetime, so a
// position is fully determined by its set of (id, anchor cell) pairs;
// the table only needs one random number per id per cell.
package zobrist

import (
	"lukechampine.com/frand"

	"github.com/domino14/gridlock/board"
)

const bignum = 1<<63 - 2

// MaxVehicles covers one-byte vehicle ids.
const MaxVehicles = 256

type Zobrist struct {
	posTable [][]uint64
	width    int
}

func (z *Zobrist) Initialize(width, height int) {
	z.width = width
	z.posTable = make([][]uint64, MaxVehicles)
	for i := 0; i < MaxVehicles; i++ {
		z.posTable[i] = make([]uint64, width*height)
		for j := 0; j < width*height; j++ {
			z.posTable[i][j] = frand.Uint64n(bignum) + 1
		}
	}
}

// VehicleKey returns the random key for a vehicle anchored at its
// current cell.
func (z *Zobrist) VehicleKey(v board.Vehicle) uint64 {
	return z.posTable[v.ID][v.Row*z.width+v.Col]
}

// Hash computes a position hash from scratch.
func (z *Zobrist) Hash(vehicles []board.Vehicle) uint64 {
	key := uint64(0)
	for _, v := range vehicles {
		key ^= z.VehicleKey(v)
	}
	return key
}

// AddMove incrementally updates a parent hash for a single vehicle
// slide. XORing out the old anchor and in the new one is much cheaper
// than rehashing the whole position.
func (z *Zobrist) AddMove(key uint64, before, after board.Vehicle) uint64 {
	return key ^ z.VehicleKey(before) ^ z.VehicleKey(after)
}
