package attacks

import (
	. "github.com/corvid/corvid/internal/types"
)

// magic holds the fancy-magic-bitboard lookup data for one square of one
// sliding piece type: the relevant-occupancy mask, the magic multiplier,
// the downshift, and this square's slice into the shared attacks table.
type magic struct {
	mask    Bitboard
	number  Bitboard
	shift   uint
	attacks []Bitboard
}

func (m *magic) index(occupied Bitboard) uint {
	occ := occupied & m.mask
	occ *= m.number
	occ >>= m.shift
	return uint(occ)
}

var (
	bishopMagics [SqLength]magic
	rookMagics   [SqLength]magic

	bishopDirs = [4]Direction{Northeast, Southeast, Southwest, Northwest}
	rookDirs   = [4]Direction{North, East, South, West}
)

// prng is Stockfish's xorshift64star generator, used only to search for
// magic numbers at startup; its sparse draw gives the low bit density
// the rejection test below needs to converge quickly.
type prng struct{ s uint64 }

func newPrng(seed uint64) *prng { return &prng{s: seed} }

func (r *prng) next() uint64 {
	r.s ^= r.s >> 12
	r.s ^= r.s << 25
	r.s ^= r.s >> 27
	return r.s * 2685821657736338717
}

func (r *prng) sparse() uint64 {
	return r.next() & r.next() & r.next()
}

// slidingAttack computes, by brute-force ray walking, the attack set of a
// slider standing on sq along the given directions with the given
// occupancy. Used only to build the reference tables the magics are
// verified against — never on the hot path.
func slidingAttack(dirs [4]Direction, sq Square, occupied Bitboard) Bitboard {
	var attack Bitboard
	for _, d := range dirs {
		s := sq
		for {
			next := s.To(d)
			if !next.IsValid() {
				break
			}
			s = next
			attack = attack.Push(s)
			if occupied.Has(s) {
				break
			}
		}
	}
	return attack
}

func edgesFor(sq Square) Bitboard {
	return ((Rank1Bb | Rank8Bb) &^ sq.RankOf().Bb()) | ((FileABb | FileHBb) &^ sq.FileOf().Bb())
}

// initMagics finds a magic number per square by rejection sampling and
// fills the shared attacks table, following the "fancy" magic bitboard
// scheme (see https://www.chessprogramming.org/Magic_Bitboards).
func initMagics(magics *[SqLength]magic, table *[]Bitboard, dirs [4]Direction) {
	seeds := [RankLength]uint64{728, 10316, 55013, 32803, 12281, 15100, 16645, 255}

	var occupancy, reference [4096]Bitboard
	var epoch [4096]int
	offset := 0

	for sq := SqA1; sq < SqNone; sq++ {
		edges := edgesFor(sq)
		m := &magics[sq]
		m.mask = slidingAttack(dirs, sq, BbZero) &^ edges
		m.shift = uint(64 - m.mask.PopCount())

		size := 0
		var b Bitboard
		for {
			occupancy[size] = b
			reference[size] = slidingAttack(dirs, sq, b)
			size++
			b = (b - m.mask) & m.mask
			if b == 0 {
				break
			}
		}

		m.attacks = (*table)[offset : offset+size]
		offset += size

		rng := newPrng(seeds[sq.RankOf()])
		cnt := 0
		for i := 0; i < size; {
			var candidate Bitboard
			for {
				candidate = Bitboard(rng.sparse())
				if ((candidate * m.mask) >> 56).PopCount() < 6 {
					break
				}
			}
			m.number = candidate
			cnt++
			for i = 0; i < size; i++ {
				idx := m.index(occupancy[i])
				if epoch[idx] < cnt {
					epoch[idx] = cnt
					m.attacks[idx] = reference[i]
				} else if m.attacks[idx] != reference[i] {
					break
				}
			}
		}
	}
}

func tableSize(magics *[SqLength]magic, dirs [4]Direction) int {
	total := 0
	for sq := SqA1; sq < SqNone; sq++ {
		edges := edgesFor(sq)
		mask := slidingAttack(dirs, sq, BbZero) &^ edges
		total += 1 << mask.PopCount()
	}
	return total
}

func initSlidingAttacks() {
	bishopTable := make([]Bitboard, tableSize(&bishopMagics, bishopDirs))
	initMagics(&bishopMagics, &bishopTable, bishopDirs)

	rookTable := make([]Bitboard, tableSize(&rookMagics, rookDirs))
	initMagics(&rookMagics, &rookTable, rookDirs)
}

// BishopAttacks returns the bishop attack set from sq given occupied.
func BishopAttacks(sq Square, occupied Bitboard) Bitboard {
	m := &bishopMagics[sq]
	return m.attacks[m.index(occupied)]
}

// RookAttacks returns the rook attack set from sq given occupied.
func RookAttacks(sq Square, occupied Bitboard) Bitboard {
	m := &rookMagics[sq]
	return m.attacks[m.index(occupied)]
}

// QueenAttacks returns the queen attack set from sq given occupied.
func QueenAttacks(sq Square, occupied Bitboard) Bitboard {
	return BishopAttacks(sq, occupied) | RookAttacks(sq, occupied)
}
