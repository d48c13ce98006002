// Package tt implements the transposition table: a fixed-capacity,
// power-of-two indexed cache of prior search results keyed by Zobrist key,
// with depth-preferred replacement (spec §4.6).
package tt

import (
	"unsafe"

	"github.com/corvid/corvid/internal/position"
	. "github.com/corvid/corvid/internal/types"
)

// Key is the Zobrist key the table is indexed by.
type Key = position.Key

// Bound classifies how a stored value relates to the true minimax value:
// Exact means the value is exact, Lower means it is a fail-high (at least
// this good), Upper means it is a fail-low (at most this good).
type Bound uint8

const (
	BoundNone Bound = iota
	Exact
	Lower
	Upper
)

// EntrySize is the size in bytes of one packed Entry, used to compute how
// many entries fit in a requested byte budget.
const EntrySize = uint64(unsafe.Sizeof(Entry{}))

// Entry is one transposition table slot: key (8 bytes), move (4),
// eval+value (4) and a packed depth/bound/age field (2), which the key's
// 8-byte alignment pads to 24 bytes.
type Entry struct {
	key   Key
	move  Move
	eval  int16
	value int16
	meta  uint16 // depth:8 bound:2 age:6
}

const (
	depthShift = 8
	depthMask  = uint16(0xFF) << depthShift
	boundShift = 6
	boundMask  = uint16(0x3) << boundShift
	ageMask    = uint16(0x3F)
)

func packMeta(depth int, bound Bound, age uint16) uint16 {
	return uint16(depth&0xFF)<<depthShift | uint16(bound&0x3)<<boundShift | (age & ageMask)
}

func (e *Entry) Key() Key       { return e.key }
func (e *Entry) Move() Move     { return e.move }
func (e *Entry) Eval() Value    { return Value(e.eval) }
func (e *Entry) Value() Value   { return Value(e.value) }
func (e *Entry) Depth() int     { return int((e.meta & depthMask) >> depthShift) }
func (e *Entry) Bound() Bound   { return Bound((e.meta & boundMask) >> boundShift) }
func (e *Entry) Age() uint16    { return e.meta & ageMask }
func (e *Entry) IsEmpty() bool  { return e.key == 0 }
