package tt

import (
	"math"

	"github.com/op/go-logging"

	myLogging "github.com/corvid/corvid/internal/logging"
	. "github.com/corvid/corvid/internal/types"
)

const (
	// MB is one megabyte in bytes.
	MB = 1024 * 1024
	// MaxSizeMB bounds how large a table a setoption Hash request may ask
	// for (spec §6 Options: Hash clamped to [1, 4096]).
	MaxSizeMB = 4096
)

// Table is the transposition table: a flat array of Entry sized to the
// largest power of two that fits the requested byte budget, indexed by
// key & (capacity-1) (spec §3 TT entry / §4.6).
type Table struct {
	log     *logging.Logger
	entries []Entry
	mask    uint64
	age     uint16

	puts    uint64
	hits    uint64
	misses  uint64
	collide uint64
}

// New creates a Table sized for sizeMB megabytes.
func New(sizeMB int) *Table {
	t := &Table{log: myLogging.GetLog()}
	t.Resize(sizeMB)
	return t
}

// Resize rebuilds the table for a new byte budget, discarding all entries.
func (t *Table) Resize(sizeMB int) {
	if sizeMB < 1 {
		sizeMB = 1
	}
	if sizeMB > MaxSizeMB {
		sizeMB = MaxSizeMB
	}
	numEntries := uint64(sizeMB) * MB / EntrySize
	capacity := uint64(1) << uint(math.Floor(math.Log2(float64(numEntries))))
	if capacity == 0 {
		capacity = 1
	}
	t.entries = make([]Entry, capacity)
	t.mask = capacity - 1
	t.age = 0
	t.log.Debugf("tt resized to %d entries (%d MB requested)", capacity, sizeMB)
}

// Clear drops every stored entry without changing capacity; called on
// ucinewgame (spec §5 Shared state).
func (t *Table) Clear() {
	for i := range t.entries {
		t.entries[i] = Entry{}
	}
	t.age = 0
	t.puts, t.hits, t.misses, t.collide = 0, 0, 0, 0
}

// NewGeneration bumps the replacement age, so that in the next search a
// different position may overwrite any previously stored entry regardless
// of depth.
func (t *Table) NewGeneration() {
	t.age++
}

func (t *Table) index(key Key) uint64 {
	return uint64(key) & t.mask
}

// Probe returns the entry stored for key, or (_, false) on a miss or an
// empty table.
func (t *Table) Probe(key Key) (Entry, bool) {
	if len(t.entries) == 0 {
		return Entry{}, false
	}
	e := t.entries[t.index(key)]
	if e.key != key || e.IsEmpty() {
		t.misses++
		return Entry{}, false
	}
	t.hits++
	return e, true
}

// Store records a search result, replacing the current occupant only when
// depth >= stored.depth (depth-preferred replacement, spec §4.6) or the
// slot holds a different, older-generation position.
func (t *Table) Store(key Key, depth int, value Value, bound Bound, move Move, eval Value) {
	if len(t.entries) == 0 {
		return
	}
	t.puts++
	idx := t.index(key)
	slot := &t.entries[idx]

	if slot.key != 0 && slot.key != key {
		t.collide++
	}
	if slot.key != 0 && depth < slot.Depth() && (slot.key == key || slot.Age() == t.age) {
		return
	}
	if move == MoveNone && slot.key == key {
		move = slot.move // preserve a known-good move when storing a moveless bound
	}
	*slot = Entry{
		key:   key,
		move:  move,
		eval:  int16(eval),
		value: int16(value),
		meta:  packMeta(depth, bound, t.age),
	}
}

// Hashfull returns per-mille occupancy over a representative sample, as
// reported in the UCI "info ... hashfull" field.
func (t *Table) Hashfull() int {
	if len(t.entries) == 0 {
		return 0
	}
	sample := 1000
	if sample > len(t.entries) {
		sample = len(t.entries)
	}
	used := 0
	for i := 0; i < sample; i++ {
		if !t.entries[i].IsEmpty() {
			used++
		}
	}
	return used * 1000 / sample
}

// Capacity returns the number of entry slots.
func (t *Table) Capacity() int { return len(t.entries) }

// ToStorage folds the current search ply into a mate score so that forced
// mates found at different plies from the root become comparable when
// later probed at a different ply (spec §4.6).
func ToStorage(v Value, ply int) Value {
	if !IsMateScore(v) {
		return v
	}
	if v > 0 {
		return v + Value(ply)
	}
	return v - Value(ply)
}

// FromStorage is the inverse of ToStorage, applied when a probed value is
// read back out at the current ply.
func FromStorage(v Value, ply int) Value {
	if !IsMateScore(v) {
		return v
	}
	if v > 0 {
		return v - Value(ply)
	}
	return v + Value(ply)
}
