// Copyright 2024 The transitivity authors.
// License MIT: http://opensource.org/licenses/MIT

// irange.go
//
// IRange, the half-open interval primitive (spec §4.1), and the arena
// that backs the transient per-quotient-node chains used while building
// the range pool (spec §4.4, §9: "arena-allocated intervals with integer
// next indices (preferred)").

package transitivity

// IRange is a half-open integer interval [Lo, Hi) over topological
// numbers. It is empty iff Lo == Hi.
//
// The ordering Compare provides is NOT consistent with equality: two
// distinct intervals with the same Lo, such as [0, 1) and [0, 100),
// compare equal.
// This is deliberate (spec §9 Open Questions) because a priority queue
// only ever needs to order by Lo; callers must not place IRange values
// in an ordered set or map keyed by themselves.
type IRange struct {
	Lo, Hi int32
}

// NewIRange builds a half-open interval [lo, hi). Precondition: lo <= hi.
func NewIRange(lo, hi int32) IRange {
	return IRange{Lo: lo, Hi: hi}
}

// Empty reports whether a contains no integers.
func (a IRange) Empty() bool { return a.Lo == a.Hi }

// Contains reports whether i falls in [a.Lo, a.Hi).
func (a IRange) Contains(i int32) bool { return a.Lo <= i && i < a.Hi }

// Mergeable reports whether a and b may be combined into a single
// interval without including any integer that isn't in a or b: they
// must be non-empty and overlap or touch (min.Hi >= max.Lo), or either
// may be empty (an empty interval is mergeable with anything).
func Mergeable(a, b IRange) bool {
	if a.Empty() || b.Empty() {
		return true
	}
	if a.Lo <= b.Lo {
		return b.Lo <= a.Hi
	}
	return a.Lo <= b.Hi
}

// Merge combines other into a in place. If a is empty, a becomes a copy
// of other. If other is empty, a is unchanged. Otherwise a becomes the
// smallest interval covering both.
func (a *IRange) Merge(other IRange) {
	switch {
	case a.Empty():
		*a = other
	case other.Empty():
		// no-op
	default:
		if other.Lo < a.Lo {
			a.Lo = other.Lo
		}
		if other.Hi > a.Hi {
			a.Hi = other.Hi
		}
	}
}

// Compare orders by Lo only, per the IRange doc above.
func Compare(a, b IRange) int {
	switch {
	case a.Lo < b.Lo:
		return -1
	case a.Lo > b.Lo:
		return 1
	default:
		return 0
	}
}

// noNext is the arena sentinel meaning "no further interval in this
// node's chain."
const noNext = -1

// rangeArena holds the transient, per-quotient-node singly linked chains
// built during closure construction (spec §4.4 step 5). A chain is
// written once, while its own quotient node is processed, and afterwards
// only read, once for each predecessor of that node; no cycles ever
// occur. An arena of integer-indexed nodes avoids both pointer chasing
// and any ownership ambiguity a boxed linked list would introduce.
type rangeArena struct {
	iv   []IRange
	next []int32
}

// push appends v to the arena and returns its index.
func (a *rangeArena) push(v IRange) int32 {
	a.iv = append(a.iv, v)
	a.next = append(a.next, noNext)
	return int32(len(a.iv) - 1)
}

func (a *rangeArena) value(i int32) IRange   { return a.iv[i] }
func (a *rangeArena) nextOf(i int32) int32   { return a.next[i] }
func (a *rangeArena) setNext(i, next int32)  { a.next[i] = next }
func (a *rangeArena) setValue(i int32, v IRange) { a.iv[i] = v }
