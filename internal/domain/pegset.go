package domain

import (
	"encoding/json"
	"sort"
	"strconv"
	"strings"
)

// PegSet is the set of occupied holes.
type PegSet map[Hole]struct{}

func NewPegSet(holes ...Hole) PegSet {
	s := make(PegSet, len(holes))
	s.Add(holes...)
	return s
}

func (s PegSet) Add(holes ...Hole) {
	for _, h := range holes {
		s[h] = struct{}{}
	}
}

func (s PegSet) Remove(h Hole) bool {
	_, ok := s[h]
	delete(s, h)
	return ok
}

func (s PegSet) Contains(h Hole) bool {
	_, ok := s[h]
	return ok
}

func (s PegSet) Len() int {
	return len(s)
}

// Clone returns an independent copy.
func (s PegSet) Clone() PegSet {
	out := make(PegSet, len(s))
	for h := range s {
		out[h] = struct{}{}
	}
	return out
}

// Equal reports whether both sets hold the same holes.
func (s PegSet) Equal(other PegSet) bool {
	if len(s) != len(other) {
		return false
	}
	for h := range s {
		if !other.Contains(h) {
			return false
		}
	}
	return true
}

// Sorted returns the members in ascending order.
func (s PegSet) Sorted() []Hole {
	out := make([]Hole, 0, len(s))
	for h := range s {
		out = append(out, h)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Only returns the single member of a one-peg set.
func (s PegSet) Only() (Hole, bool) {
	if len(s) != 1 {
		return NoHole, false
	}
	for h := range s {
		return h, true
	}
	return NoHole, false
}

// Key is the canonical, order-independent identity of the set:
// members ascending, comma separated.
func (s PegSet) Key() string {
	var sb strings.Builder
	for i, h := range s.Sorted() {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(strconv.Itoa(int(h)))
	}
	return sb.String()
}

func (s PegSet) String() string {
	return "{" + s.Key() + "}"
}

// MarshalJSON encodes the set as a sorted array.
func (s PegSet) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.Sorted())
}

func (s *PegSet) UnmarshalJSON(data []byte) error {
	var holes []Hole
	if err := json.Unmarshal(data, &holes); err != nil {
		return err
	}
	*s = NewPegSet(holes...)
	return nil
}
