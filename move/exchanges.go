package move

import (
	"fmt"
	"slices"
	"strconv"
	"strings"
)

// Exchanges is a set of hand indexes to swap with the pool.
type Exchanges struct {
	idxs []int
}

// NewExchanges builds the set of idxs. Repeated indexes collapse into one.
func NewExchanges(idxs ...int) (Exchanges, error) {
	set := slices.Clone(idxs)
	for _, i := range set {
		if i < 0 {
			return Exchanges{}, fmt.Errorf("%w: %d", ErrNegativeIndex, i)
		}
	}
	slices.Sort(set)
	return Exchanges{idxs: slices.Compact(set)}, nil
}

// MustExchanges is NewExchanges for literals known to be valid.
func MustExchanges(idxs ...int) Exchanges {
	e, err := NewExchanges(idxs...)
	if err != nil {
		panic(err)
	}
	return e
}

func (e Exchanges) Len() int {
	return len(e.idxs)
}

func (e Exchanges) IsEmpty() bool {
	return len(e.idxs) == 0
}

// Indexes returns the indexes in increasing order.
func (e Exchanges) Indexes() []int {
	return slices.Clone(e.idxs)
}

// Partition splits e by whether each index is below n.
func (e Exchanges) Partition(n int) (below, rest Exchanges) {
	pos, _ := slices.BinarySearch(e.idxs, n)
	return Exchanges{idxs: slices.Clone(e.idxs[:pos])}, Exchanges{idxs: slices.Clone(e.idxs[pos:])}
}

func (e Exchanges) String() string {
	parts := make([]string, len(e.idxs))
	for i, idx := range e.idxs {
		parts[i] = strconv.Itoa(idx)
	}
	return strings.Join(parts, " ")
}

// ParseExchanges parses every field as a hand index.
func ParseExchanges(fields []string) (Exchanges, error) {
	idxs := make([]int, 0, len(fields))
	for _, f := range fields {
		i, err := strconv.Atoi(f)
		if err != nil {
			return Exchanges{}, fmt.Errorf("bad index %q: %w", f, err)
		}
		idxs = append(idxs, i)
	}
	return NewExchanges(idxs...)
}
