package domain

import (
	"fmt"
	"strconv"
)

// MasterNumbers are the values that resist further digit reduction and
// carry amplified symbolic weight.
var MasterNumbers = map[int]bool{
	11: true,
	22: true,
	33: true,
}

// AllReducedValues lists every value a reduction can produce, in
// ascending order. The knowledge base must cover each of them in every
// dimension.
var AllReducedValues = []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 11, 22, 33}

// ReducedNumber is the result of digit reduction: a value in 1-9, or one
// of the master numbers 11, 22, 33. The Master tag is carried explicitly
// so downstream code never re-derives master-ness from magnitude.
type ReducedNumber struct {
	Value  int  `json:"value"`
	Master bool `json:"master"`
}

// NewReducedNumber creates a ReducedNumber from an already-reduced value.
// Returns ErrInvalidReducedValue if the value is not in 1-9 or a master
// number.
func NewReducedNumber(value int) (ReducedNumber, error) {
	if value >= 1 && value <= 9 {
		return ReducedNumber{Value: value}, nil
	}
	if MasterNumbers[value] {
		return ReducedNumber{Value: value, Master: true}, nil
	}
	return ReducedNumber{}, fmt.Errorf("%w: %d", ErrInvalidReducedValue, value)
}

// Base returns the fully collapsed single digit behind the number:
// the value itself for 1-9, and the digit sum for masters (11→2, 22→4,
// 33→6).
func (n ReducedNumber) Base() int {
	if !n.Master {
		return n.Value
	}
	return (n.Value / 10) + (n.Value % 10)
}

// String renders the bare value: "7", "11".
func (n ReducedNumber) String() string {
	return strconv.Itoa(n.Value)
}

// PathString renders the number the way a life path is traditionally
// written: plain digits for 1-9, and "master/base" (e.g. "11/2") for
// master numbers.
func (n ReducedNumber) PathString() string {
	if !n.Master {
		return strconv.Itoa(n.Value)
	}
	return fmt.Sprintf("%d/%d", n.Value, n.Base())
}
