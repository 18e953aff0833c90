package numerology

import (
	"fmt"

	"github.com/phrazzld/tikkun-core/internal/domain"
)

// Reduce collapses a positive integer to a reduced number by repeatedly
// replacing it with the sum of its decimal digits. Reduction halts the
// moment a sum lands on a master number (11, 22, 33), even mid-chain:
// 29 sums to 11 and stays 11, it never continues to 2. Otherwise the loop
// runs until a single digit remains.
//
// Returns ErrNonPositiveValue for zero or negative input.
func Reduce(n int) (domain.ReducedNumber, error) {
	if n <= 0 {
		return domain.ReducedNumber{}, fmt.Errorf("%w: got %d", domain.ErrNonPositiveValue, n)
	}

	// The master check runs on every intermediate sum, not only the final
	// one; the loop condition is exactly that check.
	for n >= 10 && !domain.MasterNumbers[n] {
		n = digitSum(n)
	}

	return domain.ReducedNumber{Value: n, Master: domain.MasterNumbers[n]}, nil
}

// ReduceSimple collapses a positive integer all the way to a single digit
// in 1-9, ignoring master numbers. It backs ReducedNumber.Base and the
// basic-energy lines of the report overview.
func ReduceSimple(n int) (int, error) {
	if n <= 0 {
		return 0, fmt.Errorf("%w: got %d", domain.ErrNonPositiveValue, n)
	}

	for n >= 10 {
		n = digitSum(n)
	}

	return n, nil
}

// digitSum returns the sum of the decimal digits of a non-negative number.
func digitSum(n int) int {
	sum := 0
	for n > 0 {
		sum += n % 10
		n /= 10
	}
	return sum
}
