// Package verify checks sort results: that a range is ordered, and that
// sorting only permuted the values.
//
// Permutation checks use an order-independent fingerprint of the multiset
// of values, so the caller only keeps a few words from before the sort
// instead of a copy of the input:
//
//	before := verify.Fingerprint(seq)
//	_ = quicksort.SortAll(seq)
//	if err := verify.Check(before, seq); err != nil {
//	    ...
//	}
package verify

import (
	"encoding/binary"
	"errors"
	"fmt"

	"github.com/OneOfOne/xxhash"
	commonErrors "github.com/amp-labs/quicksort/errors"
	"github.com/zeebo/xxh3"
)

var (
	ErrNotSorted      = errors.New("sequence is not sorted")
	ErrNotPermutation = errors.New("sequence is not a permutation of the input")
)

// Print is an order-independent digest of a multiset of integers. Two
// sequences holding the same values in any order have equal Prints.
//
// Each value is hashed twice with unrelated functions; the xxh3 hashes are
// summed and the xxhash hashes are xored. Both operations commute, which
// is what makes the digest ignore order.
type Print struct {
	Len int    `json:"len" yaml:"len"`
	Sum uint64 `json:"sum" yaml:"sum"`
	Xor uint64 `json:"xor" yaml:"xor"`
}

func (p Print) String() string {
	return fmt.Sprintf("len=%d sum=%016x xor=%016x", p.Len, p.Sum, p.Xor)
}

// Fingerprint digests the values of seq.
func Fingerprint(seq []int) Print {
	var (
		p   = Print{Len: len(seq)}
		buf [8]byte
	)

	for _, v := range seq {
		binary.LittleEndian.PutUint64(buf[:], uint64(v)) //nolint:gosec

		p.Sum += xxh3.Hash(buf[:])
		p.Xor ^= xxhash.Checksum64(buf[:])
	}

	return p
}

// CheckSorted returns an error wrapping ErrNotSorted that names the first
// inversion in seq[low..high], or nil. Ranges with low >= high are
// trivially sorted.
func CheckSorted(seq []int, low, high int) error {
	if low >= high {
		return nil
	}

	if low < 0 || high >= len(seq) {
		return fmt.Errorf("%w: range [%d, %d] outside length %d", ErrNotSorted, low, high, len(seq))
	}

	for i := low + 1; i <= high; i++ {
		if seq[i] < seq[i-1] {
			return fmt.Errorf("%w: seq[%d]=%d > seq[%d]=%d", ErrNotSorted, i-1, seq[i-1], i, seq[i])
		}
	}

	return nil
}

// IsSorted reports whether seq[low..high] is non-decreasing.
func IsSorted(seq []int, low, high int) bool {
	return CheckSorted(seq, low, high) == nil
}

// CheckPermutation returns an error wrapping ErrNotPermutation when the two
// prints differ.
func CheckPermutation(before, after Print) error {
	if before != after {
		return fmt.Errorf("%w: before %s, after %s", ErrNotPermutation, before, after)
	}

	return nil
}

// Check verifies that after is fully sorted and holds the same values as
// the input that produced before. Every failure is reported.
func Check(before Print, after []int) error {
	var errs commonErrors.Collection

	errs.Add(CheckSorted(after, 0, len(after)-1))
	errs.Add(CheckPermutation(before, Fingerprint(after)))

	return errs.GetError()
}
