package carousel

import (
	"errors"
	"fmt"
)

// ErrEmptyData is returned when an index is normalized against an empty data set.
var ErrEmptyData = errors.New("carousel: data set is empty")

// Normalize maps candidate onto [0, length) with circular wraparound.
// Any integer is accepted, including large negative offsets.
func Normalize(candidate, length int) (int, error) {
	if length <= 0 {
		return 0, ErrEmptyData
	}
	r := candidate % length
	if r < 0 {
		r += length
	}
	return r, nil
}

// mustNormalize is used where length has already been validated; callers
// check for an empty data set first, so an empty length panics.
func mustNormalize(candidate, length int) int {
	idx, err := Normalize(candidate, length)
	if err != nil {
		panic(fmt.Sprintf("carousel: normalize %d against length %d: %v", candidate, length, err))
	}
	return idx
}
