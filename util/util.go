package util

import (
	"golang.org/x/exp/constraints"
)

func GetKeys[A constraints.Ordered, B any](m map[A]B) []A {
	keys := make([]A, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	return keys
}

func CopySlice[A any](s []A) []A {
	if s == nil {
		return nil
	}
	res := make([]A, len(s))
	copy(res, s)
	return res
}

func Min[A constraints.Ordered](a A, b A) A {
	if a > b {
		return b
	}
	return a
}

func Sum[A constraints.Integer](nums []A) int {
	var total int
	for _, v := range nums {
		total += int(v)
	}
	return total
}
