package util

import (
	"os"

	"golang.org/x/exp/constraints"
)

func Min[A constraints.Ordered](a A, b A) A {
	if a > b {
		return b
	}
	return a
}

func EnsureDir(path string) error {
	return os.MkdirAll(path, 0o755)
}
