package aoc

import (
	"runtime"

	"golang.org/x/sync/errgroup"
)

// Parallel calls f on every element of in concurrently and returns the
// results in input order.
//
// Every element is processed even if some fail. The returned error is the
// one for the lowest index, so a bad input always reports the same failure
// regardless of scheduling.
func Parallel[I, O any](in []I, f func(int, I) (O, error)) ([]O, error) {
	out := make([]O, len(in))
	errs := make([]error, len(in))
	var g errgroup.Group
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i, v := range in {
		g.Go(func() error {
			out[i], errs[i] = f(i, v)
			return nil
		})
	}
	g.Wait()
	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}
	return out, nil
}

// Fold reduces in with f, starting from defVal.
func Fold[T any, R any](in []T, f func(R, T) R, defVal R) R {
	out := defVal
	for _, v := range in {
		out = f(out, v)
	}
	return out
}

// ParallelMapFold maps in with f in parallel and then folds the results in
// input order with f2.
func ParallelMapFold[A, B, C any](in []A, f func(int, A) (B, error), f2 func(C, B) C, defVal C) (C, error) {
	mapped, err := Parallel(in, f)
	if err != nil {
		return defVal, err
	}
	return Fold(mapped, f2, defVal), nil
}
