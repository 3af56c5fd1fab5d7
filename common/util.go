package common

import (
	"errors"
	"fmt"
	"sync"
)

// RunParallel takes multiple functions that each return an error,
// runs them in parallel using goroutines, then aggregates any
// errors using errors.Join.
func RunParallel(funcs ...func() error) (error, int) {
	var wg sync.WaitGroup
	errs := make(chan error, len(funcs))

	for _, fn := range funcs {
		wg.Add(1)
		go func(fn func() error) {
			defer wg.Done()
			if err := fn(); err != nil {
				errs <- err
			}
		}(fn)
	}

	wg.Wait()
	close(errs)

	var allErrs []error
	for err := range errs {
		allErrs = append(allErrs, err)
	}
	return errors.Join(allErrs...), len(allErrs)
}

type namedResult[T any] struct {
	value T
	err   error
}

// FirstSuccess runs every call concurrently and returns the first result
// that comes back without an error. When all of them fail, the errors are
// joined, each prefixed with the name of the call that produced it.
func FirstSuccess[T any](calls map[string]func() (T, error)) (T, error) {
	var zero T
	if len(calls) == 0 {
		return zero, errors.New("no call to run")
	}
	resCh := make(chan namedResult[T], len(calls))
	for name, call := range calls {
		go func(name string, call func() (T, error)) {
			v, err := call()
			if err != nil {
				err = fmt.Errorf("%s: %w", name, err)
			}
			resCh <- namedResult[T]{v, err}
		}(name, call)
	}
	errs := []error{}
	for i := 0; i < len(calls); i++ {
		res := <-resCh
		if res.err == nil {
			return res.value, nil
		}
		errs = append(errs, res.err)
	}
	return zero, fmt.Errorf("couldn't read from any nodes: %w", errors.Join(errs...))
}
