// File: recover.go
// Title: Kind-Matched Recovery
// Description: TryOrReturn and Route run a function and replace errors or
//              panics of one expected kind with a fallback value. Every
//              other error is returned unchanged and every other panic is
//              re-raised.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-17
// Modified: 2026-10-17
//
// Change History:
// - 2026-10-17 v0.1.0: Initial implementation

package assert

import (
	"errors"

	mdwerrors "github.com/msto63/pkit/core/errors"
	"github.com/msto63/pkit/core/log"
)

// TryOrReturn runs fn. When fn returns an error, or panics with an error
// value, that matches kind under errors.Is, the fallback is returned with a
// nil error and a warning is logged. A nil kind matches nothing.
func TryOrReturn[T any](fn func() (T, error), fallback T, kind error) (T, error) {
	return run(fn, fallback, kind, func(err error) {
		log.GetDefault().WarnWithErr("returning fallback value", err,
			log.String("module", mdwerrors.ModuleAssert), log.String("op", "tryOrReturn"))
	})
}

// NeverReturn is TryOrReturn under the name used by callers that treat the
// fallback as the expected result.
func NeverReturn[T any](fn func() (T, error), fallback T, kind error) (T, error) {
	return TryOrReturn(fn, fallback, kind)
}

// Route runs fn and recovers only assertion failures, reporting each one to
// onError instead of logging it.
func Route[T any](fallback T, fn func() (T, error), onError func(error)) (T, error) {
	return run(fn, fallback, ErrAssertion, func(err error) {
		if onError != nil {
			onError(err)
		}
	})
}

func run[T any](fn func() (T, error), fallback T, kind error, handled func(error)) (result T, err error) {
	if fn == nil {
		return fallback, nil
	}
	matches := func(e error) bool { return kind != nil && errors.Is(e, kind) }

	defer func() {
		r := recover()
		if r == nil {
			return
		}
		perr, isErr := r.(error)
		if !isErr || !matches(perr) {
			panic(r)
		}
		handled(perr)
		result, err = fallback, nil
	}()

	result, err = fn()
	if err != nil && matches(err) {
		handled(err)
		return fallback, nil
	}
	return result, err
}
