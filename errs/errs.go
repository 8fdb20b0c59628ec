// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package errs implements the error kinds reported by material models
// Configuration and Unsupported errors are programmer errors and abort the step.
// IterationLimit is recoverable by the caller (e.g. by sub-stepping).
// NumericDomain flags invalid arguments inside a law (negative root/log arguments).
package errs

import (
	"errors"
	"fmt"

	"github.com/cpmech/gosl/io"
)

// kinds of errors
var (
	ErrConfiguration  = errors.New("configuration error")
	ErrOutOfRange     = fmt.Errorf("%w: index out of range", ErrConfiguration)
	ErrUnsupported    = errors.New("unsupported operation")
	ErrIterationLimit = errors.New("iteration limit")
	ErrNumericDomain  = errors.New("numeric domain error")
)

// Error holds an error message and its kind
type Error struct {
	Kind  error  // one of the Err... variables
	Msg   string // message
	Cause error  // error that caused this one (may be nil)
}

// Error returns the message prefixed by the kind
func (o *Error) Error() string {
	if o.Cause != nil {
		return o.Kind.Error() + ": " + o.Msg + ": " + o.Cause.Error()
	}
	return o.Kind.Error() + ": " + o.Msg
}

// Unwrap returns the kind and the cause so errors.Is works with both
func (o *Error) Unwrap() []error {
	if o.Cause != nil {
		return []error{o.Kind, o.Cause}
	}
	return []error{o.Kind}
}

// New returns a new error of the given kind
func New(kind error, msg string, prm ...interface{}) error {
	return &Error{Kind: kind, Msg: io.Sf(msg, prm...)}
}

// Wrap returns a new error of the given kind caused by another one
func Wrap(kind, cause error, msg string, prm ...interface{}) error {
	return &Error{Kind: kind, Msg: io.Sf(msg, prm...), Cause: cause}
}

// Catch runs fcn and converts a panic into an error of the given kind
// gosl functions report failures by panicking (chk.Panic).
func Catch(kind error, fcn func()) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = New(kind, "%v", r)
		}
	}()
	fcn()
	return
}

// Config returns a configuration error (unknown or mismatched slot, bad parameter)
func Config(msg string, prm ...interface{}) error {
	return New(ErrConfiguration, msg, prm...)
}

// Range returns an out-of-range error
func Range(msg string, prm ...interface{}) error {
	return New(ErrOutOfRange, msg, prm...)
}

// Unsupported returns an unsupported-operation error
func Unsupported(msg string, prm ...interface{}) error {
	return New(ErrUnsupported, msg, prm...)
}

// Limit returns an iteration-limit error
func Limit(msg string, prm ...interface{}) error {
	return New(ErrIterationLimit, msg, prm...)
}

// Domain returns a numeric-domain error
func Domain(msg string, prm ...interface{}) error {
	return New(ErrNumericDomain, msg, prm...)
}
