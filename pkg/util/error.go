// pkg/util/error.go
// Copyright(c) 2022-2024 vice contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package util

import (
	"errors"
	"fmt"
	"strings"
)

// ErrorLogger accumulates input-validation errors while walking a nested
// structure (flights, stands, maintenance entries, ...), tracking a
// breadcrumb of what's currently being checked so that messages can name
// exactly where a problem was found. Validation never stops at the first
// error: every issue in a batch of input is surfaced together.
type ErrorLogger struct {
	hierarchy []string
	errors    []string
	sentinels []error
}

func (e *ErrorLogger) Push(s string) {
	e.hierarchy = append(e.hierarchy, s)
}

func (e *ErrorLogger) Pop() {
	e.hierarchy = e.hierarchy[:len(e.hierarchy)-1]
}

func (e *ErrorLogger) ErrorString(s string, args ...interface{}) {
	e.errors = append(e.errors, strings.Join(e.hierarchy, " / ")+": "+fmt.Sprintf(s, args...))
}

func (e *ErrorLogger) Error(err error) {
	e.errors = append(e.errors, strings.Join(e.hierarchy, " / ")+": "+err.Error())
}

// Errorf records a detailed message like ErrorString, while also
// remembering sentinel so that Combined()'s result satisfies
// errors.Is(combined, sentinel) for callers that need to distinguish
// which check failed rather than just display a message.
func (e *ErrorLogger) Errorf(sentinel error, format string, args ...interface{}) {
	e.errors = append(e.errors, strings.Join(e.hierarchy, " / ")+": "+fmt.Sprintf(format, args...))
	e.sentinels = append(e.sentinels, sentinel)
}

func (e *ErrorLogger) HaveErrors() bool {
	return len(e.errors) > 0
}

// Errors returns the accumulated messages in the order they were recorded.
func (e *ErrorLogger) Errors() []string {
	return e.errors
}

func (e *ErrorLogger) String() string {
	return strings.Join(e.errors, "\n")
}

// Combined returns a single error wrapping every accumulated message, or
// nil if nothing was recorded. The result satisfies errors.Is against any
// sentinel passed to Errorf.
func (e *ErrorLogger) Combined() error {
	if !e.HaveErrors() {
		return nil
	}
	msg := fmt.Errorf("%s", e.String())
	if len(e.sentinels) == 0 {
		return msg
	}
	return errors.Join(append([]error{msg}, e.sentinels...)...)
}
