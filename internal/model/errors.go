// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package model

import (
	"errors"
	"strings"
)

var (
	// ErrUnconfiguredProperty indicates a property the entity does not declare.
	ErrUnconfiguredProperty = errors.New("nexgraph: unconfigured property")
	// ErrInvalidProperty indicates a declared property given an unusable value.
	ErrInvalidProperty = errors.New("nexgraph: invalid property value")
)

// PropertyError reports a rejected property assignment.
type PropertyError struct {
	Kind  string // entity kind, e.g. "otu"
	Name  string // property name
	Cause error  // set when the value, not the name, was rejected
}

// Error implements the error interface.
func (e *PropertyError) Error() string {
	var b strings.Builder
	b.WriteString("nexgraph: ")
	if e.Cause == nil {
		b.WriteString("unconfigured property ")
	} else {
		b.WriteString("invalid value for property ")
	}
	b.WriteString(e.Name)
	if e.Kind != "" {
		b.WriteString(" on ")
		b.WriteString(e.Kind)
	}
	if e.Cause != nil {
		b.WriteString(": ")
		b.WriteString(e.Cause.Error())
	}
	return b.String()
}

// Unwrap returns the underlying error.
func (e *PropertyError) Unwrap() error {
	return e.Cause
}

// Is reports whether target is the sentinel matching this error.
func (e *PropertyError) Is(target error) bool {
	if e.Cause == nil {
		return target == ErrUnconfiguredProperty
	}
	return target == ErrInvalidProperty
}

// IsUnconfiguredProperty reports whether err is or wraps ErrUnconfiguredProperty.
func IsUnconfiguredProperty(err error) bool {
	return errors.Is(err, ErrUnconfiguredProperty)
}
