// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package model

import (
	"maps"
	"slices"
	"strconv"
)

// Setter validates a raw value and returns the assignment to run once the
// whole batch is known to be valid.
type Setter func(value string) (commit func(), err error)

// Setters maps the property names an entity declares to their setters.
type Setters map[string]Setter

// Apply assigns props through setters. Names are processed in sorted order
// and nothing is assigned unless every name and value is accepted.
func Apply(kind string, setters Setters, props map[string]string) error {
	names := slices.Sorted(maps.Keys(props))
	commits := make([]func(), 0, len(names))
	for _, name := range names {
		set, ok := setters[name]
		if !ok {
			return &PropertyError{Kind: kind, Name: name}
		}
		commit, err := set(props[name])
		if err != nil {
			return &PropertyError{Kind: kind, Name: name, Cause: err}
		}
		commits = append(commits, commit)
	}
	for _, commit := range commits {
		commit()
	}
	return nil
}

// String assigns the raw value to dst.
func String(dst *string) Setter {
	return func(v string) (func(), error) {
		return func() { *dst = v }, nil
	}
}

// Bool parses the value with strconv.ParseBool.
func Bool(dst *bool) Setter {
	return func(v string) (func(), error) {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return nil, err
		}
		return func() { *dst = b }, nil
	}
}

// Float parses the value as a float64. An empty value clears dst.
func Float(dst **float64) Setter {
	return func(v string) (func(), error) {
		if v == "" {
			return func() { *dst = nil }, nil
		}
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return nil, err
		}
		return func() { *dst = &f }, nil
	}
}
