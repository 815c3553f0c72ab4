// SPDX-License-Identifier: MIT
// Package: woc/prune
//
// options.go - functional options and sentinel errors for Iteratively.

package prune

import (
	"errors"
	"fmt"
	"log/slog"
)

// Sentinel errors.
var (
	// ErrNilGraph is returned for a nil input graph.
	ErrNilGraph = errors.New("prune: graph is nil")

	// ErrWeightAttributeMissing is returned when weight thresholding meets an
	// edge without a numeric weight attribute.
	ErrWeightAttributeMissing = errors.New("prune: weight attribute for thresholding not present")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("prune: invalid option supplied")
)

const (
	// DefaultThreshold cuts vertices of degree 0 and 1.
	DefaultThreshold = 1
	// DefaultWeightKey is the edge metadata key read for weight thresholding.
	DefaultWeightKey = "weight"
)

// Option configures Iteratively.
type Option func(*options)

type options struct {
	threshold       int
	weightSet       bool
	weightThreshold float64
	weightKey       string
	logger          *slog.Logger
	err             error
}

// WithThreshold sets the degree at or below which vertices are cut.
// Negative values are an ErrOptionViolation.
func WithThreshold(t int) Option {
	return func(o *options) {
		if t < 0 {
			o.err = fmt.Errorf("%w: threshold cannot be negative (%d)", ErrOptionViolation, t)
			return
		}
		o.threshold = t
	}
}

// WithWeightThreshold enables edge culling: edges whose weight is <= w are cut.
func WithWeightThreshold(w float64) Option {
	return func(o *options) {
		o.weightSet = true
		o.weightThreshold = w
	}
}

// WithWeightKey sets the edge metadata key read by WithWeightThreshold.
// It has no effect unless a weight threshold is set.
func WithWeightKey(key string) Option {
	return func(o *options) {
		if key == "" {
			o.err = fmt.Errorf("%w: weight key is empty", ErrOptionViolation)
			return
		}
		o.weightKey = key
	}
}

// WithLogger receives per-round progress at Debug level.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l == nil {
			o.err = fmt.Errorf("%w: logger is nil", ErrOptionViolation)
			return
		}
		o.logger = l
	}
}

func buildOptions(opts []Option) (options, error) {
	o := options{
		threshold: DefaultThreshold,
		weightKey: DefaultWeightKey,
		logger:    slog.Default(),
	}
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return options{}, o.err
	}

	return o, nil
}
