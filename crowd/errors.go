// SPDX-License-Identifier: MIT
// Package: woc/crowd
//
// errors.go - sentinel errors of the crowd engine.
//
// Not-found conditions reuse core.ErrVertexNotFound so callers can branch on
// a single kind regardless of which layer detected the missing vertex.

package crowd

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidArgument is the kind of every caller-input error (bad m, k,
	// constructor options, nil graph).
	ErrInvalidArgument = errors.New("crowd: invalid argument")

	// ErrNilGraph is returned by New for a nil graph. It wraps ErrInvalidArgument.
	ErrNilGraph = fmt.Errorf("%w: graph is nil", ErrInvalidArgument)

	// ErrOptionViolation is returned by New when an Option is invalid.
	// It wraps ErrInvalidArgument.
	ErrOptionViolation = fmt.Errorf("%w: invalid option supplied", ErrInvalidArgument)

	// ErrStaleCache reports that the graph changed since the last snapshot and
	// ClearPathCache has not been called. Recoverable: clear and retry.
	ErrStaleCache = errors.New("crowd: graph modified externally; cached paths are obsolete, call ClearPathCache")

	// ErrCacheInvariant reports that an acknowledged refresh found non-empty caches.
	ErrCacheInvariant = errors.New("crowd: cache invariant violated")
)
