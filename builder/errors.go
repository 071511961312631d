// SPDX-License-Identifier: MIT
// Package: valveplan/builder
//
// errors.go - sentinel errors for constructors.

package builder

import "errors"

// ErrTooFewVertices indicates that a size parameter is below the
// constructor minimum.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrInvalidProbability indicates p outside [0, 1].
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrNeedRandSource indicates a stochastic constructor without an RNG.
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrConstructFailed indicates a malformed constructor list.
var ErrConstructFailed = errors.New("builder: construction failed")
