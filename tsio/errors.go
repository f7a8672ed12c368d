// SPDX-License-Identifier: MIT
// Package: tsio
//
// errors.go — sentinel errors for matrix and ensemble I/O.

package tsio

import "errors"

var (
	// ErrMalformedCSV indicates ragged rows, empty input or a non-numeric cell.
	ErrMalformedCSV = errors.New("tsio: malformed CSV")

	// ErrNotVector indicates a CSV vector with more than one row and column.
	ErrNotVector = errors.New("tsio: CSV is not a vector")

	// ErrBadMagic indicates an input that is not an ensemble archive.
	ErrBadMagic = errors.New("tsio: not an ensemble archive")

	// ErrUnsupportedVersion indicates an archive written by a newer format.
	ErrUnsupportedVersion = errors.New("tsio: unsupported archive version")

	// ErrTruncated indicates an archive shorter than its header announces.
	ErrTruncated = errors.New("tsio: truncated archive")

	// ErrBadHeader indicates header dimensions that are zero or whose
	// payload would exceed the archive size limit.
	ErrBadHeader = errors.New("tsio: archive header dimensions out of range")

	// ErrChecksum indicates a payload whose xxhash64 does not match.
	ErrChecksum = errors.New("tsio: checksum mismatch")
)
