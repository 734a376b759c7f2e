// SPDX-License-Identifier: MIT
package dataset

import "errors"

var (
	// ErrEmpty signals a dataset without rows or without columns.
	ErrEmpty = errors.New("dataset: no samples")

	// ErrRagged signals rows of different lengths.
	ErrRagged = errors.New("dataset: rows have different lengths")

	// ErrKindCount signals that WithKinds does not name one kind per column.
	ErrKindCount = errors.New("dataset: kind count does not match column count")

	// ErrParse signals a non-numeric or non-finite CSV field.
	ErrParse = errors.New("dataset: invalid numeric field")
)
