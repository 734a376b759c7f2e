// SPDX-License-Identifier: MIT
package tsne

import "errors"

var (
	// ErrInvalidConfig is returned by New when a parameter is out of range.
	// The wrapped message names every offending field.
	ErrInvalidConfig = errors.New("tsne: invalid configuration")

	// ErrInvalidArgument is returned by Embed for unusable input data,
	// e.g. columns whose kind the metric does not accept. It is raised
	// before any distance is computed.
	ErrInvalidArgument = errors.New("tsne: invalid argument")
)
