// SPDX-License-Identifier: MIT
package metric

import "errors"

var (
	// ErrIncompatible signals that a column's value kind is not accepted by the metric.
	ErrIncompatible = errors.New("metric: data kind not compatible with metric")

	// ErrUnknownMetric is returned by ByName for unregistered names.
	ErrUnknownMetric = errors.New("metric: unknown metric")

	// ErrNilMetric signals that a nil Metric was supplied.
	ErrNilMetric = errors.New("metric: nil metric")

	// ErrInvalidParameter signals a bad metric parameter (e.g. Minkowski p < 1).
	ErrInvalidParameter = errors.New("metric: invalid parameter")
)
