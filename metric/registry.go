// SPDX-License-Identifier: MIT
package metric

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

var registry = map[string]Metric{
	"euclidean":         Euclidean{},
	"squared-euclidean": SquaredEuclidean{},
	"manhattan":         Manhattan{},
	"chebyshev":         Chebyshev{},
	"cosine":            Cosine{},
	"hamming":           Hamming{},
	"dtw":               DTW{},
}

// ByName looks up a metric by its case-insensitive name.
// Parameterised metrics are spelled "minkowski:<p>" (e.g. "minkowski:3")
// and "dtw:<window>" (Sakoe–Chiba band, e.g. "dtw:2").
func ByName(name string) (Metric, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	if m, ok := registry[key]; ok {
		return m, nil
	}
	if rest, ok := strings.CutPrefix(key, "minkowski:"); ok {
		p, err := strconv.ParseFloat(rest, 64)
		if err != nil {
			return nil, fmt.Errorf("%q: %w", name, ErrInvalidParameter)
		}
		mk, err := NewMinkowski(p)
		if err != nil {
			return nil, err
		}

		return mk, nil
	}

	if rest, ok := strings.CutPrefix(key, "dtw:"); ok {
		w, err := strconv.Atoi(rest)
		if err != nil || w < 0 {
			return nil, fmt.Errorf("%q: %w", name, ErrInvalidParameter)
		}

		return DTW{Window: w}, nil
	}

	return nil, fmt.Errorf("%q: %w", name, ErrUnknownMetric)
}

// Names lists the registered metric names in sorted order.
func Names() []string {
	out := make([]string, 0, len(registry)+2)
	for k := range registry {
		out = append(out, k)
	}
	out = append(out, "minkowski:<p>", "dtw:<window>")
	sort.Strings(out)

	return out
}
