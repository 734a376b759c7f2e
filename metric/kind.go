// SPDX-License-Identifier: MIT
package metric

import (
	"fmt"
	"strings"
)

// Kind is the value type of one data column.
type Kind uint8

const (
	// Continuous columns hold arbitrary real values.
	Continuous Kind = iota
	// Discrete columns hold integral values (counts, ordinals).
	Discrete
	// Categorical columns hold label codes; only equality is meaningful.
	Categorical
)

func (k Kind) String() string {
	switch k {
	case Continuous:
		return "continuous"
	case Discrete:
		return "discrete"
	case Categorical:
		return "categorical"
	default:
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
}

// KindSet is a bit set of Kinds.
type KindSet uint8

// Kinds builds a KindSet from its members.
func Kinds(ks ...Kind) KindSet {
	var s KindSet
	for _, k := range ks {
		s |= 1 << k
	}

	return s
}

// Has reports whether k is a member of s.
func (s KindSet) Has(k Kind) bool { return s&(1<<k) != 0 }

func (s KindSet) String() string {
	parts := make([]string, 0, 3)
	for _, k := range []Kind{Continuous, Discrete, Categorical} {
		if s.Has(k) {
			parts = append(parts, k.String())
		}
	}

	return "{" + strings.Join(parts, ",") + "}"
}

// CheckKinds verifies every column kind is accepted by m.
// The returned error wraps ErrIncompatible and names the first offending column.
func CheckKinds(kinds []Kind, m Metric) error {
	if m == nil {
		return ErrNilMetric
	}
	accepted := m.Compatibility()
	for col, k := range kinds {
		if !accepted.Has(k) {
			return fmt.Errorf("%s: column %d is %s, accepts %s: %w",
				m.Name(), col, k, accepted, ErrIncompatible)
		}
	}

	return nil
}
