package semver

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/aseprite-tools/asepack/internal/domain"
)

// Method selects which version component a bump mutates.
type Method int

const (
	// MethodNone performs no mutation
	MethodNone Method = iota
	// MethodMajor bumps the first component
	MethodMajor
	// MethodMinor bumps the second component
	MethodMinor
	// MethodPatch bumps the third component
	MethodPatch
	// MethodIncrement bumps the fourth component
	MethodIncrement
)

// BumpMethods lists the methods accepted by the publish command.
var BumpMethods = []string{"major", "minor", "patch", "increment", "none"}

// ParseMethod maps a method name to its Method. Names are matched
// case-insensitively.
func ParseMethod(s string) (Method, error) {
	switch strings.ToLower(s) {
	case "none":
		return MethodNone, nil
	case "major":
		return MethodMajor, nil
	case "minor":
		return MethodMinor, nil
	case "patch":
		return MethodPatch, nil
	case "increment":
		return MethodIncrement, nil
	default:
		return MethodNone, domain.NewUsageError("increment method", s, BumpMethods)
	}
}

// String returns the method name
func (m Method) String() string {
	switch m {
	case MethodMajor:
		return "major"
	case MethodMinor:
		return "minor"
	case MethodPatch:
		return "patch"
	case MethodIncrement:
		return "increment"
	default:
		return "none"
	}
}

// Rank returns the zero-based index of the component the method bumps,
// or -1 for MethodNone.
func (m Method) Rank() int {
	switch m {
	case MethodMajor:
		return 0
	case MethodMinor:
		return 1
	case MethodPatch:
		return 2
	case MethodIncrement:
		return 3
	default:
		return -1
	}
}

// Version is an ordered sequence of non-negative integer components.
type Version []int

// Parse parses a dotted-decimal version string like "1.2.3" or "1.2.3.4".
// Anything other than dot-separated non-negative integers is rejected.
func Parse(s string) (Version, error) {
	if s == "" {
		return nil, fmt.Errorf("%w: empty string", domain.ErrInvalidVersion)
	}

	parts := strings.Split(s, ".")
	v := make(Version, len(parts))
	for i, part := range parts {
		n, err := strconv.Atoi(part)
		// canonical form only: no sign, no whitespace, no leading zeros
		if err != nil || n < 0 || part != strconv.Itoa(n) {
			return nil, fmt.Errorf("%w: %q", domain.ErrInvalidVersion, s)
		}
		v[i] = n
	}
	return v, nil
}

// String returns the dotted-decimal form
func (v Version) String() string {
	parts := make([]string, len(v))
	for i, n := range v {
		parts[i] = strconv.Itoa(n)
	}
	return strings.Join(parts, ".")
}

// Bump returns a new version with the method's component incremented by one
// and every subordinate component reset to zero. MethodNone returns an
// unchanged copy. A version shorter than the bumped rank is extended with
// zero components first, so "1.2.3" bumped with increment becomes "1.2.3.1".
func (v Version) Bump(m Method) Version {
	out := make(Version, len(v))
	copy(out, v)

	idx := m.Rank()
	if idx < 0 {
		return out
	}

	for len(out) <= idx {
		out = append(out, 0)
	}

	out[idx]++
	for i := idx + 1; i < len(out); i++ {
		out[i] = 0
	}
	return out
}
