package spline

import (
	"fmt"
	"strings"
)

// Policy controls how control points react to edits.
type Policy int

const (
	// PolicyFree moves controls with their anchor and leaves them alone otherwise.
	PolicyFree Policy = iota
	// PolicyTangent additionally mirrors the opposite control when a control moves,
	// keeping the curve tangent continuous through the anchor.
	PolicyTangent
	// PolicyAutoSmooth derives every control from the neighboring anchors.
	// Controls cannot be moved directly.
	PolicyAutoSmooth
)

var policyNames = map[Policy]string{
	PolicyFree:       "free",
	PolicyTangent:    "tangent",
	PolicyAutoSmooth: "auto-smooth",
}

func (p Policy) String() string {
	if name, ok := policyNames[p]; ok {
		return name
	}
	return fmt.Sprintf("Policy(%d)", int(p))
}

// ParsePolicy parses a policy name as produced by [Policy.String].
func ParsePolicy(s string) (Policy, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for p, n := range policyNames {
		if n == name {
			return p, nil
		}
	}
	switch name {
	case "", "default":
		return PolicyFree, nil
	case "auto", "autosmooth", "auto_smooth":
		return PolicyAutoSmooth, nil
	}
	return PolicyFree, fmt.Errorf("unknown control point policy %q", s)
}
