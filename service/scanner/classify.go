package scanner

import "strings"

// BoundaryName extracts the short name of a boundary policy, the trailing
// path segment of its ARN.
func BoundaryName(boundaryARN string) string {
	if idx := strings.LastIndex(boundaryARN, "/"); idx >= 0 {
		return boundaryARN[idx+1:]
	}
	return boundaryARN
}

// Matches reports whether the role's boundary reference names the target
// boundary. The comparison is case-sensitive; a role with no boundary
// attached never matches.
func Matches(boundaryARN *string, target string) bool {
	if boundaryARN == nil {
		return false
	}
	return BoundaryName(*boundaryARN) == target
}
