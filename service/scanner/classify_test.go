package scanner

import (
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
)

func TestBoundaryName(t *testing.T) {
	tests := []struct {
		name     string
		arn      string
		expected string
	}{
		{
			name:     "standard policy arn",
			arn:      "arn:aws:iam::123456789012:policy/syf-Sandbox-permission-boundary",
			expected: "syf-Sandbox-permission-boundary",
		},
		{
			name:     "nested policy path",
			arn:      "arn:aws:iam::123456789012:policy/team/sandbox/guard",
			expected: "guard",
		},
		{
			name:     "no path separator",
			arn:      "guard",
			expected: "guard",
		},
		{
			name:     "empty",
			arn:      "",
			expected: "",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := BoundaryName(tc.arn); got != tc.expected {
				t.Fatalf("expected %q, got %q", tc.expected, got)
			}
		})
	}
}

func TestMatches(t *testing.T) {
	tests := []struct {
		name     string
		arn      *string
		target   string
		expected bool
	}{
		{
			name:     "nil reference never matches",
			arn:      nil,
			target:   "X",
			expected: false,
		},
		{
			name:     "exact short name match",
			arn:      aws.String("arn:aws:iam::123456789012:policy/X"),
			target:   "X",
			expected: true,
		},
		{
			name:     "different short name",
			arn:      aws.String("arn:aws:iam::123456789012:policy/Y"),
			target:   "X",
			expected: false,
		},
		{
			name:     "comparison is case-sensitive",
			arn:      aws.String("arn:aws:iam::123456789012:policy/x"),
			target:   "X",
			expected: false,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := Matches(tc.arn, tc.target); got != tc.expected {
				t.Fatalf("expected %v, got %v", tc.expected, got)
			}
		})
	}
}
