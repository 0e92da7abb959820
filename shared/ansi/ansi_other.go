//go:build !windows

package ansi

// EnableANSI does nothing outside Windows; terminals there handle escape
// sequences natively.
func EnableANSI() {}
