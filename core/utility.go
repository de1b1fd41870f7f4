package core

import "fmt"

func safeString(s string) string {
	return fmt.Sprintf("%s\x00", s)
}

// safeStrings null-terminates every entry the way the C side of the
// driver expects them.
func safeStrings(sgs []string) []string {
	safe := []string{}
	for _, s := range sgs {
		safe = append(safe, safeString(s))
	}
	return safe
}
