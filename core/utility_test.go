package core

import "testing"

func TestSafeStrings(t *testing.T) {
	safe := safeStrings([]string{"VK_KHR_surface", "VK_EXT_debug_report"})
	for _, s := range safe {
		if s[len(s)-1] != '\x00' {
			t.Errorf("%q is not null terminated", s)
		}
	}
	if len(safe) != 2 {
		t.Errorf("got %d entries, want 2", len(safe))
	}
}
