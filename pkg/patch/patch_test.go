package patch

import (
	"testing"
	"time"
)

func TestString(t *testing.T) {
	cases := []struct {
		name     string
		dst      string
		src      *string
		expected string
	}{
		{
			name:     "nil source keeps destination",
			dst:      "kept",
			src:      nil,
			expected: "kept",
		},
		{
			name:     "non-nil source overwrites",
			dst:      "old",
			src:      strptr("new"),
			expected: "new",
		},
		{
			name:     "empty string is a real value",
			dst:      "old",
			src:      strptr(""),
			expected: "",
		},
	}

	for _, c := range cases {
		dst := c.dst
		String(&dst, c.src)
		if dst != c.expected {
			t.Errorf("%s: expected %q, got %q", c.name, c.expected, dst)
		}
	}
}

func TestInt(t *testing.T) {
	dst := 42
	Int(&dst, nil)
	if dst != 42 {
		t.Errorf("expected 42, got %d", dst)
	}

	zero := 0
	Int(&dst, &zero)
	if dst != 0 {
		t.Errorf("expected 0, got %d", dst)
	}
}

func TestBool(t *testing.T) {
	dst := true
	Bool(&dst, nil)
	if !dst {
		t.Error("expected true to be kept")
	}

	f := false
	Bool(&dst, &f)
	if dst {
		t.Error("expected false to overwrite")
	}
}

func TestTime(t *testing.T) {
	original := time.Date(2025, 1, 1, 10, 0, 0, 0, time.UTC)
	dst := original

	Time(&dst, nil)
	if !dst.Equal(original) {
		t.Errorf("expected %v to be kept, got %v", original, dst)
	}

	updated := time.Date(2025, 6, 15, 9, 30, 0, 0, time.UTC)
	Time(&dst, &updated)
	if !dst.Equal(updated) {
		t.Errorf("expected %v, got %v", updated, dst)
	}
}

func strptr(s string) *string {
	return &s
}
