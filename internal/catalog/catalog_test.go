package catalog

import (
	"testing"
	"time"
)

func TestNew_Length(t *testing.T) {
	c := New(time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC))
	if c.Len() != 5 {
		t.Fatalf("Len = %d, want 5", c.Len())
	}
}

func TestNew_YearBoundsFollowClock(t *testing.T) {
	c := New(time.Date(2030, 12, 31, 23, 0, 0, 0, time.UTC))
	q := c.At(3)

	if !q.HasMin() || *q.Min != 1930 {
		t.Errorf("Min = %v, want 1930", q.Min)
	}
	if !q.HasMax() || *q.Max != 2030 {
		t.Errorf("Max = %v, want 2030", q.Max)
	}
	if q.Hint != "예: 2010 (1930 ~ 2030)" {
		t.Errorf("Hint = %q", q.Hint)
	}
}

func TestNew_FixedBounds(t *testing.T) {
	c := New(time.Now())

	tests := []struct {
		idx      int
		min, max *int
	}{
		{0, nil, nil},
		{1, intPtr(1), intPtr(10)},
		{2, nil, nil},
		{4, intPtr(1), intPtr(150)},
	}

	for _, tt := range tests {
		q := c.At(tt.idx)
		if !sameBound(q.Min, tt.min) || !sameBound(q.Max, tt.max) {
			t.Errorf("question %d bounds = %s, want %v..%v", tt.idx, q.BoundsString(), deref(tt.min), deref(tt.max))
		}
	}
}

func TestAll_ReturnsCopy(t *testing.T) {
	c := New(time.Now())
	all := c.All()
	all[0].Prompt = "changed"
	if c.At(0).Prompt == "changed" {
		t.Error("All() should not expose the internal slice")
	}
}

func TestBoundsString(t *testing.T) {
	tests := []struct {
		q    Question
		want string
	}{
		{Question{}, "-"},
		{Question{Min: intPtr(1), Max: intPtr(10)}, "1 ~ 10"},
		{Question{Min: intPtr(3)}, "3 ~"},
		{Question{Max: intPtr(7)}, "~ 7"},
	}
	for _, tt := range tests {
		if got := tt.q.BoundsString(); got != tt.want {
			t.Errorf("BoundsString() = %q, want %q", got, tt.want)
		}
	}
}

func sameBound(a, b *int) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

func deref(p *int) any {
	if p == nil {
		return "nil"
	}
	return *p
}
