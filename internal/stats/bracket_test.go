package stats

import "testing"

func TestBracketFor_Boundaries(t *testing.T) {
	cases := []struct {
		percentile int
		want       string
	}{
		{100, "Exceptional"},
		{95, "Exceptional"},
		{94, "Advanced"},
		{85, "Advanced"},
		{84, "Proficient"},
		{70, "Proficient"},
		{69, "Average"},
		{40, "Average"},
		{39, "Developing"},
		{20, "Developing"},
		{19, "Beginner"},
		{0, "Beginner"},
	}
	for _, c := range cases {
		if got := BracketFor(c.percentile).Name; got != c.want {
			t.Errorf("BracketFor(%d) = %q, want %q", c.percentile, got, c.want)
		}
	}
}

func TestBracketFor_NoGaps(t *testing.T) {
	for p := 0; p <= 100; p++ {
		b := BracketFor(p)
		if b.Name == "" || b.ColorTag == "" || b.Description == "" {
			t.Fatalf("BracketFor(%d) returned incomplete bracket: %+v", p, b)
		}
	}
}
