package tmx

import (
	"errors"
	"testing"
)

func TestParsePoints(t *testing.T) {
	points, err := ParsePoints("0,0 16,-8 -4.5,2.25")
	if err != nil {
		t.Fatalf("ParsePoints: %v", err)
	}
	want := []Point{{0, 0}, {16, -8}, {-4.5, 2.25}}
	if len(points) != len(want) {
		t.Fatalf("got %v", points)
	}
	for i := range want {
		if points[i] != want[i] {
			t.Errorf("point %d = %v, want %v", i, points[i], want[i])
		}
	}
}

func TestParsePointsMalformed(t *testing.T) {
	points, err := ParsePoints("0,0 bogus 8,8 1,x")
	if !errors.Is(err, ErrInvalidPointFormat) {
		t.Errorf("got %v, want ErrInvalidPointFormat", err)
	}
	if len(points) != 2 || points[1] != (Point{8, 8}) {
		t.Errorf("points = %v, want the two valid pairs", points)
	}
}

func TestObjectKindString(t *testing.T) {
	if got := ObjectPolyline.String(); got != "polyline" {
		t.Errorf("String() = %q", got)
	}
	if got := ObjectKind(99).String(); got != "unknown" {
		t.Errorf("String() = %q", got)
	}
}
