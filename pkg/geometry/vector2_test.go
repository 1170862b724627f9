package geometry

import (
	"math"
	"testing"
)

func TestVector2Add(t *testing.T) {
	v1 := NewVector2(1, 2)
	v2 := NewVector2(4, 5)
	result := v1.Add(v2)

	expected := NewVector2(5, 7)
	if result != expected {
		t.Errorf("Add failed: expected %v, got %v", expected, result)
	}
}

func TestVector2Sub(t *testing.T) {
	v1 := NewVector2(5, 7)
	v2 := NewVector2(1, 2)
	result := v1.Sub(v2)

	expected := NewVector2(4, 5)
	if result != expected {
		t.Errorf("Sub failed: expected %v, got %v", expected, result)
	}
}

func TestVector2Scale(t *testing.T) {
	result := NewVector2(1.5, -2).Scale(2)

	expected := NewVector2(3, -4)
	if result != expected {
		t.Errorf("Scale failed: expected %v, got %v", expected, result)
	}
}

func TestVector2Length(t *testing.T) {
	v := NewVector2(3, 4)
	length := v.Length()

	expected := 5.0
	if math.Abs(length-expected) > 1e-10 {
		t.Errorf("Length failed: expected %v, got %v", expected, length)
	}
}

func TestVector2Distance(t *testing.T) {
	v1 := NewVector2(0, 0)
	v2 := NewVector2(3, 4)
	distance := v1.Distance(v2)

	expected := 5.0
	if math.Abs(distance-expected) > 1e-10 {
		t.Errorf("Distance failed: expected %v, got %v", expected, distance)
	}
}

func TestVector2Normalize(t *testing.T) {
	v := NewVector2(3, 4)
	normalized := v.Normalize()

	if math.Abs(normalized.Length()-1.0) > 1e-10 {
		t.Errorf("Normalize failed: expected length 1, got %v", normalized.Length())
	}

	zero := Vector2{}.Normalize()
	if zero != (Vector2{}) {
		t.Errorf("Normalize of zero vector failed: expected %v, got %v", Vector2{}, zero)
	}
}

func TestVector2DotAndCross(t *testing.T) {
	v1 := NewVector2(1, 2)
	v2 := NewVector2(3, 4)

	if dot := v1.Dot(v2); math.Abs(dot-11) > 1e-10 {
		t.Errorf("Dot failed: expected 11, got %v", dot)
	}
	if cross := v1.Cross(v2); math.Abs(cross+2) > 1e-10 {
		t.Errorf("Cross failed: expected -2, got %v", cross)
	}
	if perp := v1.Perp(); perp.Dot(v1) != 0 {
		t.Errorf("Perp failed: %v is not orthogonal to %v", perp, v1)
	}
}

func TestVector2Lerp(t *testing.T) {
	v1 := NewVector2(0, 0)
	v2 := NewVector2(2, 4)

	mid := v1.Lerp(v2, 0.5)
	expected := NewVector2(1, 2)
	if mid != expected {
		t.Errorf("Lerp failed: expected %v, got %v", expected, mid)
	}
}

func TestVector2IsFinite(t *testing.T) {
	if !NewVector2(1, 2).IsFinite() {
		t.Error("IsFinite failed: expected finite vector")
	}
	if NewVector2(math.NaN(), 0).IsFinite() {
		t.Error("IsFinite failed: NaN component reported as finite")
	}
	if NewVector2(0, math.Inf(1)).IsFinite() {
		t.Error("IsFinite failed: Inf component reported as finite")
	}
}
