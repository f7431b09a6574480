package geometry

import "testing"

func TestNewBox_ClampsDegenerateDimensions(t *testing.T) {
	b := NewBox(10, 20, 0, -5)
	if b.Width != 1 || b.Height != 1 {
		t.Errorf("dimensions: got %dx%d, want 1x1", b.Width, b.Height)
	}
}

func TestIOU_Symmetric(t *testing.T) {
	a := NewBox(0, 0, 100, 100)
	b := NewBox(50, 50, 100, 100)

	if got, want := a.IOU(b), b.IOU(a); got != want {
		t.Errorf("IOU not symmetric: %f vs %f", got, want)
	}
}

func TestIOU_Self(t *testing.T) {
	b := NewBox(10, 10, 80, 40)
	if got := b.IOU(b); got != 1.0 {
		t.Errorf("IOU(b,b): got %f, want 1.0", got)
	}
}

func TestIOU_Disjoint(t *testing.T) {
	a := NewBox(0, 0, 50, 50)
	b := NewBox(100, 100, 50, 50)
	if got := a.IOU(b); got != 0 {
		t.Errorf("IOU of disjoint boxes: got %f, want 0", got)
	}
}

func TestIOU_PartialOverlap(t *testing.T) {
	// 50x50 overlap, union 100*100 + 100*100 - 2500 = 17500
	a := NewBox(0, 0, 100, 100)
	b := NewBox(50, 50, 100, 100)

	want := 2500.0 / 17500.0
	if got := a.IOU(b); got != want {
		t.Errorf("IOU: got %f, want %f", got, want)
	}
}

func TestInflate(t *testing.T) {
	b := NewBox(10, 10, 20, 20)
	got := b.Inflate(6, 1080, 1080)
	want := Box{Left: 4, Top: 4, Width: 32, Height: 32}
	if got != want {
		t.Errorf("Inflate: got %+v, want %+v", got, want)
	}
}

func TestInflate_ClampsToCanvas(t *testing.T) {
	b := NewBox(2, 2, 1070, 1070)
	got := b.Inflate(6, 1080, 1080)
	want := Box{Left: 0, Top: 0, Width: 1080, Height: 1080}
	if got != want {
		t.Errorf("Inflate near edges: got %+v, want %+v", got, want)
	}
}

func TestInflate_DoesNotMutateReceiver(t *testing.T) {
	b := NewBox(10, 10, 20, 20)
	_ = b.Inflate(6, 1080, 1080)
	if b != NewBox(10, 10, 20, 20) {
		t.Errorf("receiver mutated: %+v", b)
	}
}

func TestRectRoundTrip(t *testing.T) {
	b := NewBox(5, 6, 7, 8)
	if got := FromRect(b.Rect()); got != b {
		t.Errorf("round trip: got %+v, want %+v", got, b)
	}
}
