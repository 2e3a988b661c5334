package timeline

import "testing"

func TestClampScale(t *testing.T) {
	tests := []struct {
		name  string
		scale int
		want  int
	}{
		{"below minimum", 2, MinPixelsPerDay},
		{"zero", 0, MinPixelsPerDay},
		{"negative", -8, MinPixelsPerDay},
		{"at minimum", MinPixelsPerDay, MinPixelsPerDay},
		{"in range", 12, 12},
		{"at maximum", MaxPixelsPerDay, MaxPixelsPerDay},
		{"above maximum", 100, MaxPixelsPerDay},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ClampScale(tt.scale); got != tt.want {
				t.Errorf("ClampScale(%d) = %d, want %d", tt.scale, got, tt.want)
			}
		})
	}
}

func TestZoomScale(t *testing.T) {
	tests := []struct {
		name  string
		scale int
		dir   ZoomDirection
		want  int
	}{
		{"zoom in", 8, ZoomIn, 12},
		{"zoom out", 8, ZoomOut, 4},
		{"zoom in at maximum", MaxPixelsPerDay, ZoomIn, MaxPixelsPerDay},
		{"zoom out at minimum", MinPixelsPerDay, ZoomOut, MinPixelsPerDay},
		{"zoom in near maximum", MaxPixelsPerDay - 2, ZoomIn, MaxPixelsPerDay},
		{"zoom out near minimum", MinPixelsPerDay + 2, ZoomOut, MinPixelsPerDay},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ZoomScale(tt.scale, tt.dir); got != tt.want {
				t.Errorf("ZoomScale(%d, %v) = %d, want %d", tt.scale, tt.dir, got, tt.want)
			}
		})
	}
}

func TestZoomLadder(t *testing.T) {
	// Zooming in repeatedly walks the full ladder and then sticks.
	scale := MinPixelsPerDay
	for i := 0; i < 20; i++ {
		scale = ZoomScale(scale, ZoomIn)
	}
	if scale != MaxPixelsPerDay {
		t.Errorf("scale after repeated zoom in = %d, want %d", scale, MaxPixelsPerDay)
	}

	for i := 0; i < 20; i++ {
		scale = ZoomScale(scale, ZoomOut)
	}
	if scale != MinPixelsPerDay {
		t.Errorf("scale after repeated zoom out = %d, want %d", scale, MinPixelsPerDay)
	}
}
