package strategy

import "testing"

func TestDepthPriority(t *testing.T) {
	tests := []struct {
		path string
		want float64
	}{
		{"/", 1.0},
		{"", 1.0},
		{"/a", 0.8},
		{"/blog", 0.8},
		{"/a/b", 0.6},
		{"/blog/post", 0.6},
		{"/a/b/c", 0.4},
		{"/a/b/c/d", 0.4},
		{"/blog/", 0.8},
		{"/blog/post/", 0.6},
	}

	for _, tt := range tests {
		if got := DepthPriority(tt.path); got != tt.want {
			t.Errorf("DepthPriority(%q) = %v, want %v", tt.path, got, tt.want)
		}
	}
}
