package cli

import "testing"

func TestRenderBasePath(t *testing.T) {
	tests := []struct {
		name   string
		output string
		input  string
		want   string
	}{
		{"derived strips plan suffix", "", "photos.plan.json", "photos"},
		{"derived strips extension only", "", "wall.json", "wall"},
		{"output with format extension", "out.png", "photos.plan.json", "out"},
		{"output with jpg extension", "out.jpg", "photos.plan.json", "out"},
		{"output without extension kept", "renders/wall", "photos.plan.json", "renders/wall"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := renderBasePath(tt.output, tt.input)
			if got != tt.want {
				t.Errorf("renderBasePath(%q, %q) = %q, want %q", tt.output, tt.input, got, tt.want)
			}
		})
	}
}

func TestFormatExt(t *testing.T) {
	if got := formatExt("png"); got != "png" {
		t.Errorf("formatExt(png) = %q, want png", got)
	}
	if got := formatExt("jpeg"); got != "jpg" {
		t.Errorf("formatExt(jpeg) = %q, want jpg", got)
	}
}
