package canvas

import (
	"image/color"
	"testing"
)

func TestParseColor(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    color.RGBA
		wantErr bool
	}{
		{"named", "blue", color.RGBA{0, 0, 255, 255}, false},
		{"named with space", "sea green", color.RGBA{46, 139, 87, 255}, false},
		{"named mixed case", "DarkOrange", color.RGBA{255, 140, 0, 255}, false},
		{"hex6", "#66ccff", color.RGBA{0x66, 0xcc, 0xff, 0xff}, false},
		{"hex3", "#fff", color.RGBA{0xff, 0xff, 0xff, 0xff}, false},
		{"empty", "", color.RGBA{}, true},
		{"bad hex", "#12345", color.RGBA{}, true},
		{"bad hex digits", "#zzzzzz", color.RGBA{}, true},
		{"unknown", "ultraviolet", color.RGBA{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseColor(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseColor(%q) err = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if !tt.wantErr && got != tt.want {
				t.Errorf("ParseColor(%q) = %+v, want %+v", tt.in, got, tt.want)
			}
		})
	}
}
