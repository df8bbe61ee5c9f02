package resolver

import (
	"testing"

	"prehrajto/internal/media"
)

var gib = float64(1 << 30)

func TestFormatDisplayTitle(t *testing.T) {
	tests := []struct {
		name   string
		result media.SearchResult
		want   string
	}{
		{
			name: "full result",
			result: media.SearchResult{
				Title:    "Matrix (1999)",
				Duration: 2*3600 + 16*60 + 18,
				Size:     int64(1.4 * gib),
				Format:   "mkv",
			},
			want: "Matrix (1999)  2:16:18  1.4 GB  MKV",
		},
		{
			name: "short clip without format",
			result: media.SearchResult{
				Title:    "Trailer",
				Duration: 95,
				Size:     700 << 20,
			},
			want: "Trailer  1:35  700 MB",
		},
		{
			name:   "bare title",
			result: media.SearchResult{Title: "Unknown"},
			want:   "Unknown",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatDisplayTitle(tt.result); got != tt.want {
				t.Errorf("FormatDisplayTitle() = %q, want %q", got, tt.want)
			}
		})
	}
}
