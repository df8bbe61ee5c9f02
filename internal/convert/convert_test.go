package convert

import "testing"

func TestTimeToSeconds(t *testing.T) {
	tests := []struct {
		input   string
		want    int
		wantErr bool
	}{
		{"1:43:21", 6201, false},
		{"43:21", 2601, false},
		{"0:59", 59, false},
		{"1h 20m", 4800, false},
		{"2h", 7200, false},
		{"90m", 5400, false},
		{"45s", 45, false},
		{"1h 20m 5s", 4805, false},
		{"120", 120, false},
		{"", 0, true},
		{"abc", 0, true},
		{"1:99:99", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := TimeToSeconds(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("TimeToSeconds(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("TimeToSeconds(%q) = %d, want %d", tt.input, got, tt.want)
			}
		})
	}
}

func TestSizeToBytes(t *testing.T) {
	tests := []struct {
		input   string
		want    int64
		wantErr bool
	}{
		{"1 B", 1, false},
		{"512 KB", 512 << 10, false},
		{"700 MB", 700 << 20, false},
		{"1.2 GB", 1288490188, false},
		{"1,2 GB", 1288490188, false},
		{"2 TB", 2 << 40, false},
		{"1.5GB", 1610612736, false},
		{"", 0, true},
		{"big", 0, true},
		{"1.2 XB", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := SizeToBytes(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("SizeToBytes(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("SizeToBytes(%q) = %d, want %d", tt.input, got, tt.want)
			}
		})
	}
}
