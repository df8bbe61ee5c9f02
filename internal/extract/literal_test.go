package extract

import "testing"

func TestParseObjectArray(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    []map[string]string
		wantErr bool
	}{
		{
			name:  "double quoted",
			input: `[{"file": "a.mp4", "label": "720p"}]`,
			want:  []map[string]string{{"file": "a.mp4", "label": "720p"}},
		},
		{
			name:  "unquoted keys single quotes",
			input: `[{file: 'a.mp4', type: 'video/mp4'}]`,
			want:  []map[string]string{{"file": "a.mp4", "type": "video/mp4"}},
		},
		{
			name:  "multiple objects",
			input: `[{file: "a"}, {file: "b"}]`,
			want:  []map[string]string{{"file": "a"}, {"file": "b"}},
		},
		{
			name:  "trailing commas",
			input: `[{file: "a",}, ]`,
			want:  []map[string]string{{"file": "a"}},
		},
		{
			name:  "bare scalars",
			input: `[{default: true, index: 0}]`,
			want:  []map[string]string{{"default": "true", "index": "0"}},
		},
		{
			name:  "escaped quote",
			input: `[{label: "say \"hi\""}]`,
			want:  []map[string]string{{"label": `say "hi"`}},
		},
		{
			name:  "nested value skipped",
			input: `[{config: {a: 1}, file: "a.mp4"}]`,
			want:  []map[string]string{{"config": "", "file": "a.mp4"}},
		},
		{
			name:  "empty array",
			input: `[]`,
			want:  nil,
		},
		{name: "not an array", input: `{file: "a"}`, wantErr: true},
		{name: "unterminated array", input: `[{file: "a"}`, wantErr: true},
		{name: "unterminated string", input: `[{file: "a}]`, wantErr: true},
		{name: "missing colon", input: `[{file "a"}]`, wantErr: true},
		{name: "trailing garbage", input: `[{file: "a"}]; var x = 1`, wantErr: true},
		{name: "function call", input: `[{file: alert(1)}]`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseObjectArray(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("parseObjectArray() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil {
				return
			}
			if len(got) != len(tt.want) {
				t.Fatalf("got %d objects, want %d", len(got), len(tt.want))
			}
			for i := range tt.want {
				for k, v := range tt.want[i] {
					if got[i][k] != v {
						t.Errorf("object %d key %q = %q, want %q", i, k, got[i][k], v)
					}
				}
			}
		})
	}
}
