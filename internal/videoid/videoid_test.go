package videoid

import "testing"

func TestParse(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
		ok    bool
	}{
		{
			name:  "full watch URL",
			input: "https://www.youtube.com/watch?v=dQw4w9WgXcQ",
			want:  "dQw4w9WgXcQ",
			ok:    true,
		},
		{
			name:  "watch URL with extra query parameters",
			input: "https://www.youtube.com/watch?v=dQw4w9WgXcQ&t=42s&list=PL123",
			want:  "dQw4w9WgXcQ",
			ok:    true,
		},
		{
			name:  "short link",
			input: "https://youtu.be/dQw4w9WgXcQ",
			want:  "dQw4w9WgXcQ",
			ok:    true,
		},
		{
			name:  "short link with query string",
			input: "https://youtu.be/dQw4w9WgXcQ?si=abc123",
			want:  "dQw4w9WgXcQ",
			ok:    true,
		},
		{
			name:  "bare 11-character ID",
			input: "dQw4w9WgXcQ",
			want:  "dQw4w9WgXcQ",
			ok:    true,
		},
		{
			name:  "channel URL is not a video reference",
			input: "https://www.youtube.com/@somechannel",
			ok:    false,
		},
		{
			name:  "random short string",
			input: "hello",
			ok:    false,
		},
		{
			name:  "empty string",
			input: "",
			ok:    false,
		},
		{
			name:  "watch URL with empty v parameter",
			input: "https://www.youtube.com/watch?v=&t=1s",
			ok:    false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Parse(tt.input)
			if ok != tt.ok {
				t.Fatalf("Parse(%q) ok = %v, want %v", tt.input, ok, tt.ok)
			}
			if ok && got != tt.want {
				t.Errorf("Parse(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}
