package sanitization

import "testing"

func TestSanitizeText(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"hello world", "hello world"},
		{"  hello   world  ", "hello world"},
		{"line\nbreaks\tand\ttabs", "line breaks and tabs"},
		{"", ""},
		{"   ", ""},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := SanitizeText(tt.in); got != tt.want {
				t.Errorf("SanitizeText(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestSanitizeEmail(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Jane@X.Com", "jane@x.com"},
		{"  jane@x.com ", "jane@x.com"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := SanitizeEmail(tt.in); got != tt.want {
				t.Errorf("SanitizeEmail(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestSanitizeName(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Jane Doe", "Jane Doe"},
		{"Jane\x00Doe", "JaneDoe"},
		{"  Jane   Doe ", "Jane Doe"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := SanitizeName(tt.in); got != tt.want {
				t.Errorf("SanitizeName(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}
