package storage

import "testing"

func TestNormalizeEndpoint(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"localhost:9000", "localhost:9000"},
		{"http://localhost:9000/", "localhost:9000"},
		{"https://acct.r2.cloudflarestorage.com/bucket/path", "acct.r2.cloudflarestorage.com"},
		{"", ""},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := normalizeEndpoint(tt.in); got != tt.want {
				t.Errorf("normalizeEndpoint(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestDetectStorageType(t *testing.T) {
	tests := map[string]StorageType{
		"https://acct.r2.cloudflarestorage.com": StorageTypeR2,
		"s3.us-west-2.amazonaws.com":            StorageTypeS3,
		"localhost:9000":                        StorageTypeS3Compatible,
	}
	for endpoint, want := range tests {
		if got := detectStorageType(endpoint); got != want {
			t.Errorf("detectStorageType(%q) = %q, want %q", endpoint, got, want)
		}
	}
}

func TestCardKey(t *testing.T) {
	tests := []struct {
		prefix string
		name   string
		score  float64
		want   string
	}{
		{"cards", "wif", 77.5, "cards/wif-77.5.png"},
		{"/cards/", "xk7q9z", 24.5, "cards/xk7q9z-24.5.png"},
		{"cards", "nova", 60, "cards/nova-60.png"},
		{"", "wif", 77.5, "wif-77.5.png"},
	}
	for _, tt := range tests {
		if got := CardKey(tt.prefix, tt.name, tt.score); got != tt.want {
			t.Errorf("CardKey(%q, %q, %v) = %q, want %q", tt.prefix, tt.name, tt.score, got, tt.want)
		}
	}
}

func TestPublicBase(t *testing.T) {
	if got := publicBase("https://cdn.example.com/", "http://localhost:9000", "b"); got != "https://cdn.example.com" {
		t.Errorf("explicit public URL: got %q", got)
	}
	if got := publicBase("", "http://localhost:9000", "b"); got != "http://localhost:9000/b" {
		t.Errorf("endpoint fallback: got %q", got)
	}
}
