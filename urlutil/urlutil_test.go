package urlutil

import (
	"testing"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name     string
		inputURL string
		expected string
		wantErr  bool
	}{
		{
			name:     "adds https scheme",
			inputURL: "example.com/path",
			expected: "https://example.com/path",
		},
		{
			name:     "keeps http scheme",
			inputURL: "http://example.com",
			expected: "http://example.com",
		},
		{
			name:     "lowercases host",
			inputURL: "https://EXAMPLE.Com/Path",
			expected: "https://example.com/Path",
		},
		{
			name:     "blank input",
			inputURL: "  ",
			wantErr:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := Normalize(tt.inputURL)

			if tt.wantErr {
				if err == nil {
					t.Errorf("Expected error but got none")
				}
				return
			}

			if err != nil {
				t.Errorf("Unexpected error: %v", err)
				return
			}

			if result != tt.expected {
				t.Errorf("Expected %q, got %q", tt.expected, result)
			}
		})
	}
}

func TestExtractHostname(t *testing.T) {
	hostname, err := ExtractHostname("https://sub.example.com:8443/path")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if hostname != "sub.example.com" {
		t.Errorf("Expected %q, got %q", "sub.example.com", hostname)
	}

	if _, err := ExtractHostname(""); err == nil {
		t.Error("Expected error for blank input")
	}
	if _, err := ExtractHostname("/relative/path"); err == nil {
		t.Error("Expected error for URL without hostname")
	}
}

func TestBaseDomain(t *testing.T) {
	tests := []struct {
		name     string
		hostname string
		expected string
		wantErr  bool
	}{
		{name: "simple subdomain", hostname: "sub.example.com", expected: "example.com"},
		{name: "two-part TLD", hostname: "www.example.co.uk", expected: "example.co.uk"},
		{name: "already base", hostname: "example.com", expected: "example.com"},
		{name: "strips port", hostname: "sub.example.com:8080", expected: "example.com"},
		{name: "single label returned as is", hostname: "localhost", expected: "localhost"},
		{name: "blank input", hostname: " ", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := BaseDomain(tt.hostname)

			if tt.wantErr {
				if err == nil {
					t.Errorf("Expected error but got none")
				}
				return
			}

			if err != nil {
				t.Errorf("Unexpected error: %v", err)
				return
			}

			if result != tt.expected {
				t.Errorf("Expected %q, got %q", tt.expected, result)
			}
		})
	}
}

func TestSanitizeFilename(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "strips scheme", input: "https://example.com/path", expected: "example.com_path"},
		{name: "unsafe characters replaced", input: "a b?c=d", expected: "a_b_c_d"},
		{name: "collapses underscores", input: "a///b", expected: "a_b"},
		{name: "empty after sanitization", input: "http://", expected: "sanitized_empty_input"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SanitizeFilename(tt.input); got != tt.expected {
				t.Errorf("Expected %q, got %q", tt.expected, got)
			}
		})
	}
}
