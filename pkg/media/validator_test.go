package media

import (
	"net/url"
	"testing"
)

func TestIsTrustedVideoHost(t *testing.T) {
	tests := []struct {
		host string
		want bool
	}{
		{"youtube.com", true},
		{"www.youtube.com", true},
		{"YOUTUBE.COM", true},
		{"youtu.be", true},
		{"m.youtube.com", true},
		{"www.youtube-nocookie.com", true},
		{"notyoutube.com", false},
		{"evil.com", false},
		{"vimeo.com", false},
		{"evil.com..youtube.com", false},
		{".youtube.com", false},
		{"youtube.com.evil.com", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.host, func(t *testing.T) {
			if got := IsTrustedVideoHost(tt.host); got != tt.want {
				t.Errorf("IsTrustedVideoHost(%q) = %v, want %v", tt.host, got, tt.want)
			}
		})
	}
}

func TestExtractVideoID(t *testing.T) {
	tests := []struct {
		name string
		url  string
		want string
	}{
		{"Short Link", "https://youtu.be/dQw4w9WgXcQ", "dQw4w9WgXcQ"},
		{"Watch Query", "https://www.youtube.com/watch?v=dQw4w9WgXcQ", "dQw4w9WgXcQ"},
		{"Embed Path", "https://www.youtube.com/embed/dQw4w9WgXcQ", "dQw4w9WgXcQ"},
		{"Shorts Path", "https://www.youtube.com/shorts/dQw4w9WgXcQ", "dQw4w9WgXcQ"},
		{"V Path", "https://www.youtube.com/v/dQw4w9WgXcQ", "dQw4w9WgXcQ"},
		{"Short Link With Query", "https://youtu.be/dQw4w9WgXcQ?t=42", "dQw4w9WgXcQ"},
		{"Truncated ID", "https://youtu.be/dQw4w9", ""},
		{"No Candidate", "https://www.youtube.com/feed/subscriptions", ""},
		{"Overlong Query ID", "https://www.youtube.com/watch?v=dQw4w9WgXcQxx", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			u, err := url.Parse(tt.url)
			if err != nil {
				t.Fatalf("url.Parse(%q): %v", tt.url, err)
			}
			if got := ExtractVideoID(u); got != tt.want {
				t.Errorf("ExtractVideoID(%q) = %q, want %q", tt.url, got, tt.want)
			}
		})
	}
}

func TestValidateVideoURL(t *testing.T) {
	tests := []struct {
		name     string
		url      string
		wantCode Code
		wantURL  string
	}{
		{
			name:    "Valid Watch URL",
			url:     "https://www.youtube.com/watch?v=dQw4w9WgXcQ",
			wantURL: "https://www.youtube-nocookie.com/embed/dQw4w9WgXcQ",
		},
		{
			name:    "Valid Short Link",
			url:     "https://youtu.be/dQw4w9WgXcQ",
			wantURL: "https://www.youtube-nocookie.com/embed/dQw4w9WgXcQ",
		},
		{
			name:     "Not A URL",
			url:      "not-a-url",
			wantCode: CodeInvalidURL,
		},
		{
			name:     "Empty",
			url:      "",
			wantCode: CodeInvalidURL,
		},
		{
			name:     "Untrusted Host",
			url:      "https://vimeo.com/123",
			wantCode: CodeUnsupportedHost,
		},
		{
			name:     "Trusted Host No ID",
			url:      "https://www.youtube.com/about",
			wantCode: CodeInvalidID,
		},
		{
			name:     "Javascript Scheme",
			url:      "javascript:alert(1)",
			wantCode: CodeInvalidURL,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			embed, err := ValidateVideoURL(tt.url)
			if tt.wantCode != "" {
				if err == nil {
					t.Fatalf("ValidateVideoURL(%q) expected error %q, got none", tt.url, tt.wantCode)
				}
				if err.Code != tt.wantCode {
					t.Errorf("ValidateVideoURL(%q) code = %q, want %q", tt.url, err.Code, tt.wantCode)
				}
				return
			}
			if err != nil {
				t.Fatalf("ValidateVideoURL(%q) unexpected error: %v", tt.url, err)
			}
			if embed.URL != tt.wantURL {
				t.Errorf("ValidateVideoURL(%q) = %q, want %q", tt.url, embed.URL, tt.wantURL)
			}
		})
	}
}
