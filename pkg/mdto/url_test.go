package mdto

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidURL(t *testing.T) {
	tests := []struct {
		url   string
		valid bool
	}{
		{"https://www.example.com", true},
		{"http://example.com/path?q=1#frag", true},
		{"HTTPS://EXAMPLE.COM", true},
		{"ftp://files.example.org/pub/file.pdf", true},
		{"sftp://user@host.example.org:2222/data", true},
		{"git://github.com/x/y", true},
		{"http://192.168.1.10/share", true},
		{"http://[2001:db8::1]:8080/", true},
		{"https://example.com:65535/", true},

		{"", false},
		{"hppts://www.example.com", false},
		{"www.example.com", false},
		{"mailto:info@example.com", false},
		{"https://", false},
		{"https://.example.com", false},
		{"https://example..com", false},
		{"https://exa mple.com", false},
		{"file://", false},
		{"file:///etc/passwd", false},
		{"wss://stream.example.org/socket", false},
		{"http://localhost", false},
		{"http://localhost:8080", false},
		{"http://1", false},
		{"http://example.com:99999", false},
		{"http://example.com:0", false},
		{"http://-bad-.com", false},
		{"http://bad-.example.com", false},
		{"http://exa_mple.com", false},
	}

	for _, tt := range tests {
		t.Run(tt.url, func(t *testing.T) {
			assert.Equal(t, tt.valid, ValidURL(tt.url))
		})
	}
}
