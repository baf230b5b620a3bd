package mdto

import (
	"net/url"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
)

// urlSchemes are the schemes accepted for raadpleeglocatieOnline and
// URLBestand.
var urlSchemes = map[string]bool{
	"http":   true,
	"https":  true,
	"ftp":    true,
	"ftps":   true,
	"git":    true,
	"irc":    true,
	"rtmp":   true,
	"rtmps":  true,
	"rtsp":   true,
	"sftp":   true,
	"ssh":    true,
	"telnet": true,
}

var urlValidator = validator.New()

// ValidURL reports whether s is an absolute URL with a known scheme whose
// host is a fully qualified domain name or an IP address. A port, when
// present, must lie in 1-65535.
func ValidURL(s string) bool {
	if s == "" || strings.ContainsAny(s, " \t\r\n") {
		return false
	}
	if urlValidator.Var(s, "url") != nil {
		return false
	}
	u, err := url.Parse(s)
	if err != nil || !urlSchemes[strings.ToLower(u.Scheme)] {
		return false
	}
	if port := u.Port(); port != "" {
		n, err := strconv.Atoi(port)
		if err != nil || n < 1 || n > 65535 {
			return false
		}
	} else if strings.HasSuffix(u.Host, ":") {
		return false
	}
	return validHost(u.Hostname())
}

func validHost(host string) bool {
	if host == "" {
		return false
	}
	if urlValidator.Var(host, "ip") == nil {
		return true
	}
	if urlValidator.Var(host, "fqdn") != nil {
		return false
	}
	for _, label := range strings.Split(strings.TrimSuffix(host, "."), ".") {
		if strings.HasPrefix(label, "-") || strings.HasSuffix(label, "-") {
			return false
		}
	}
	return true
}
