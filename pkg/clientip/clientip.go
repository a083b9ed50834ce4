package clientip

import (
	"net"
	"net/http"
	"strings"
)

// GetIP returns the normalized client IP of r. It prefers CF-Connecting-IP,
// then the first valid address in X-Forwarded-For, then X-Real-IP, and
// finally RemoteAddr. Invalid values are skipped; "" means nothing usable.
func GetIP(r *http.Request) string {
	if ip := parseIP(r.Header.Get("CF-Connecting-IP")); ip != "" {
		return ip
	}
	if forwarded := r.Header.Get("X-Forwarded-For"); forwarded != "" {
		for part := range strings.SplitSeq(forwarded, ",") {
			if ip := parseIP(part); ip != "" {
				return ip
			}
		}
	}
	if ip := parseIP(r.Header.Get("X-Real-IP")); ip != "" {
		return ip
	}

	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return parseIP(r.RemoteAddr)
	}
	return parseIP(host)
}

func parseIP(s string) string {
	ip := net.ParseIP(strings.TrimSpace(s))
	if ip == nil {
		return ""
	}
	return ip.String()
}
