package middleware

import (
	"strings"
	"testing"
)

func TestBuildCSPDefault(t *testing.T) {
	csp := buildCSP(DefaultSecurityConfig())

	for _, want := range []string{
		"default-src 'self'",
		"img-src 'self' data: blob: https://res.cloudinary.com",
		"media-src 'self' https://res.cloudinary.com",
		"connect-src 'self' wss:",
		"frame-ancestors 'none'",
	} {
		if !strings.Contains(csp, want) {
			t.Errorf("CSP missing %q:\n%s", want, csp)
		}
	}
}

func TestBuildCSPEmptyConfig(t *testing.T) {
	csp := buildCSP(SecurityConfig{})

	if !strings.Contains(csp, "img-src 'self' data: blob:") {
		t.Errorf("bare img-src broken: %s", csp)
	}
	if !strings.Contains(csp, "connect-src 'self'") {
		t.Errorf("bare connect-src broken: %s", csp)
	}
	if strings.Contains(csp, "  ") {
		t.Errorf("double space in CSP: %s", csp)
	}
}
