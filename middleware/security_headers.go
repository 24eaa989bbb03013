// middleware/security_headers.go
package middleware

import (
	"strings"

	"github.com/labstack/echo/v4"
)

// SecurityConfig shapes the Content-Security-Policy for the three surfaces
// this API exposes: JSON endpoints, the /uploads gallery, and the websocket
// feed.
type SecurityConfig struct {
	// MediaHosts are CDN origins listing images may load from, on top of
	// the local /uploads directory.
	MediaHosts []string
	// ConnectSources are extra connect-src origins; the websocket feed
	// needs wss:.
	ConnectSources []string
}

// DefaultSecurityConfig covers the stock deployment: Cloudinary media plus
// same-origin websocket upgrades.
func DefaultSecurityConfig() SecurityConfig {
	return SecurityConfig{
		MediaHosts:     []string{"https://res.cloudinary.com"},
		ConnectSources: []string{"wss:"},
	}
}

// SecurityHeaders applies the default config.
func SecurityHeaders() echo.MiddlewareFunc {
	return SecurityHeadersWithConfig(DefaultSecurityConfig())
}

func SecurityHeadersWithConfig(config SecurityConfig) echo.MiddlewareFunc {
	csp := buildCSP(config)
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			h := c.Response().Header()

			h.Set("X-Frame-Options", "DENY")
			h.Set("X-Content-Type-Options", "nosniff")
			h.Set("Strict-Transport-Security", "max-age=31536000; includeSubDomains; preload")
			h.Set("Content-Security-Policy", csp)
			h.Set("Referrer-Policy", "strict-origin-when-cross-origin")
			h.Set("Permissions-Policy", "geolocation=(), microphone=(), camera=()")

			h.Del("Server")
			h.Del("X-Powered-By")

			return next(c)
		}
	}
}

func buildCSP(config SecurityConfig) string {
	imgSrc := "img-src 'self' data: blob:"
	mediaSrc := "media-src 'self'"
	if len(config.MediaHosts) > 0 {
		hosts := " " + strings.Join(config.MediaHosts, " ")
		imgSrc += hosts
		mediaSrc += hosts
	}

	connectSrc := "connect-src 'self'"
	if len(config.ConnectSources) > 0 {
		connectSrc += " " + strings.Join(config.ConnectSources, " ")
	}

	return strings.Join([]string{
		"default-src 'self'",
		imgSrc,
		mediaSrc,
		connectSrc,
		"script-src 'self'",
		"style-src 'self' 'unsafe-inline'",
		"frame-ancestors 'none'",
	}, "; ")
}
