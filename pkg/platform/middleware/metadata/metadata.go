// Package metadata extracts client identity hints from incoming requests and
// carries them through the context. The rate limiter keys on the client IP,
// so this middleware must run before any rate-limited handler.
package metadata

import (
	"context"
	"net/http"
	"strings"

	"github.com/mssola/useragent"
)

// Context keys for client metadata.
type contextKeyClientIP struct{}
type contextKeyDevice struct{}

// UnknownClient is the shared bucket for callers whose address cannot be
// attributed (no forwarding headers and no usable RemoteAddr).
const UnknownClient = "unknown"

// ClientMetadata extracts the client IP and a device summary from the request
// and adds them to the context for handlers and services.
func ClientMetadata(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		ctx = context.WithValue(ctx, contextKeyClientIP{}, ClientIPFromRequest(r))
		ctx = context.WithValue(ctx, contextKeyDevice{}, deviceSummary(r.Header.Get("User-Agent")))
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetClientIP retrieves the client IP address from the context.
func GetClientIP(ctx context.Context) string {
	if ip, ok := ctx.Value(contextKeyClientIP{}).(string); ok && ip != "" {
		return ip
	}
	return UnknownClient
}

// GetDevice retrieves the device summary ("browser/os" or "bot") from the context.
func GetDevice(ctx context.Context) string {
	if d, ok := ctx.Value(contextKeyDevice{}).(string); ok {
		return d
	}
	return ""
}

// WithClientMetadata injects client identity into a context. Useful for
// service unit tests that don't run the full HTTP middleware chain.
func WithClientMetadata(ctx context.Context, clientIP, device string) context.Context {
	ctx = context.WithValue(ctx, contextKeyClientIP{}, clientIP)
	ctx = context.WithValue(ctx, contextKeyDevice{}, device)
	return ctx
}

// ClientIPFromRequest extracts the best-available client IP, handling proxies
// and load balancers.
func ClientIPFromRequest(r *http.Request) string {
	// X-Forwarded-For can contain multiple IPs (client, proxy1, proxy2, ...).
	// Take the first, which is the original client.
	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		if idx := strings.Index(xff, ","); idx != -1 {
			return strings.TrimSpace(xff[:idx])
		}
		return strings.TrimSpace(xff)
	}

	if xri := r.Header.Get("X-Real-IP"); xri != "" {
		return strings.TrimSpace(xri)
	}

	// RemoteAddr is "ip:port" for IPv4 and "[::1]:port" for IPv6.
	if addr := r.RemoteAddr; addr != "" {
		if idx := strings.LastIndex(addr, ":"); idx != -1 {
			return addr[:idx]
		}
		return addr
	}

	return UnknownClient
}

// deviceSummary reduces a User-Agent string to a short label for logs. The
// funnel is driven from browsers, often several tabs at once, so knowing the
// browser family helps when reading rate-limit logs.
func deviceSummary(rawUA string) string {
	if rawUA == "" {
		return ""
	}
	ua := useragent.New(rawUA)
	if ua.Bot() {
		return "bot"
	}
	name, _ := ua.Browser()
	if os := ua.OS(); os != "" {
		return name + "/" + os
	}
	return name
}
