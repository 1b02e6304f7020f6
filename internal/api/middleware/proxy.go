package middleware

import (
	"net"
	"net/http"

	gorillaHandlers "github.com/gorilla/handlers"
	"github.com/gorilla/mux"
)

// TrustedProxyHeaders применяет X-Forwarded-For / X-Real-IP только к запросам от доверенных прокси.
// Остальным клиентам заголовки не верим: иначе per-IP лимит обходится подменой заголовка.
// Пустой список - заголовки не используются вообще
func TrustedProxyHeaders(trusted []*net.IPNet) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		if len(trusted) == 0 {
			return next
		}

		proxied := gorillaHandlers.ProxyHeaders(next)

		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if isTrusted(trusted, clientIP(r)) {
				proxied.ServeHTTP(w, r)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func isTrusted(trusted []*net.IPNet, addr string) bool {
	ip := net.ParseIP(addr)
	if ip == nil {
		return false
	}
	for _, ipNet := range trusted {
		if ipNet.Contains(ip) {
			return true
		}
	}
	return false
}
