package middleware

import (
	"net"
	"net/http"
	"strings"
	"sync"
	"time"

	"golang.org/x/time/rate"

	"github.com/m04kA/SMC-FieldReservationService/internal/api/handlers"
)

// idleLimiterTTL через сколько неактивный лимитер клиента удаляется
const idleLimiterTTL = 10 * time.Minute

type clientLimiter struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// IPRateLimiter хранит token bucket на каждый IP клиента
type IPRateLimiter struct {
	mu      sync.Mutex
	clients map[string]*clientLimiter
	r       rate.Limit
	b       int
	// trustForwarded сервис стоит за своим прокси, который дописывает X-Forwarded-For
	trustForwarded bool
	now            func() time.Time
}

// NewIPRateLimiter создает лимитер: r запросов в секунду, всплеск до b.
// При trustForwardedFor клиентом считается последний адрес из X-Forwarded-For
func NewIPRateLimiter(r rate.Limit, b int, trustForwardedFor bool) *IPRateLimiter {
	return &IPRateLimiter{
		clients:        make(map[string]*clientLimiter),
		r:              r,
		b:              b,
		trustForwarded: trustForwardedFor,
		now:            time.Now,
	}
}

// Allow расходует токен клиента ip
func (l *IPRateLimiter) Allow(ip string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	c, ok := l.clients[ip]
	if !ok {
		l.evictIdle(now)
		c = &clientLimiter{limiter: rate.NewLimiter(l.r, l.b)}
		l.clients[ip] = c
	}
	c.lastSeen = now

	return c.limiter.AllowN(now, 1)
}

// evictIdle удаляет лимитеры давно не приходивших клиентов; вызывается под mu
func (l *IPRateLimiter) evictIdle(now time.Time) {
	for ip, c := range l.clients {
		if now.Sub(c.lastSeen) > idleLimiterTTL {
			delete(l.clients, ip)
		}
	}
}

// Middleware отвечает 429, когда клиент исчерпал лимит
func (l *IPRateLimiter) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !l.Allow(ClientIP(r, l.trustForwarded)) {
			handlers.RespondTooManyRequests(w)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// ClientIP адрес клиента из RemoteAddr. Если trustForwardedFor, берется
// самый правый адрес X-Forwarded-For: его дописал наш прокси, левые
// записи присылает сам клиент
func ClientIP(r *http.Request, trustForwardedFor bool) string {
	if trustForwardedFor {
		if forwarded := r.Header.Get("X-Forwarded-For"); forwarded != "" {
			hops := strings.Split(forwarded, ",")
			if ip := strings.TrimSpace(hops[len(hops)-1]); ip != "" {
				return ip
			}
		}
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
