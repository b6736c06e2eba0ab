package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
)

// LoginRateLimit limita los intentos de acceso por IP: como máximo maxAttempts
// dentro de la ventana; por encima responde 429 sin tocar la base.
func LoginRateLimit(maxAttempts int, window time.Duration) gin.HandlerFunc {
	var (
		mu       sync.Mutex
		intentos = make(map[string][]time.Time)
	)

	vigentes := func(ts []time.Time, cutoff time.Time) []time.Time {
		out := ts[:0]
		for _, t := range ts {
			if t.After(cutoff) {
				out = append(out, t)
			}
		}
		return out
	}

	// Barrido de IPs sin intentos vigentes para que el mapa no crezca sin tope
	go func() {
		ticker := time.NewTicker(window)
		defer ticker.Stop()
		for range ticker.C {
			mu.Lock()
			cutoff := time.Now().Add(-window)
			for ip, ts := range intentos {
				if ts = vigentes(ts, cutoff); len(ts) == 0 {
					delete(intentos, ip)
				} else {
					intentos[ip] = ts
				}
			}
			mu.Unlock()
		}
	}()

	return func(c *gin.Context) {
		ip := c.ClientIP()
		now := time.Now()

		mu.Lock()
		ts := vigentes(intentos[ip], now.Add(-window))
		if len(ts) >= maxAttempts {
			intentos[ip] = ts
			mu.Unlock()
			c.JSON(http.StatusTooManyRequests, gin.H{
				"code":    http.StatusTooManyRequests,
				"message": "Demasiados intentos de acceso desde esta dirección, espere antes de reintentar",
			})
			c.Abort()
			return
		}
		intentos[ip] = append(ts, now)
		mu.Unlock()

		c.Next()
	}
}
