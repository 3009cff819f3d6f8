package middleware

import (
	"net/http"

	log "github.com/sirupsen/logrus"
)

var allowedOrigins = map[string]bool{
	"http://localhost:8080": true,
	"http://localhost:9000": true,
	"http://127.0.0.1:8080": true,
	"http://127.0.0.1:9000": true,
	"test":                  true,
}

func Cors() func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			origin := r.Header.Get("Origin")

			// same-origin requests (the embedded dashboard) come with no Origin header
			if origin == "" || allowedOrigins[origin] {
				if origin != "" {
					w.Header().Set("Access-Control-Allow-Origin", origin)
					w.Header().Set("Access-Control-Allow-Headers",
						"Accept, Content-Type, Content-Length, Accept-Encoding, X-HevyStats-Secret",
					)
					w.Header().Set("Access-Control-Allow-Methods", "POST, GET, OPTIONS")
				}
				next.ServeHTTP(w, r)
				return
			}

			log.Warnf("CORS: origin not allowed for path [%s] and origin [%s]", r.URL.Path, origin)
			w.WriteHeader(http.StatusForbidden)
		})
	}
}
