// CORS-заголовки для фронтенда
package middleware

import "net/http"

// CORSMiddleware выставляет permissive cross-origin заголовки на каждый ответ
// и сразу отвечает 204 на preflight (OPTIONS) запросы.
//
// origin берётся из конфига; "*" разрешает всех (дефолт).
// Заголовки ставятся до передачи запроса дальше, поэтому попадают
// и в ответы об ошибках, и в 404 на несуществующие маршруты.
func CORSMiddleware(origin string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			h := w.Header()
			h.Set("Access-Control-Allow-Origin", origin)
			h.Set("Access-Control-Allow-Methods", "GET,POST,PUT,DELETE,OPTIONS")
			h.Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
			if origin != "*" {
				h.Set("Vary", "Origin")
			}

			if r.Method == http.MethodOptions {
				w.WriteHeader(http.StatusNoContent)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
