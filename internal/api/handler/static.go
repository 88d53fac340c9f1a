package handler

import (
	"net/http"
	"os"
	"path/filepath"
	"strings"
)

// SPAHandler serve o build do frontend e devolve o index.html para
// qualquer caminho não reconhecido, deixando o roteamento com a SPA.
// Instalado como NotFound do router, nunca intercepta rotas /api.
func SPAHandler(staticDir string) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if strings.HasPrefix(r.URL.Path, "/api/") || staticDir == "" {
			http.NotFound(w, r)
			return
		}

		requested := filepath.Join(staticDir, filepath.Clean("/"+r.URL.Path))
		if info, err := os.Stat(requested); err == nil && !info.IsDir() {
			http.ServeFile(w, r, requested)
			return
		}

		index := filepath.Join(staticDir, "index.html")
		if _, err := os.Stat(index); err != nil {
			w.Header().Set("Content-Type", "application/json")
			json.NewEncoder(w).Encode(map[string]string{
				"message": "Frontend ainda não foi construído. Rode 'npm run build' primeiro.",
			})
			return
		}

		http.ServeFile(w, r, index)
	})
}
