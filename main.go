package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/raushankrgupta/skin-finder/api"
	"github.com/raushankrgupta/skin-finder/config"
	"github.com/raushankrgupta/skin-finder/resolver"
	"github.com/raushankrgupta/skin-finder/session"
	"github.com/raushankrgupta/skin-finder/stream"
	"github.com/raushankrgupta/skin-finder/utils"
	"github.com/raushankrgupta/skin-finder/viewer"
)

func main() {
	config.LoadConfig()

	// The hub is both the narration sink and the render adapter: every
	// connected viewer page sees the same log lines and render commands
	hub := stream.NewHub()
	res := resolver.ForStrategy(config.ResolverStrategy)
	api.Configure(session.New(res, hub, viewer.NewController(hub)))
	log.Printf("Resolver strategy: %s", res.Name())

	// CORS Middleware
	corsMiddleware := func(next http.HandlerFunc) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Access-Control-Allow-Origin", "*")
			w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
			w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
			if r.Method == "OPTIONS" {
				w.WriteHeader(http.StatusOK)
				return
			}
			next(w, r)
		}
	}

	http.HandleFunc("/generate", corsMiddleware(api.GenerateHandler))
	http.HandleFunc("/variants/select", corsMiddleware(api.SelectVariantHandler))
	http.HandleFunc("/variants/current", corsMiddleware(api.CurrentVariantHandler))
	http.HandleFunc("/ws", hub.ServeWS)

	// Serve the viewer page
	http.Handle("/", utils.LatencyMiddleware(http.FileServer(http.Dir("web"))))

	port := config.Port
	fmt.Printf("Server starting on port %s...\n", port)
	fmt.Printf("Usage: curl \"http://localhost:%s/generate?name=<character_name>\"\n", port)
	if err := http.ListenAndServe(":"+port, nil); err != nil {
		log.Fatalf("Server failed to start: %v", err)
	}
}
