// Package api serves the chart page over HTTP: entity metadata, series
// JSON, rendered chart SVG, and a websocket relay of the page's
// synchronization bus for interactive clients.
package api

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/mfreeman451/statusgraph/pkg/chart"
	"github.com/mfreeman451/statusgraph/pkg/config"
	"github.com/mfreeman451/statusgraph/pkg/models"
	"github.com/mfreeman451/statusgraph/pkg/render"
)

// Server wraps HTTP serving of the chart page.
type Server struct {
	httpServer *http.Server
	router     *mux.Router
	page       *chart.Page
	renderers  map[string]*render.SVG
	durations  []config.Duration
	hub        *Hub
}

// NewServer creates a configured server for one page of charts.
// renderers maps chart ID to the SVG renderer each chart draws into.
func NewServer(addr string, page *chart.Page, renderers map[string]*render.SVG, durations []config.Duration) *Server {
	s := &Server{
		router:    mux.NewRouter(),
		page:      page,
		renderers: renderers,
		durations: durations,
		hub:       NewHub(page),
	}

	s.setupRoutes()
	s.httpServer = &http.Server{
		Addr:         addr,
		Handler:      s.router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	initMetrics()

	return s
}

func (s *Server) setupRoutes() {
	// CORS middleware
	s.router.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Access-Control-Allow-Origin", "*")
			w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
			w.Header().Set("Access-Control-Allow-Headers", "Content-Type")

			if r.Method == http.MethodOptions {
				w.WriteHeader(http.StatusOK)
				return
			}

			next.ServeHTTP(w, r)
		})
	})

	s.router.HandleFunc("/api/entities", s.getEntities).Methods("GET")
	s.router.HandleFunc("/api/charts", s.getCharts).Methods("GET")
	s.router.HandleFunc("/api/charts/{id}/series", s.getSeries).Methods("GET")
	s.router.HandleFunc("/api/charts/{id}/svg", s.getSVG).Methods("GET")
	s.router.HandleFunc("/api/durations", s.getDurations).Methods("GET")
	s.router.HandleFunc("/api/window", s.setWindow).Methods("POST")
	s.router.HandleFunc("/api/ws", s.hub.ServeWS)

	s.router.Handle("/metrics", promhttp.Handler()).Methods("GET")
}

// Start runs the HTTP server and the websocket hub.
func (s *Server) Start() error {
	s.hub.Run()

	log.Printf("Starting HTTP server on %s", s.httpServer.Addr)

	return s.httpServer.ListenAndServe()
}

// Shutdown stops the server gracefully.
func (s *Server) Shutdown(ctx context.Context) error {
	s.hub.Close()

	return s.httpServer.Shutdown(ctx)
}

type chartInfo struct {
	ID        string            `json:"id"`
	Entity    models.Entity     `json:"entity"`
	Domain    models.TimeDomain `json:"domain"`
	HasValues bool              `json:"has_values"`
}

func (s *Server) getEntities(w http.ResponseWriter, _ *http.Request) {
	entities := make([]models.Entity, 0, len(s.page.Charts()))

	for _, c := range s.page.Charts() {
		if c.ID() == chart.AggregateID {
			continue
		}

		entities = append(entities, c.Entity())
	}

	writeJSON(w, entities)
}

func (s *Server) getCharts(w http.ResponseWriter, _ *http.Request) {
	infos := make([]chartInfo, 0, len(s.page.Charts()))

	for _, c := range s.page.Charts() {
		infos = append(infos, chartInfo{
			ID:        c.ID(),
			Entity:    c.Entity(),
			Domain:    c.Domain(),
			HasValues: c.HasValues(),
		})
	}

	writeJSON(w, infos)
}

func (s *Server) getSeries(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	c, ok := s.page.Chart(vars["id"])
	if !ok {
		http.Error(w, "Chart not found", http.StatusNotFound)
		return
	}

	writeJSON(w, c.Series())
}

func (s *Server) getSVG(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	renderer, ok := s.renderers[vars["id"]]
	if !ok {
		http.Error(w, "Chart not found", http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "image/svg+xml")

	if _, err := w.Write([]byte(renderer.Render())); err != nil {
		log.Printf("Error writing SVG response: %v", err)
	}
}

func (s *Server) getDurations(w http.ResponseWriter, _ *http.Request) {
	out := make([]string, 0, len(s.durations))
	for _, d := range s.durations {
		out = append(out, time.Duration(d).String())
	}

	writeJSON(w, out)
}

type windowRequest struct {
	// Duration is a relative window like "24h"; empty resets to the
	// full extent.
	Duration string `json:"duration"`
}

func (s *Server) setWindow(w http.ResponseWriter, r *http.Request) {
	var req windowRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	var d time.Duration

	if req.Duration != "" {
		parsed, err := time.ParseDuration(req.Duration)
		if err != nil {
			http.Error(w, "Invalid duration", http.StatusBadRequest)
			return
		}

		d = parsed
	}

	s.page.SetWindow(d)
	windowChanges.Inc()

	w.WriteHeader(http.StatusNoContent)
}

func writeJSON(w http.ResponseWriter, v interface{}) {
	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("Error encoding response: %v", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
	}
}
