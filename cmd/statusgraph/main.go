// cmd/statusgraph/main.go
package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/mfreeman451/statusgraph/pkg/api"
	"github.com/mfreeman451/statusgraph/pkg/chart"
	"github.com/mfreeman451/statusgraph/pkg/checker"
	"github.com/mfreeman451/statusgraph/pkg/config"
	"github.com/mfreeman451/statusgraph/pkg/models"
	"github.com/mfreeman451/statusgraph/pkg/render"
	"github.com/mfreeman451/statusgraph/pkg/series"
)

const shutdownTimeout = 10 * time.Second

func main() {
	configPath := flag.String("config", "/etc/statusgraph/server.json", "Path to config file")
	flag.Parse()

	var cfg config.ServerConfig
	if err := config.LoadAndValidate(*configPath, &cfg); err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	source := checker.NewFileSource(cfg.DataFile)

	snap, err := source.Load(context.Background())
	if err != nil {
		log.Fatalf("Failed to load check data: %v", err)
	}

	entitySeries := series.Build(snap.Checks)
	aggregate := series.Aggregate(entitySeries)

	renderCfg := renderConfig(cfg.Chart)
	renderers := make(map[string]*render.SVG)

	page, err := chart.NewPage(chart.PageConfig{
		Entities:  snap.Entities,
		Series:    entitySeries,
		Aggregate: aggregate,
		Width:     renderCfg.Width,
		Height:    renderCfg.Height,
		NewRenderer: func(id string, entity models.Entity, s models.Series) chart.Renderer {
			r := render.New(renderCfg, entity, s)
			renderers[id] = r

			return r
		},
	})
	if err != nil {
		log.Fatalf("Failed to build chart page: %v", err)
	}

	log.Printf("Built %d charts for %d entities", len(page.Charts()), len(snap.Entities))

	server := api.NewServer(cfg.ListenAddr, page, renderers, cfg.Durations)

	errChan := make(chan error, 1)

	go func() {
		if err := server.Start(); err != nil {
			errChan <- err
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errChan:
		log.Fatalf("HTTP server failed: %v", err)
	case sig := <-sigChan:
		log.Printf("Received signal %v, shutting down", sig)
	}

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Printf("Shutdown error: %v", err)
	}
}

func renderConfig(c config.ChartConfig) render.Config {
	cfg := render.DefaultConfig()

	if c.Width > 0 {
		cfg.Width = c.Width
	}

	if c.Height > 0 {
		cfg.Height = c.Height
	}

	if c.MarginTop > 0 {
		cfg.MarginTop = c.MarginTop
	}

	if c.MarginRight > 0 {
		cfg.MarginRight = c.MarginRight
	}

	if c.MarginBottom > 0 {
		cfg.MarginBottom = c.MarginBottom
	}

	if c.MarginLeft > 0 {
		cfg.MarginLeft = c.MarginLeft
	}

	return cfg
}
