// Command forgeview serves generated maps over HTTP for quick visual
// inspection.
//
// Routes:
//
//	GET /           tiny canvas viewer
//	GET /api/map    generate and return the full MapData JSON (?seed=N)
//	GET /api/graph  debug export of the connectivity graph (?seed=N)
//	GET /ws         websocket; client sends {"seed":N}, server pushes the
//	                regenerated map
//
// The definition comes from -def (a JSON file) or falls back to a built-in
// two-player demo.
package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/gorilla/websocket"

	"github.com/velmara/gridforge/forge"
	"github.com/velmara/gridforge/mapdef"
)

func main() {
	addr := flag.String("addr", ":8642", "listen address")
	defPath := flag.String("def", "", "map definition JSON file (empty: built-in demo)")
	flag.Parse()

	log := slog.New(slog.NewTextHandler(os.Stderr, nil))

	def, err := loadDefinition(*defPath)
	if err != nil {
		log.Error("load definition", "path", *defPath, "err", err)
		os.Exit(1)
	}
	if err := mapdef.Validate(def); err != nil {
		log.Error("invalid definition", "err", err)
		os.Exit(1)
	}

	s := &server{log: log, def: def}
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Get("/", s.handleIndex)
	r.Get("/api/map", s.handleMap)
	r.Get("/api/graph", s.handleGraph)
	r.Get("/ws", s.handleWS)

	srv := &http.Server{Addr: *addr, Handler: r}
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		log.Info("forgeview listening", "addr", *addr, "definition", def.Name)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("listen", "err", err)
			stop()
		}
	}()

	<-ctx.Done()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("shutdown", "err", err)
	}
}

func loadDefinition(path string) (*mapdef.Definition, error) {
	if path == "" {
		return demoDefinition(), nil
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var def mapdef.Definition
	if err := json.Unmarshal(raw, &def); err != nil {
		return nil, err
	}
	return &def, nil
}

type server struct {
	log *slog.Logger
	def *mapdef.Definition

	upgrader websocket.Upgrader
}

// withSeed copies the served definition with the requested seed and debug
// flag. The copy is shallow; generation never mutates the definition.
func (s *server) withSeed(seed int64, debug bool) *mapdef.Definition {
	d := *s.def
	d.Options.Seed = seed
	d.Options.ValidateConnectivity = true
	d.Options.AutoFixConnectivity = true
	d.Options.Debug = debug
	return &d
}

func (s *server) querySeed(r *http.Request) int64 {
	raw := r.URL.Query().Get("seed")
	if raw == "" {
		return s.def.Options.Seed
	}
	seed, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return s.def.Options.Seed
	}
	return seed
}

func (s *server) handleMap(w http.ResponseWriter, r *http.Request) {
	seed := s.querySeed(r)
	start := time.Now()
	md, res, err := forge.Generate(s.withSeed(seed, false))
	if err != nil {
		s.log.Error("generate", "seed", seed, "err", err)
		http.Error(w, err.Error(), http.StatusUnprocessableEntity)
		return
	}
	s.log.Info("generated", "seed", seed, "valid", res == nil || res.Valid,
		"took", time.Since(start))
	writeJSON(w, md)
}

func (s *server) handleGraph(w http.ResponseWriter, r *http.Request) {
	seed := s.querySeed(r)
	md, _, err := forge.Generate(s.withSeed(seed, true))
	if err != nil {
		http.Error(w, err.Error(), http.StatusUnprocessableEntity)
		return
	}
	writeJSON(w, md.Graph)
}

// wsRequest is what the viewer sends over the socket.
type wsRequest struct {
	Seed int64 `json:"seed"`
}

func (s *server) handleWS(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.log.Warn("ws upgrade", "err", err)
		return
	}
	defer conn.Close()

	for {
		var req wsRequest
		if err := conn.ReadJSON(&req); err != nil {
			if !websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				s.log.Warn("ws read", "err", err)
			}
			return
		}
		md, _, err := forge.Generate(s.withSeed(req.Seed, false))
		if err != nil {
			if werr := conn.WriteJSON(map[string]string{"error": err.Error()}); werr != nil {
				return
			}
			continue
		}
		if err := conn.WriteJSON(md); err != nil {
			s.log.Warn("ws write", "err", err)
			return
		}
	}
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(v)
}
