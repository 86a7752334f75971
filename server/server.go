package server

import (
	"context"
	"embed"
	"encoding/json"
	"errors"
	"io/fs"
	"log"
	"net/http"
	"strings"
	"time"

	"vertical_content_generator/generator"
)

//go:embed web/dist web/dist/*
var embeddedStatic embed.FS

// Server exposes the generation pipeline over a small JSON API plus an
// embedded static page. One client per provider per process; the
// request picks which one a pipeline run binds to.
type Server struct {
	clients  map[generator.ModelChoice]generator.LLMClient
	store    *resultStore
	staticFS http.Handler
	logger   *log.Logger
}

func New(clients map[generator.ModelChoice]generator.LLMClient, logger *log.Logger) (*Server, error) {
	if len(clients) == 0 {
		return nil, errors.New("at least one model client required")
	}
	if logger == nil {
		logger = log.Default()
	}

	sub, err := fs.Sub(embeddedStatic, "web/dist")
	if err != nil {
		return nil, err
	}

	return &Server{
		clients:  clients,
		store:    newStore(),
		staticFS: http.FileServer(http.FS(sub)),
		logger:   logger,
	}, nil
}

func (s *Server) Routes() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/industries", s.handleIndustries)
	mux.HandleFunc("/api/captions", s.handleContent(generator.CaptionProfile, "captions"))
	mux.HandleFunc("/api/ideas", s.handleContent(generator.ContentIdeaProfile, "ideas"))
	mux.HandleFunc("/api/generate", s.handleCombined)
	mux.HandleFunc("/api/generations/", s.handleGenerationByID)
	mux.Handle("/", s.staticHandler())
	return s.logMiddleware(mux)
}

func (s *Server) staticHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// fall back to index.html for SPA-ish behavior
		upath := r.URL.Path
		if upath == "/" || !strings.HasPrefix(upath, "/api/") {
			p := upath
			if p == "/" {
				p = "/index.html"
			}
			r.URL.Path = p
			s.staticFS.ServeHTTP(w, r)
			return
		}
		http.NotFound(w, r)
	})
}

// --- Handlers ---

type generateReq struct {
	Brief    string `json:"brief"`
	Industry string `json:"industry"`
	Model    string `json:"model"`
}

type generateResp struct {
	ID    string                  `json:"id"`
	Items []generator.ContentItem `json:"items"`
}

type combinedResp struct {
	ID       string                  `json:"id"`
	Brief    string                  `json:"brief"`
	Captions []generator.ContentItem `json:"captions"`
	Ideas    []generator.ContentItem `json:"ideas"`
}

type errorResp struct {
	Error string `json:"error"`
}

func (s *Server) handleIndustries(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	writeJSON(w, http.StatusOK, generator.Industries)
}

func (s *Server) handleContent(profile generator.PromptProfile, kind string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}
		req, p, ok := s.preparePipeline(w, r)
		if !ok {
			return
		}
		ctx, cancel := context.WithTimeout(r.Context(), 60*time.Second)
		defer cancel()

		items, err := p.Generate(ctx, profile, req.Brief, generator.Industry(req.Industry), generator.BatchSize)
		if err != nil {
			s.writeGenerationError(w, err)
			return
		}

		id := newResultID()
		s.store.set(id, &StoredResult{
			ID:        id,
			Kind:      kind,
			Brief:     req.Brief,
			Industry:  generator.Industry(req.Industry),
			Model:     normalizeModel(req.Model),
			Items:     items,
			CreatedAt: time.Now(),
		})
		writeJSON(w, http.StatusOK, generateResp{ID: id, Items: items})
	}
}

func (s *Server) handleCombined(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	req, p, ok := s.preparePipeline(w, r)
	if !ok {
		return
	}
	// Two batches plus validations; give the combined run more room.
	ctx, cancel := context.WithTimeout(r.Context(), 120*time.Second)
	defer cancel()

	res, err := p.GenerateAll(ctx, req.Brief, generator.Industry(req.Industry))
	if err != nil {
		s.writeGenerationError(w, err)
		return
	}

	id := newResultID()
	s.store.set(id, &StoredResult{
		ID:        id,
		Kind:      "combined",
		Brief:     res.Brief,
		Industry:  generator.Industry(req.Industry),
		Model:     normalizeModel(req.Model),
		Captions:  res.Captions,
		Ideas:     res.Ideas,
		CreatedAt: time.Now(),
	})
	writeJSON(w, http.StatusOK, combinedResp{ID: id, Brief: res.Brief, Captions: res.Captions, Ideas: res.Ideas})
}

func (s *Server) handleGenerationByID(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	rest := strings.TrimPrefix(r.URL.Path, "/api/generations/")
	id, tail, _ := strings.Cut(rest, "/")
	if id == "" {
		http.NotFound(w, r)
		return
	}
	res, ok := s.store.get(id)
	if !ok {
		writeJSON(w, http.StatusNotFound, errorResp{Error: "generation not found"})
		return
	}
	switch tail {
	case "":
		writeJSON(w, http.StatusOK, res)
	case "preview":
		s.writePreview(w, res)
	default:
		http.NotFound(w, r)
	}
}

// preparePipeline decodes the request body and builds a pipeline bound
// to the requested provider.
func (s *Server) preparePipeline(w http.ResponseWriter, r *http.Request) (generateReq, *generator.Pipeline, bool) {
	var req generateReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResp{Error: "invalid request body"})
		return req, nil, false
	}

	choice := normalizeModel(req.Model)
	client, ok := s.clients[choice]
	if !ok {
		writeJSON(w, http.StatusBadRequest, errorResp{Error: "model " + string(choice) + " is not configured"})
		return req, nil, false
	}

	p, err := generator.NewPipeline(client, nil, s.logger)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, errorResp{Error: "pipeline unavailable"})
		return req, nil, false
	}
	return req, p, true
}

// normalizeModel accepts both the enum names and the model labels the
// original UI dropdown used.
func normalizeModel(m string) generator.ModelChoice {
	switch strings.ToLower(strings.TrimSpace(m)) {
	case "", "openai", "gpt-4":
		return generator.ModelOpenAI
	case "claude", "anthropic":
		return generator.ModelClaude
	default:
		return generator.ModelChoice(strings.ToLower(strings.TrimSpace(m)))
	}
}

func (s *Server) writeGenerationError(w http.ResponseWriter, err error) {
	var inputErr *generator.InputError
	if errors.As(err, &inputErr) {
		writeJSON(w, http.StatusBadRequest, errorResp{Error: inputErr.Message})
		return
	}
	s.logger.Printf("[server] generation failed: %v", err)
	writeJSON(w, http.StatusBadGateway, errorResp{Error: "generation failed, please retry"})
}

// --- Helpers ---

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func (s *Server) logMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		s.logger.Printf("[http] %s %s %s", r.Method, r.URL.Path, time.Since(start))
	})
}
