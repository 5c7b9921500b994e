// ABOUTME: HTTP surface for the assistant: POST /ask plus a liveness endpoint
// ABOUTME: gorilla/mux routing with permissive CORS for the site widget
package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/gorilla/mux"
	"github.com/rs/cors"

	"github.com/avikd/folio-assistant/internal/fault"
)

// SiteAnswerer answers questions from the knowledge corpus.
type SiteAnswerer interface {
	Answer(ctx context.Context, question string) (string, error)
}

// ResumeAnswerer answers questions from the parsed resume profile. It never
// fails; missing data yields a templated message.
type ResumeAnswerer interface {
	Answer(question string) string
}

// Message is one turn of the widget conversation.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// AskRequest is the POST /ask body. Mode selects the pipeline; it defaults
// to the knowledge corpus.
type AskRequest struct {
	Messages []Message `json:"messages"`
	Mode     string    `json:"mode,omitempty"`
}

// AskResponse carries the assistant's answer.
type AskResponse struct {
	Answer string `json:"answer"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// Server is the HTTP front end over both answer pipelines.
type Server struct {
	router  *mux.Router
	handler http.Handler
	server  *http.Server
	site    SiteAnswerer
	resume  ResumeAnswerer
}

// NewServer creates a server listening on addr. resume may be nil when no
// resume pipeline is configured.
func NewServer(addr string, site SiteAnswerer, resume ResumeAnswerer) *Server {
	s := &Server{
		router: mux.NewRouter(),
		site:   site,
		resume: resume,
	}

	s.router.HandleFunc("/ask", s.handleAsk).Methods(http.MethodPost)
	s.router.HandleFunc("/healthz", s.handleHealthz).Methods(http.MethodGet)

	// The widget is served from the portfolio site's own origin, which can
	// be anywhere, so the API answers any origin. Preflight requests are
	// answered before any business logic runs.
	c := cors.New(cors.Options{
		AllowedOrigins:       []string{"*"},
		AllowedMethods:       []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders:       []string{"*"},
		OptionsSuccessStatus: http.StatusOK,
	})
	s.handler = c.Handler(s.router)

	s.server = &http.Server{
		Addr:         addr,
		Handler:      s.handler,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  120 * time.Second,
	}
	return s
}

// Handler exposes the full middleware-wrapped handler, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.handler
}

// Start begins serving and blocks until the server stops.
func (s *Server) Start() error {
	log.Printf("assistant API listening on %s", s.server.Addr)
	return s.server.ListenAndServe()
}

// Stop shuts the server down gracefully.
func (s *Server) Stop(ctx context.Context) error {
	log.Printf("assistant API shutting down")
	return s.server.Shutdown(ctx)
}

func (s *Server) handleAsk(w http.ResponseWriter, r *http.Request) {
	var req AskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("invalid request body: %v", err))
		return
	}
	defer r.Body.Close()

	question := lastUserMessage(req.Messages)
	if question == "" {
		writeError(w, http.StatusBadRequest, "no user message found")
		return
	}

	switch req.Mode {
	case "", "knowledge":
		s.answerFromKnowledge(w, r, question)
	case "resume":
		s.answerFromResume(w, question)
	default:
		writeError(w, http.StatusBadRequest, fmt.Sprintf("unknown mode %q", req.Mode))
	}
}

func (s *Server) answerFromKnowledge(w http.ResponseWriter, r *http.Request, question string) {
	answer, err := s.site.Answer(r.Context(), question)
	if err != nil {
		switch {
		case errors.Is(err, fault.ErrNoQuestion):
			writeError(w, http.StatusBadRequest, "no user message found")
		case errors.Is(err, fault.ErrMissingAPIKey):
			writeError(w, http.StatusInternalServerError, "assistant is not configured with an API key")
		default:
			log.Printf("knowledge pipeline failed: %v", err)
			writeError(w, http.StatusInternalServerError, err.Error())
		}
		return
	}
	writeJSON(w, http.StatusOK, AskResponse{Answer: answer})
}

func (s *Server) answerFromResume(w http.ResponseWriter, question string) {
	if s.resume == nil {
		writeError(w, http.StatusInternalServerError, "resume pipeline is not configured")
		return
	}
	writeJSON(w, http.StatusOK, AskResponse{Answer: s.resume.Answer(question)})
}

func (s *Server) handleHealthz(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// lastUserMessage returns the content of the most recent user-role message.
func lastUserMessage(messages []Message) string {
	for i := len(messages) - 1; i >= 0; i-- {
		if messages[i].Role == "user" && strings.TrimSpace(messages[i].Content) != "" {
			return strings.TrimSpace(messages[i].Content)
		}
	}
	return ""
}

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.Printf("failed to encode response: %v", err)
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Error: msg})
}
