/*
Package httpd exposes the solver session over HTTP.

Routes:

	GET /reset/:letter          start a new session anchored on a first letter
	GET /hint/:guess/:feedback  apply per-position feedback, get the next guess
	GET /health                 liveness check

Responses are JSON. A suggestion carries the guessed word, a status of
"guess", "solved" or "exhausted", the remaining candidate count and the
processing time in milliseconds. Validation failures return 400 with an
error body and leave the session untouched.
*/
package httpd

import (
	"net/http"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gin-gonic/gin"

	"github.com/bastiangx/clueserve/internal/utils"
	"github.com/bastiangx/clueserve/pkg/dictionary"
	"github.com/bastiangx/clueserve/pkg/solver"
)

// SuggestionResponse is the API shape for a solver suggestion
type SuggestionResponse struct {
	Guess     string `json:"guess,omitempty"`
	Status    string `json:"status"`
	Remaining int    `json:"remaining"`
	TimeTaken int64  `json:"time_ms"`
}

// ErrorResponse represents an API error
type ErrorResponse struct {
	Error  string `json:"error"`
	Status int    `json:"status"`
}

// Server wires the solver session and dictionary into a gin router
type Server struct {
	router  *gin.Engine
	session *solver.Session
	dict    *dictionary.Dictionary
	addr    string
}

// NewServer creates the HTTP API server
func NewServer(session *solver.Session, dict *dictionary.Dictionary, addr string) *Server {
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery())

	s := &Server{
		router:  router,
		session: session,
		dict:    dict,
		addr:    addr,
	}

	router.GET("/reset/:letter", s.handleReset)
	router.GET("/hint/:guess/:feedback", s.handleHint)
	router.GET("/health", s.handleHealth)

	return s
}

// Run blocks serving the API
func (s *Server) Run() error {
	log.Infof("HTTP API listening on %s", s.addr)
	return s.router.Run(s.addr)
}

// Handler exposes the router for tests
func (s *Server) Handler() http.Handler {
	return s.router
}

func (s *Server) handleReset(c *gin.Context) {
	letter := strings.ToLower(c.Param("letter"))
	if len(letter) != 1 || !utils.IsSeedLetter(letter[0]) {
		s.sendError(c, "letter must be a single a-z character")
		return
	}

	start := time.Now()
	sug, err := s.session.Reset(letter[0])
	if err != nil {
		s.sendError(c, err.Error())
		return
	}

	if n := s.dict.CountPrefix(letter); n == 0 {
		log.Warnf("No dictionary words start with '%s'", letter)
	}
	s.sendSuggestion(c, sug, time.Since(start))
}

func (s *Server) handleHint(c *gin.Context) {
	guess := strings.ToLower(c.Param("guess"))
	feedback := strings.ToLower(c.Param("feedback"))

	start := time.Now()
	sug, err := s.session.ApplyFeedback(guess, feedback)
	if err != nil {
		s.sendError(c, err.Error())
		return
	}

	// A guess outside the dictionary still filters fine, but it usually
	// means the client echoed the wrong word back.
	if !s.dict.Contains(guess) {
		log.Warnf("Feedback received for unknown word %q", guess)
	}
	s.sendSuggestion(c, sug, time.Since(start))
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok", "words": s.dict.Len()})
}

func (s *Server) sendSuggestion(c *gin.Context, sug solver.Suggestion, elapsed time.Duration) {
	c.JSON(http.StatusOK, SuggestionResponse{
		Guess:     sug.Word,
		Status:    sug.Outcome.String(),
		Remaining: sug.Remaining,
		TimeTaken: elapsed.Milliseconds(),
	})
}

func (s *Server) sendError(c *gin.Context, message string) {
	log.Debugf("Rejected request: %s", message)
	c.JSON(http.StatusBadRequest, ErrorResponse{
		Error:  message,
		Status: http.StatusBadRequest,
	})
}
