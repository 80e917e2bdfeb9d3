package server

import (
	"errors"
	"io"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/vmihailenco/msgpack/v5"

	"github.com/bastiangx/clueserve/internal/logger"
	"github.com/bastiangx/clueserve/internal/utils"
	"github.com/bastiangx/clueserve/pkg/dictionary"
	"github.com/bastiangx/clueserve/pkg/solver"
)

// Server handles the IPC for solver sessions
type Server struct {
	session *solver.Session
	dict    *dictionary.Dictionary
	decoder *msgpack.Decoder
	encoder *msgpack.Encoder
	log     *log.Logger
}

// NewServer creates a new solver server using stdin/stdout for IPC
func NewServer(session *solver.Session, dict *dictionary.Dictionary) *Server {
	return NewServerWithStreams(session, dict, os.Stdin, os.Stdout)
}

// NewServerWithStreams wires custom streams, used by tests. Logging goes to
// stderr regardless so the response stream stays clean.
func NewServerWithStreams(session *solver.Session, dict *dictionary.Dictionary, r io.Reader, w io.Writer) *Server {
	return &Server{
		session: session,
		dict:    dict,
		decoder: msgpack.NewDecoder(r),
		encoder: msgpack.NewEncoder(w),
		log:     logger.New("ipc"),
	}
}

// Start begins listening for IPC requests
func (s *Server) Start() error {
	s.log.Debug("Starting IPC server.")

	s.send(HealthResponse{Status: "ready"})

	for {
		var request Request
		if err := s.decoder.Decode(&request); err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			s.log.Errorf("Decoding request: %v", err)
			return err
		}
		s.handleRequest(request)
	}
}

// handleRequest dispatches a single decoded request
func (s *Server) handleRequest(request Request) {
	switch request.Command {
	case "reset":
		s.handleReset(request)
	case "hint":
		s.handleHint(request)
	case "stats":
		s.handleStats(request)
	case "health":
		s.send(HealthResponse{ID: request.ID, Status: "ok"})
	default:
		s.sendError(request.ID, "unknown command: "+request.Command, 400)
	}
}

func (s *Server) handleReset(request Request) {
	letter := strings.ToLower(request.Letter)
	if len(letter) != 1 || !utils.IsSeedLetter(letter[0]) {
		s.sendError(request.ID, "letter must be a single a-z character", 400)
		return
	}

	start := time.Now()
	sug, err := s.session.Reset(letter[0])
	if err != nil {
		s.sendError(request.ID, err.Error(), 400)
		return
	}
	s.sendSuggestion(request.ID, sug, time.Since(start))
}

func (s *Server) handleHint(request Request) {
	guess := strings.ToLower(request.Guess)
	feedback := strings.ToLower(request.Feedback)

	start := time.Now()
	sug, err := s.session.ApplyFeedback(guess, feedback)
	if err != nil {
		s.sendError(request.ID, err.Error(), 400)
		return
	}
	if !s.dict.Contains(guess) {
		s.log.Warnf("Feedback received for unknown word %q", guess)
	}
	s.sendSuggestion(request.ID, sug, time.Since(start))
}

func (s *Server) handleStats(request Request) {
	snap := s.session.Snapshot()
	s.send(StatsResponse{
		ID:      request.ID,
		Status:  "ok",
		Source:  snap.Source,
		Answers: snap.Answers,
		Pool:    snap.Pool,
		Words:   s.dict.Len(),
	})
}

func (s *Server) sendSuggestion(id string, sug solver.Suggestion, elapsed time.Duration) {
	s.send(SuggestionResponse{
		ID:        id,
		Status:    sug.Outcome.String(),
		Guess:     sug.Word,
		Remaining: sug.Remaining,
		TimeTaken: elapsed.Milliseconds(),
	})
}

func (s *Server) sendError(id, message string, code int) {
	s.send(ErrorResponse{ID: id, Error: message, Code: code})
}

// send encodes one response onto the output stream
func (s *Server) send(response interface{}) {
	if err := s.encoder.Encode(response); err != nil {
		s.log.Errorf("Encoding response: %v", err)
	}
}
