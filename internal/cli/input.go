// Package cli runs the interactive solve loop for DBG and playing by hand
package cli

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/bastiangx/clueserve/internal/utils"
	"github.com/bastiangx/clueserve/pkg/dictionary"
	"github.com/bastiangx/clueserve/pkg/solver"
)

// InputHandler drives a solver session from stdin. Each round it prints the
// suggested guess, reads the feedback line the game produced for it, and
// feeds that back into the session until solved or exhausted.
type InputHandler struct {
	session *solver.Session
	dict    *dictionary.Dictionary
}

// NewInputHandler handles initialization of the InputHandler
func NewInputHandler(session *solver.Session, dict *dictionary.Dictionary) *InputHandler {
	return &InputHandler{session: session, dict: dict}
}

// Start begins the interface loop. It prompts for the puzzle's first letter,
// resets the session on it, then alternates suggestions and feedback reads.
// Returns nil on a clean finish or EOF.
func (h *InputHandler) Start() error {
	log.Print("clueserve CLI")
	log.Printf("%s words loaded", utils.FormatWithCommas(h.dict.Len()))
	reader := bufio.NewReader(os.Stdin)

	log.Print("first letter of the answer (Ctrl+C to exit):")
	for {
		log.Print("> ")
		line, err := reader.ReadString('\n')
		if err != nil {
			if err == io.EOF {
				return nil
			}
			return err
		}
		line = strings.ToLower(strings.TrimSpace(line))
		if line == "" {
			continue
		}
		if len(line) != 1 || !utils.IsSeedLetter(line[0]) {
			log.Errorf("Need a single a-z letter, got %q", line)
			continue
		}

		sug, err := h.session.Reset(line[0])
		if err != nil {
			log.Errorf("Reset failed: %v", err)
			continue
		}
		if done := h.runRounds(reader, sug); done {
			log.Print("first letter for the next puzzle (Ctrl+C to exit):")
			continue
		}
		return nil
	}
}

// runRounds plays one puzzle to completion. Returns false only when stdin
// closed mid-game.
func (h *InputHandler) runRounds(reader *bufio.Reader, sug solver.Suggestion) bool {
	for {
		switch sug.Outcome {
		case solver.OutcomeSolved:
			log.Printf("I got it! The answer is %q", sug.Word)
			return true
		case solver.OutcomeExhausted:
			log.Warn("No more possible words! Did you make a mistake in the feedback?")
			return true
		}

		clWord := fmt.Sprintf("\033[38;5;75m%s\033[0m", sug.Word)
		log.Printf("try %s  (%s candidates left)", clWord, utils.FormatWithCommas(sug.Remaining))
		log.Print("feedback [c=correct spot, w=wrong spot, any other letter=absent]:")

		log.Print("> ")
		line, err := reader.ReadString('\n')
		if err != nil {
			return false
		}
		feedback := strings.ToLower(strings.TrimSpace(line))
		if feedback == "" {
			continue
		}

		start := time.Now()
		next, err := h.session.ApplyFeedback(sug.Word, feedback)
		if err != nil {
			log.Errorf("Bad feedback: %v", err)
			continue
		}
		log.Debugf("Took [ %v ] to filter", time.Since(start))
		sug = next
	}
}
