/*
Package server implements msgpack IPC for the solver.

The server reads a stream of msgpack-encoded requests from stdin and writes
one msgpack-encoded response per request to stdout. Each request carries an
ID that is echoed back, a command, and the command's parameters.

Commands:

	{"id": "r1", "cmd": "reset", "letter": "c"}
	{"id": "h1", "cmd": "hint", "g": "crane", "f": "cnwnn"}
	{"id": "s1", "cmd": "stats"}
	{"id": "p1", "cmd": "health"}

A reset or hint response carries the suggested word, a status of "guess",
"solved" or "exhausted", the remaining candidate count and timing info:

	{"id": "h1", "status": "guess", "g": "coast", "n": 3, "t": 2}

Validation failures produce an error response with the echoed ID; the
session state is unchanged by a failed request.
*/
package server

// Request is an incoming IPC request
type Request struct {
	ID       string `msgpack:"id"`
	Command  string `msgpack:"cmd"`
	Letter   string `msgpack:"letter,omitempty"`
	Guess    string `msgpack:"g,omitempty"`
	Feedback string `msgpack:"f,omitempty"`
}

// SuggestionResponse answers reset and hint commands
type SuggestionResponse struct {
	ID        string `msgpack:"id"`
	Status    string `msgpack:"status"`
	Guess     string `msgpack:"g,omitempty"`
	Remaining int    `msgpack:"n"`
	TimeTaken int64  `msgpack:"t"`
}

// StatsResponse answers the stats command with set sizes
type StatsResponse struct {
	ID      string `msgpack:"id"`
	Status  string `msgpack:"status"`
	Source  int    `msgpack:"source"`
	Answers int    `msgpack:"answers"`
	Pool    int    `msgpack:"pool"`
	Words   int    `msgpack:"words"`
}

// HealthResponse answers the health command
type HealthResponse struct {
	ID     string `msgpack:"id"`
	Status string `msgpack:"status"`
}

// ErrorResponse holds basic error information for failed requests
type ErrorResponse struct {
	ID    string `msgpack:"id"`
	Error string `msgpack:"e"`
	Code  int    `msgpack:"c"`
}
