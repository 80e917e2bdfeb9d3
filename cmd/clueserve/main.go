/*
Package main implements the clueserve word-guess solver daemon and CLI.

Clueserve narrows a five-letter word search from per-position feedback. It
keeps a dictionary-backed candidate set, scores candidates by the letter
frequencies of the remaining answers, and suggests the highest scoring word
each round.

# Usage

Start the HTTP API with default settings:

	clueserve

Use a custom word list and enable debug logging:

	clueserve -dict /path/to/words_alpha.txt -d

Run the interactive CLI for testing and playing by hand:

	clueserve -c

Run the MessagePack IPC server over stdin/stdout:

	clueserve -ipc

# HTTP API

The default mode serves three routes:

	GET /reset/{letter}          start a session anchored on a first letter
	GET /hint/{guess}/{feedback} apply feedback, get the next guess
	GET /health                  liveness check

Feedback strings use 'c' for a correct spot, 'w' for a letter in the wrong
spot, and any other lowercase letter for absent:

	curl localhost:8088/reset/c
	curl localhost:8088/hint/crane/cnwnn

# Configuration

Runtime configuration lives in a TOML file that is created with defaults on
first run:

	[server]
	http_addr = ":8088"

	[dict]
	path = "words_alpha.txt"
	word_length = 5

	[solver]
	narrow_pool = false
	match_weight = 4

# Command Line Flags

	-version      Show current version
	-config path  Custom config file path
	-dict path    Word list path (overrides config)
	-addr string  HTTP listen address (overrides config)
	-d            Enable debug mode
	-c            Run the interactive CLI instead of a server
	-ipc          Run the MessagePack IPC server instead of HTTP
*/
package main

import (
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/bastiangx/clueserve/internal/cli"
	"github.com/bastiangx/clueserve/internal/utils"
	"github.com/bastiangx/clueserve/pkg/config"
	"github.com/bastiangx/clueserve/pkg/dictionary"
	"github.com/bastiangx/clueserve/pkg/httpd"
	"github.com/bastiangx/clueserve/pkg/server"
	"github.com/bastiangx/clueserve/pkg/solver"
)

const (
	Version = "0.2.0"
	AppName = "clueserve"
	gh      = "https://github.com/bastiangx/clueserve"
)

// sigHandler is a simple handler for OS signals to exit normally.
func sigHandler() {
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-c
		fmt.Fprintf(os.Stderr, "\nExiting...\n")
		os.Exit(0)
	}()
}

// main calls other packages to initialize the servers or CLI inputs.
// main() does not implement logic for them and only manages the flow.
func main() {
	sigHandler()

	showVersion := flag.Bool("version", false, "Show current version")
	configPath := flag.String("config", "", "Custom config file path")
	dictPath := flag.String("dict", "", "Word list path (overrides config)")
	httpAddr := flag.String("addr", "", "HTTP listen address (overrides config)")
	debugMode := flag.Bool("d", false, "Toggle debug mode")
	cliMode := flag.Bool("c", false, "Run the interactive CLI -- useful for testing and debugging")
	ipcMode := flag.Bool("ipc", false, "Run the msgpack IPC server on stdin/stdout")

	flag.Parse()

	if *showVersion {
		printVersion()
		os.Exit(0)
	}

	if *debugMode {
		log.SetLevel(log.DebugLevel)
		log.SetReportTimestamp(true)
	} else {
		log.SetLevel(log.WarnLevel)
	}

	pathResolver, err := utils.NewPathResolver()
	if err != nil {
		log.Fatalf("Failed to initialize path resolver: %v", err)
	}

	defaultConfigPath, err := pathResolver.GetConfigPath("config.toml")
	if err != nil {
		log.Warnf("No writable config location: %v. Using builtin defaults...", err)
		defaultConfigPath = ""
	}
	appConfig, usedPath, err := config.LoadConfigWithPriority(*configPath, defaultConfigPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	log.Debugf("Using config file: (%s)", usedPath)

	listPath := appConfig.Dict.Path
	if *dictPath != "" {
		listPath = *dictPath
	}
	resolvedList, err := pathResolver.GetWordListPath(listPath)
	if err != nil {
		log.Fatalf("Failed to resolve word list: %v", err)
	}

	dict, err := dictionary.Load(resolvedList)
	if err != nil {
		log.Fatalf("Failed to load dictionary: %v", err)
	}
	stats := dict.Stats()
	log.Debugf("Dictionary ready: %s words (%d skipped, %d duplicates)",
		utils.FormatWithCommas(stats.Words), stats.Skipped, stats.Dupes)

	session := solver.NewSession(dict.Words(), solver.Options{
		NarrowPool:  appConfig.Solver.NarrowPool,
		MatchWeight: appConfig.Solver.MatchWeight,
	})

	// CLI would be mainly used for testing and dbg purposes.
	// Any new features or changes should be tested in CLI mode first.
	if *cliMode {
		log.SetReportTimestamp(false)
		if !*debugMode {
			log.SetLevel(log.InfoLevel)
		}
		inputHandler := cli.NewInputHandler(session, dict)
		if err := inputHandler.Start(); err != nil {
			log.Fatalf("CLI error: %v", err)
		}
		return
	}

	if *ipcMode {
		log.Debug("spawning IPC")
		showStartupInfo(resolvedList, dict.Len())
		srv := server.NewServer(session, dict)
		if err := srv.Start(); err != nil {
			log.Fatalf("IPC server error: %v", err)
		}
		return
	}

	addr := appConfig.Server.HTTPAddr
	if *httpAddr != "" {
		addr = *httpAddr
	}
	showStartupInfo(resolvedList, dict.Len())
	srv := httpd.NewServer(session, dict, addr)
	if err := srv.Run(); err != nil {
		log.Fatalf("HTTP server error: %v", err)
	}
}

// printVersion displays a styled version banner.
func printVersion() {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportCaller:    false,
		ReportTimestamp: false,
		Prefix:          "",
	})

	styles := log.DefaultStyles()

	styles.Values["version"] = lipgloss.NewStyle().Bold(true).
		Foreground(lipgloss.AdaptiveColor{Light: "#575279", Dark: "#e0def4"})
	styles.Values["version"] = lipgloss.NewStyle().
		Background(lipgloss.AdaptiveColor{Light: "#f2e9e1", Dark: "#26233a"})

	styles.Values["gh"] = lipgloss.NewStyle().Italic(true).
		Foreground(lipgloss.AdaptiveColor{Light: "#575279", Dark: "#e0def4"})

	logger.SetStyles(styles)

	logger.Print("")
	logger.Print("[ clueserve ] Guess-side word solver for feedback games!")
	logger.Print("", "version", Version)
	logger.Print("")
	logger.Print("use -h or --help to see available options")
	logger.Print("Github Repo", "gh", gh)
}

// showStartupInfo displays some basic info about the init process.
func showStartupInfo(wordList string, wordCount int) {
	pid := os.Getpid()
	currentLevel := log.GetLevel()
	log.SetLevel(log.InfoLevel)

	println("===========")
	println(" clueserve ")
	println("===========")
	log.Infof("Version: %s", Version)
	log.Infof("Process ID: [ %d ]", pid)
	log.Info("init: OK")
	log.Infof("word list: ( %s )", wordList)
	log.Infof("words: %s", utils.FormatWithCommas(wordCount))
	log.Info("status: ready")
	println("===========")
	println("Press Ctrl+C to exit")

	log.SetLevel(currentLevel)
}
