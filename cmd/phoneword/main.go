// Copyright 2025 The Phoneword Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

/*
Package main implements the phoneword CLI and IPC server.

phoneword turns phone numbers into every word rendering a dictionary allows,
so 225563 becomes CALL-ME. Digits with no covering word stay in the rendering
as literals, one at a time; 0 and 1 never spell a letter and may repeat.

# Usage

Read numbers from stdin until a line containing "exit", using the bundled
word list:

	phoneword

Use a custom dictionary and convert the numbers of one or more data files:

	phoneword -dict /usr/share/dict/words numbers.txt more.txt

Serve msgpack requests on stdin/stdout with Prometheus metrics:

	phoneword -server -metrics :9102

# Configuration

Runtime configuration lives in a TOML file created with defaults on first run
under the user config directory:

	[dict]
	path = ""

	[cli]
	exit_command = "exit"
	prompt = "> "

	[server]
	max_digits = 32
	max_batch = 256
	max_renderings = 100000
	metrics_addr = ""

Flags override the file.

# Command Line Flags

	-dict string
	    Word list with one word per line (default: bundled list)
	-config string
	    Path to config.toml
	-d  Enable debug mode with detailed logging
	-server
	    Serve msgpack requests on stdin/stdout
	-metrics string
	    Address for the Prometheus /metrics endpoint in server mode
	-version
	    Show current version

An unreadable dictionary, or one holding no usable word, stops the program.
An unreadable data file is reported and the remaining files are still
processed.
*/
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/bastiangx/phoneword/internal/cli"
	"github.com/bastiangx/phoneword/internal/metrics"
	"github.com/bastiangx/phoneword/internal/utils"
	"github.com/bastiangx/phoneword/pkg/config"
	"github.com/bastiangx/phoneword/pkg/dictionary"
	"github.com/bastiangx/phoneword/pkg/mnemonic"
	"github.com/bastiangx/phoneword/pkg/server"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
)

const (
	Version = "0.3.0"
	AppName = "phoneword"
	gh      = "https://github.com/bastiangx/phoneword"
)

// sigHandler is a simple handler for OS signals to exit normally.
func sigHandler(cancel context.CancelFunc) {
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-c
		cancel()
		fmt.Fprintf(os.Stderr, "\nExiting...\n")
		os.Exit(0)
	}()
}

// main wires the dictionary, converter and the selected front end.
func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	sigHandler(cancel)

	showVersion := flag.Bool("version", false, "Show current version")
	dictPath := flag.String("dict", "", "Word list with one word per line (default: bundled list)")
	configPath := flag.String("config", "", "Path to config.toml")
	debugMode := flag.Bool("d", false, "Toggle debug mode")
	serverMode := flag.Bool("server", false, "Serve msgpack requests on stdin/stdout")
	metricsAddr := flag.String("metrics", "", "Address for the Prometheus /metrics endpoint in server mode")

	flag.Parse()

	if *showVersion {
		printVersion()
		os.Exit(0)
	}

	if *debugMode {
		log.SetLevel(log.DebugLevel)
		log.SetReportTimestamp(true)
	} else {
		log.SetLevel(log.InfoLevel)
		log.SetReportTimestamp(false)
	}

	appConfig, activePath := config.LoadConfigWithPriority(*configPath)
	log.Debugf("Using config file: (%s)", utils.GetAbsolutePath(activePath))

	if *dictPath == "" {
		*dictPath = appConfig.Dict.Path
	}
	dict, err := loadDictionary(*dictPath)
	if err != nil {
		log.Fatalf("Failed to load dictionary: %v", err)
	}
	if err := dict.Validate(); err != nil {
		log.Errorf("The %s contains no words that can be mapped to a phone number.", dictionarySource(*dictPath))
		os.Exit(1)
	}
	log.Debug("Dictionary ready", "words", dict.TotalWordCount(), "maxWordLength", dict.MaxWordLength())

	converter := mnemonic.NewConverter(dict)

	if *serverMode {
		if *metricsAddr == "" {
			*metricsAddr = appConfig.Server.MetricsAddr
		}
		runServer(ctx, converter, dict, appConfig, *metricsAddr)
		return
	}

	printer := cli.NewPrinter(os.Stdout)

	if flag.NArg() > 0 {
		files := utils.ResolvePaths(flag.Args())
		log.Debugf("Processing %d data files", len(files))
		if err := cli.NewBatchRunner(converter, printer).Run(files); err != nil {
			os.Exit(1)
		}
		return
	}

	inputHandler := cli.NewInputHandler(converter, printer, appConfig.CLI, os.Stdin, cli.IsInteractive(os.Stdin))
	if err := inputHandler.Start(); err != nil {
		log.Fatalf("CLI error: %v", err)
	}
}

// loadDictionary reads the word list at path, or the bundled one when path is empty.
func loadDictionary(path string) (*dictionary.Dictionary, error) {
	if path == "" {
		log.Debug("No dictionary specified, using bundled word list")
		return dictionary.LoadDefault()
	}
	log.Infof("Dictionary %s passed as argument. Overriding default dictionary.", path)
	if !utils.IsReadableFile(path) {
		return nil, fmt.Errorf("dictionary file: %s is missing or not readable: %w", path, dictionary.ErrUnreadable)
	}
	return dictionary.LoadFile(path)
}

// dictionarySource names a word list for messages.
func dictionarySource(path string) string {
	if path == "" {
		return "bundled word list"
	}
	return fmt.Sprintf("dictionary %q", path)
}

func runServer(ctx context.Context, converter *mnemonic.Converter, dict *dictionary.Dictionary, appConfig *config.Config, metricsAddr string) {
	recorder := metrics.NewRecorder(dict)
	if metricsAddr != "" {
		go func() {
			if err := recorder.Serve(ctx, metricsAddr); err != nil && !errors.Is(err, context.Canceled) {
				log.Errorf("Metrics endpoint stopped: %v", err)
			}
		}()
	}

	srv := server.NewServer(converter, dict, appConfig, os.Stdin, os.Stdout)
	srv.SetRecorder(recorder)

	log.Debug("spawning IPC")
	if err := srv.Start(); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

// printVersion shows the styled version banner.
func printVersion() {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportCaller:    false,
		ReportTimestamp: false,
		Prefix:          "",
	})

	styles := log.DefaultStyles()
	styles.Values["version"] = lipgloss.NewStyle().Bold(true).
		Foreground(lipgloss.AdaptiveColor{Light: "#575279", Dark: "#e0def4"})
	styles.Values["gh"] = lipgloss.NewStyle().Italic(true).
		Foreground(lipgloss.AdaptiveColor{Light: "#575279", Dark: "#e0def4"})
	logger.SetStyles(styles)

	logger.Print("")
	logger.Print("[ " + AppName + " ] Spells phone numbers with words!")
	logger.Print("", "version", Version)
	logger.Print("")
	logger.Print("use -h or --help to see available options")
	logger.Print("Github Repo", "gh", gh)
}
