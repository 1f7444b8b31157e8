// Command classify runs a single classification session from the command
// line: it reads a document, drives the consensus loop to a terminal
// decision, and prints the decision as JSON.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/triage-labs/quorum/internal/config"
	"github.com/triage-labs/quorum/internal/documents"
	"github.com/triage-labs/quorum/internal/infrastructure"
)

func main() {
	file := flag.String("file", "", "path to the document to classify")
	name := flag.String("name", "", "document name (defaults to the file name)")
	flag.Parse()

	if *file == "" {
		flag.Usage()
		os.Exit(2)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("config load failed:", err)
	}

	infra, err := infrastructure.New(cfg)
	if err != nil {
		log.Fatal("init failed:", err)
	}

	data, err := os.ReadFile(*file)
	if err != nil {
		log.Fatal("read document failed:", err)
	}

	docName := *name
	if docName == "" {
		docName = filepath.Base(*file)
	}

	doc, err := documents.New(docName, string(data), nil)
	if err != nil {
		log.Fatal("invalid document:", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	decision, err := infra.Supervisor.Run(ctx, doc)
	if err != nil {
		log.Fatal("classification failed:", err)
	}

	out, err := json.MarshalIndent(decision, "", "  ")
	if err != nil {
		log.Fatal("encode decision failed:", err)
	}
	fmt.Println(string(out))

	if !decision.Accepted() {
		os.Exit(1)
	}
}
