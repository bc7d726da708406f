// File path: cmd/guide/main.go
package main

import (
	"flag"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"

	"github.com/wellnessgarden/guide/internal/api"
	"github.com/wellnessgarden/guide/internal/common"
	ctxbuilder "github.com/wellnessgarden/guide/internal/context"
	"github.com/wellnessgarden/guide/internal/kb"
	"github.com/wellnessgarden/guide/internal/llm"
	"github.com/wellnessgarden/guide/internal/respond"
)

func main() {
	logger := common.Logger()

	if err := godotenv.Load(); err != nil {
		logger.Warn("guide: .env file not loaded", "error", err)
	} else {
		logger.Info("guide: environment loaded from .env")
	}

	addr := flag.String("addr", ":8084", "listen address")
	dataDir := flag.String("data", defaultDataDir(), "directory holding the knowledge base CSV files")
	flag.Parse()

	logger.Info("guide: startup initiated", "addr", *addr, "data", *dataDir)

	library := kb.NewLibrary(
		kb.NewGitaSource(kb.FileOpener(filepath.Join(*dataDir, "Bhagwad_Gita.csv"))),
		kb.NewFAQSource(kb.FileOpener(filepath.Join(*dataDir, "Mental_Health_FAQ.csv"))),
		kb.NewCommunitySource(kb.FileOpener(filepath.Join(*dataDir, "mental_health.csv"))),
		kb.NewStudentSource(kb.FileOpener(filepath.Join(*dataDir, "Student Mental health.csv"))),
	)
	builder := ctxbuilder.NewBuilder(library, ctxbuilder.DefaultWellnessDoc())

	provider := llm.NewProvider()
	logger.Info("guide: llm provider ready", "provider", provider.Name())

	responder := respond.NewResponder(builder, provider)
	server, err := api.NewServer(responder, library)
	if err != nil {
		logger.Error("guide: server construction failed", "error", err)
		fmt.Println("server error:", err)
		os.Exit(1)
	}

	logger.Info("guide: server listening", "addr", *addr, "health", "/healthz")
	fmt.Printf("Serving on %s\n", *addr)
	reachable := *addr
	if strings.HasPrefix(reachable, ":") {
		reachable = "localhost" + reachable
	}
	logger.Info("guide: verify reachability", "suggestion", fmt.Sprintf("curl http://%s/healthz", reachable))
	if err := http.ListenAndServe(*addr, server); err != nil {
		logger.Error("guide: server stopped", "error", err)
		fmt.Println("server stopped:", err)
	}
}

func defaultDataDir() string {
	if env := strings.TrimSpace(os.Getenv("GUIDE_DATA_DIR")); env != "" {
		return env
	}
	return "data"
}
