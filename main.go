package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/joho/godotenv"

	"vertical_content_generator/generator"
	"vertical_content_generator/server"
)

var verbose bool

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)
	configPath := flag.String("config", "config/config.json", "path to config.json")
	brief := flag.String("brief", "", "campaign brief text")
	industry := flag.String("industry", "", "target industry (see -list-industries)")
	model := flag.String("model", "openai", "model provider: openai, claude, or mock")
	ideas := flag.Bool("ideas", false, "generate content ideas instead of captions")
	listIndustries := flag.Bool("list-industries", false, "print supported industries and exit")
	serve := flag.Bool("serve", false, "start web server")
	addr := flag.String("addr", "", "http listen address when --serve (overrides config.server_addr)")
	flag.BoolVar(&verbose, "v", false, "enable info logs")
	flag.Parse()

	// Provider keys may live in a local .env during development.
	_ = godotenv.Load()

	if *listIndustries {
		for _, ind := range generator.Industries {
			fmt.Println(ind)
		}
		return
	}

	cfg, err := generator.LoadConfig(*configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	logger := log.Default()
	if verbose {
		logger.Printf("[init] config loaded from %s", *configPath)
	}

	// Web server mode
	if *serve {
		clients := buildClients(cfg, logger)
		if len(clients) == 0 {
			fmt.Fprintln(os.Stderr, "no provider configured; set openai.api_key or anthropic.api_key (or the matching env vars)")
			os.Exit(1)
		}
		srv, err := server.New(clients, logger)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		listen := cfg.ServerAddr
		if *addr != "" {
			listen = *addr
		}
		if listen == "" {
			listen = ":8080"
		}
		log.Printf("Starting web server on %s", listen)
		if err := http.ListenAndServe(listen, srv.Routes()); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		return
	}

	// CLI one-shot mode
	if *brief == "" || *industry == "" {
		fmt.Fprintln(os.Stderr, "--brief and --industry are required (or use --serve)")
		os.Exit(1)
	}

	llm, err := generator.BuildLLM(cfg, generator.ModelChoice(*model))
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	pipeline, err := generator.NewPipeline(llm, nil, logger)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	profile := generator.CaptionProfile
	if *ideas {
		profile = generator.ContentIdeaProfile
	}

	ctx, cancel := context.WithTimeout(context.Background(), 120*time.Second)
	defer cancel()

	items, err := pipeline.Generate(ctx, profile, *brief, generator.Industry(*industry), generator.BatchSize)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	for i, item := range items {
		suffix := ""
		if item.Status == generator.StatusLowRelevance {
			suffix = " (low relevance)"
		}
		fmt.Printf("%d. %s%s\n", i+1, item.Text, suffix)
	}
}

// buildClients constructs one client per configured provider. A missing
// key just skips that provider; the server rejects requests for it.
func buildClients(cfg generator.Config, logger *log.Logger) map[generator.ModelChoice]generator.LLMClient {
	clients := make(map[generator.ModelChoice]generator.LLMClient)
	for _, choice := range []generator.ModelChoice{generator.ModelOpenAI, generator.ModelClaude} {
		llm, err := generator.BuildLLM(cfg, choice)
		if err != nil {
			logger.Printf("[init] provider %s unavailable: %v", choice, err)
			continue
		}
		clients[choice] = llm
	}
	return clients
}
