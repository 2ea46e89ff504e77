// Command reagent answers natural-language questions with an LLM that can
// call a small set of utility tools. It runs either as an interactive prompt
// or, with -serve, as an HTTP chat service.
package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/reagent/reagent/internal/config"
	"github.com/reagent/reagent/internal/server"
)

const banner = `reagent - a ReAct (Reason + Act + Observe) utility agent

Available tools:
  calculator            arithmetic and percentage calculations
  get_weather           current weather for a location
  get_earthquake_data   recent earthquakes from the USGS feed
  search_arxiv          research paper search
  get_currency_exchange currency conversion rates

Type 'exit' or 'quit' to end the session, 'examples' for sample questions.
`

const examples = `Example questions:

  1. If it's 15% colder tomorrow than today in Boise, what will the temperature be?
  2. Are there any recent earthquakes near California with magnitude above 4?
  3. Find a recent paper on transformers and summarize it briefly
  4. Convert 200 USD to EUR and tell me if it's enough for a weekend trip
  5. Calculate 15% tip on a $87.50 restaurant bill
`

func main() {
	serve := flag.Bool("serve", false, "run the HTTP chat service instead of the interactive prompt")
	flag.Parse()

	// Best effort: a missing .env is fine, the environment may be set already
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: %v\n", err)
		if err == config.ErrMissingAPIKey {
			fmt.Fprintln(os.Stderr, "\nSet your Anthropic API key:\n  export ANTHROPIC_API_KEY='your-api-key-here'")
		}
		os.Exit(1)
	}

	setupLogging(cfg)

	if *serve {
		runServer(cfg)
		return
	}
	runREPL(cfg)
}

func setupLogging(cfg *config.Config) {
	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)
	if cfg.Environment == "development" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	}
}

func runServer(cfg *config.Config) {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	srv, err := server.New(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("server setup failed")
	}

	log.Info().Str("addr", srv.Addr()).Msg("listening")
	if err := srv.Run(ctx); err != nil {
		log.Fatal().Err(err).Msg("server error")
	}
}

func runREPL(cfg *config.Config) {
	reactAgent, _ := server.BuildAgent(cfg)

	fmt.Print(banner)
	fmt.Printf("\nAgent initialized with model: %s\n", cfg.Model)

	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("\nYour question: ")
		if !scanner.Scan() {
			fmt.Println("\nGoodbye!")
			return
		}
		input := strings.TrimSpace(scanner.Text())

		switch strings.ToLower(input) {
		case "":
			continue
		case "exit", "quit", "q":
			fmt.Println("\nGoodbye!")
			return
		case "examples":
			fmt.Print(examples)
			continue
		}

		answer := reactAgent.Run(context.Background(), input)
		fmt.Printf("\nFINAL ANSWER:\n%s\n", answer)
	}
}
