package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/pflag"

	"github.com/fennwick/sqlchat/internal/config"
	"github.com/fennwick/sqlchat/internal/repl"
	"github.com/fennwick/sqlchat/internal/telemetry"
	"github.com/fennwick/sqlchat/memory"
)

func main() {
	var (
		configPath = pflag.String("config", "", "path to YAML config (optional)")
		database   = pflag.String("database", "", "database context for this session (overrides config)")
		sessionID  = pflag.String("session", "", "session id (default: random)")
		debug      = pflag.Bool("debug", false, "enable debug logging")
	)
	pflag.Parse()

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if *debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatal().Err(err).Msg("load config")
	}
	if *database != "" {
		cfg.Database = *database
	}
	if *sessionID == "" {
		*sessionID = uuid.NewString()
	}

	store := memory.New(memory.Config{
		MaxConversations:           cfg.MaxConversations,
		MaxMessagesPerConversation: cfg.MaxMessagesPerConversation,
	})
	session := repl.New(store, *sessionID, cfg.Database)

	// Graceful shutdown on Ctrl-C (SIGINT) / SIGTERM
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	ctx = telemetry.WithSessionID(ctx, *sessionID)
	sigch := make(chan os.Signal, 1)
	signal.Notify(sigch, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sigch)
	go func() {
		<-sigch
		fmt.Println("\nExiting...")
		cancel()
	}()

	log.Info().Str("session", *sessionID).Str("database", cfg.Database).Msg("session started")
	fmt.Println("sqlchat conversation memory (Ctrl-C to quit, /help for commands)")

	scanner := bufio.NewScanner(os.Stdin)

	// stdin reader goroutine -> lines into channel
	inputCh := make(chan string)
	go func() {
		for scanner.Scan() {
			inputCh <- scanner.Text()
		}
		close(inputCh)
	}()

outer:
	for {
		fmt.Print("\u001b[94m>\u001b[0m ")
		var (
			line string
			ok   bool
		)
		select {
		case <-ctx.Done():
			break outer
		case line, ok = <-inputCh:
			if !ok {
				break outer
			}
		}

		out, err := session.Execute(ctx, line)
		if err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			continue
		}
		if out != "" {
			fmt.Println(out)
		}
	}
	if err := scanner.Err(); err != nil {
		fmt.Fprintf(os.Stderr, "warning: stdin read error: %v\n", err)
	}
}
