package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"

	"geminibot/ai/geminichat"
	"geminibot/config"
	"geminibot/database"
	"geminibot/discord"
	"geminibot/logging"
	"geminibot/metrics"
	"geminibot/persona"
	"geminibot/session"
)

func main() {
	var model string
	flag.StringVar(&model, "model", "", "Override the GEMINI_MODEL from the environment")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalln(err)
	}
	if model != "" {
		cfg.Model = model
	}

	logger := logging.NewLogger(cfg.LogLevel, os.Stdout)
	ctx := context.Background()

	// listen and serve for metrics server.
	server := metrics.SetupServer(cfg.MetricsAddr)
	go server.Run()

	// the chat log is optional; without postgres the bot keeps
	// everything in memory and writes nothing
	var db database.ChatWriter = database.Noop{}
	var pg *database.Postgres
	if cfg.PostgresURL != "" {
		pg, err = database.NewPostgres(cfg.PostgresURL, logger)
		if err != nil {
			log.Fatalln(err)
		}
		db = pg
	}

	registry, err := persona.Load()
	if err != nil {
		log.Fatalln(err)
	}
	store := session.NewStore()

	llm, err := geminichat.Setup(ctx, cfg.GeminiAPIKey, cfg.Model, logger)
	if err != nil {
		log.Fatalln(err)
	}

	client, err := discord.Setup(cfg.DiscordToken, llm, store, registry, db, logger)
	if err != nil {
		log.Fatalln(err)
	}
	logger.Info("connected to discord", "user", client.Session.State.User.Username)

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt)
	log.Println("Press Ctrl+C to exit")
	<-stop

	logger.Info("shutting down")
	if err := client.Session.Close(); err != nil {
		logger.Error("error closing discord session", "error", err.Error())
	}
	if pg != nil {
		pg.Close()
	}
}
