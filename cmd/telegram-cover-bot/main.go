package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/covergram/telegram-cover-bot/internal/api"
	tcbbot "github.com/covergram/telegram-cover-bot/internal/bot"
	tcbconfig "github.com/covergram/telegram-cover-bot/internal/config"
	"github.com/covergram/telegram-cover-bot/internal/handlers"
	"github.com/covergram/telegram-cover-bot/internal/lang"
	"github.com/covergram/telegram-cover-bot/internal/poster"
	"github.com/covergram/telegram-cover-bot/internal/session"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

var (
	Version   = "dev"
	BuildTime = "unknown"
)

func main() {
	_ = godotenv.Load()

	config, err := tcbconfig.NewConfig()
	if err != nil {
		logrus.WithError(err).Fatal("Failed to initialize configuration")
	}

	if level, parseErr := logrus.ParseLevel(config.LogLevel); parseErr == nil {
		logrus.SetLevel(level)
	} else {
		logrus.Warnf("Invalid log level '%s', defaulting to 'info'", config.LogLevel)
	}

	logrus.WithFields(logrus.Fields{
		"version":    Version,
		"build_time": BuildTime,
	}).Info("Starting Telegram Cover Bot")

	lang.SetupLang(config)

	botInstance, err := tcbbot.InitBot(config)
	if err != nil {
		logrus.WithError(err).Fatal("Bot initialization failed")
	}

	store := session.NewStore()
	posterClient := poster.NewClient(
		config.PosterAPIURL,
		config.SearchTimeout,
		config.FetchTimeout,
		config.MaxPosters,
	)

	healthServer := api.NewServer(config.HealthListenAddr)
	go func() {
		if serveErr := healthServer.Start(); serveErr != nil && !errors.Is(serveErr, http.ErrServerClosed) {
			logrus.WithError(serveErr).Fatal("Health server failed")
		}
	}()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	go processUpdates(ctx, botInstance, store, posterClient)

	logrus.Info("Telegram Cover Bot started successfully")

	<-sigChan
	logrus.Info("Received shutdown signal, starting graceful shutdown...")

	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := healthServer.Shutdown(shutdownCtx); err != nil {
		logrus.WithError(err).Warn("Health server shutdown failed")
	}

	logrus.Info("Telegram Cover Bot shutdown complete")
}

func processUpdates(
	ctx context.Context,
	bot *tcbbot.Bot,
	store *session.Store,
	posters *poster.Client,
) {
	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60
	updates := bot.Api.GetUpdatesChan(u)

	for {
		select {
		case update := <-updates:
			go func(update tgbotapi.Update) {
				defer handlers.Recover()
				handlers.Router(bot, &update, store, posters)
			}(update)
		case <-ctx.Done():
			logrus.Info("Stopping update processing")
			return
		}
	}
}
