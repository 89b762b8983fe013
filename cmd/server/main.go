package main

import (
	"flag"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/gorilla/handlers"
	"github.com/rs/cors"
	"github.com/sirupsen/logrus"
	"wildpoker-server/internal/config"
	"wildpoker-server/internal/mux"
	"wildpoker-server/pkg/poker/wild"
)

const readTimeout = time.Second * 5
const writeTimeout = time.Second * 10

// Version is the server version
var Version = "v0.0.0-dev"

var addr = flag.String("addr", "", "the listen address (defaults to the configured address)")

func main() {
	flag.Parse()
	setupLogger()

	cfg := config.Instance()

	listenAddr := cfg.Addr
	if *addr != "" {
		listenAddr = *addr
	}

	resolver := wild.NewResolver(wild.WithWorkers(cfg.Resolver.Workers))

	c := cors.New(cors.Options{
		AllowedOrigins: cfg.CORS.AllowedOrigins,
		AllowedHeaders: []string{"Origin", "Accept", "Content-Type", "X-Requested-With", mux.RequestIDHeader},
		AllowedMethods: []string{http.MethodGet, http.MethodPost},
	})

	m := mux.NewMux(Version, resolver, mux.WithPongWait(time.Duration(cfg.Websocket.PongWait)*time.Second))

	srv := &http.Server{
		Addr:         listenAddr,
		Handler:      loggingHandler(c.Handler(m)),
		ReadTimeout:  readTimeout,
		WriteTimeout: writeTimeout,
	}

	logrus.WithFields(logrus.Fields{
		"addr":    srv.Addr,
		"workers": resolver.Workers(),
		"version": Version,
	}).Info("listening")
	logrus.Fatal(srv.ListenAndServe())
}

func loggingHandler(next http.Handler) http.Handler {
	if config.Instance().Log.DisableAccessLogs {
		return next
	}

	return handlers.CombinedLoggingHandler(os.Stdout, next)
}

func setupLogger() {
	cfg := config.Instance()
	if lvl := cfg.Log.Level; lvl != "" {
		level, err := logrus.ParseLevel(lvl)
		if err != nil {
			logrus.WithError(err).Fatal("could not parse level")
		}

		logrus.SetLevel(level)
	}

	if strings.ToLower(cfg.Log.Format) == "json" || strings.ToLower(os.Getenv("LOG_FORMAT")) == "json" {
		logrus.SetFormatter(&logrus.JSONFormatter{})
	}
}
