package mux

import (
	"context"
	"net/http"
	"time"

	gmux "github.com/gorilla/mux"
	"github.com/sirupsen/logrus"
	"wildpoker-server/internal/util"
	"wildpoker-server/pkg/poker/wild"
)

type ctxKey int

const (
	ctxLoggerKey ctxKey = iota
)

// RequestIDHeader carries the request ID on requests and responses
const RequestIDHeader = "X-Request-ID"

// Mux handles HTTP requests
type Mux struct {
	*gmux.Router
	config   config
	version  string
	resolver *wild.Resolver
}

type config struct {
	// pongWait is how long a websocket may go without a pong before it is closed
	pongWait time.Duration
}

// Option configures a Mux
type Option func(m *Mux)

// WithPongWait sets how long a websocket may go without a pong
func WithPongWait(d time.Duration) Option {
	return func(m *Mux) {
		if d > 0 {
			m.config.pongWait = d
		}
	}
}

// NewMux returns a new HTTP mux
func NewMux(version string, resolver *wild.Resolver, opts ...Option) *Mux {
	if resolver == nil {
		resolver = wild.NewResolver()
	}

	this := &Mux{
		Router:   gmux.NewRouter(),
		version:  version,
		resolver: resolver,
		config: config{
			pongWait: time.Second * 60,
		},
	}

	for _, opt := range opts {
		opt(this)
	}

	this.Router.Use(requestIDMiddleware)

	r := this.Router
	r.Methods(http.MethodGet).Path("/health").Handler(this.getHealth())
	r.Methods(http.MethodPost).Path("/hand/best").Handler(this.postHandBest())
	r.Methods(http.MethodPost).Path("/hand/best-wild").Handler(this.postHandBestWild())
	r.Methods(http.MethodGet).Path("/hand/ws").Handler(this.getHandWS())

	return this
}

// requestIDMiddleware reuses the caller's request ID or creates one, and attaches a logger carrying it
func requestIDMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(RequestIDHeader)
		if id == "" {
			id = util.NewRequestID()
		}

		w.Header().Set(RequestIDHeader, id)

		logger := logrus.WithFields(logrus.Fields{
			"requestID":  id,
			"remoteAddr": remoteAddr(r),
		})

		ctx := context.WithValue(r.Context(), ctxLoggerKey, logrus.FieldLogger(logger))
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
