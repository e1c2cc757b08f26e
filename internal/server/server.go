// Package server exposes the upcoming-birthday feed over local HTTP, as an
// iCalendar document for calendar clients and as JSON for everything else.
package server

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"log/slog"
	"net"
	"net/http"
	"sync"
	"sync/atomic"
	"time"

	"golang.org/x/time/rate"

	"github.com/tartampluch/go-assist/internal/config"
)

// feedSnapshot stores one rendered feed generation and its caching metadata.
type feedSnapshot struct {
	ics          []byte
	greetings    []byte
	etag         string
	lastModified string // RFC1123 format required by HTTP headers
}

// FeedServer serves the greeting feed via HTTP.
type FeedServer struct {
	// cache uses atomic.Pointer for lock-free reads.
	// The feed is read frequently by clients but replaced only on sync,
	// so this avoids RWMutex contention on the hot path.
	cache    atomic.Pointer[feedSnapshot]
	limiters clientLimiters
	Port     string
}

// clientLimiters tracks a token bucket per client IP.
type clientLimiters struct {
	mu       sync.Mutex
	visitors map[string]*rate.Limiter
}

func (c *clientLimiters) get(ip string) *rate.Limiter {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.visitors == nil {
		c.visitors = make(map[string]*rate.Limiter)
	}
	limiter, ok := c.visitors[ip]
	if !ok {
		limiter = rate.NewLimiter(rate.Limit(config.RateLimitPerSecond), config.RateLimitBurst)
		c.visitors[ip] = limiter
	}
	return limiter
}

// NewFeedServer creates a new instance of the server.
func NewFeedServer(port string) *FeedServer {
	return &FeedServer{
		Port: port,
	}
}

// Start initializes the HTTP server and blocks until the context is cancelled.
func (s *FeedServer) Start(ctx context.Context) error {
	if msg := config.ValidatePort(s.Port); msg != "" {
		return fmt.Errorf("%s", msg)
	}

	mux := http.NewServeMux()
	mux.HandleFunc(config.RouteCalendar, s.handleCalendarRequest)
	mux.HandleFunc(config.RouteGreetings, s.handleGreetingsRequest)

	srv := &http.Server{
		Addr:         config.LocalhostBindAddr + config.AddrSeparator + s.Port,
		Handler:      s.limitMiddleware(mux),
		ReadTimeout:  config.ServerReadTimeout,
		WriteTimeout: config.ServerWriteTimeout,
		IdleTimeout:  config.ServerIdleTimeout,
	}

	serverError := make(chan error, config.ChannelBufferSize)

	go func() {
		slog.Info(config.MsgServerListen,
			config.LogKeyComponent, config.CompServer,
			config.LogKeyPort, s.Port,
		)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverError <- err
		}
	}()

	select {
	case <-ctx.Done():
		slog.Info(config.MsgServerStop, config.LogKeyComponent, config.CompServer)
		shutdownCtx, cancel := context.WithTimeout(context.Background(), config.ShutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("%s: %w", config.ErrServerShutdown, err)
		}
		return nil

	case err := <-serverError:
		return fmt.Errorf("%s: %w", config.ErrServerStartup, err)
	}
}

// Update atomically replaces the served feed generation.
func (s *FeedServer) Update(ics, greetings []byte) {
	hash := sha256.Sum256(append(append([]byte{}, ics...), greetings...))
	etag := fmt.Sprintf(config.FormatETag, hex.EncodeToString(hash[:]))

	snap := &feedSnapshot{
		ics:          ics,
		greetings:    greetings,
		etag:         etag,
		lastModified: time.Now().UTC().Format(http.TimeFormat),
	}

	// Atomic store: concurrent readers see either the old or the new
	// complete snapshot, never a partial state.
	s.cache.Store(snap)

	slog.Debug(config.MsgCacheUpdated,
		config.LogKeyComponent, config.CompServer,
		config.LogKeySizeBytes, len(ics)+len(greetings),
		config.LogKeyETag, etag,
	)
}

// limitMiddleware applies per-client rate limiting in front of the mux.
func (s *FeedServer) limitMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ip, _, err := net.SplitHostPort(r.RemoteAddr)
		if err != nil {
			http.Error(w, config.HTTPMsgInternalErr, http.StatusInternalServerError)
			return
		}
		if !s.limiters.get(ip).Allow() {
			http.Error(w, config.HTTPMsgTooMany, http.StatusTooManyRequests)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (s *FeedServer) handleCalendarRequest(w http.ResponseWriter, r *http.Request) {
	s.serveSnapshot(w, r, config.MimeTextCalendar, func(snap *feedSnapshot) []byte { return snap.ics })
}

func (s *FeedServer) handleGreetingsRequest(w http.ResponseWriter, r *http.Request) {
	s.serveSnapshot(w, r, config.MimeJSON, func(snap *feedSnapshot) []byte { return snap.greetings })
}

// serveSnapshot writes one representation of the current snapshot with
// conditional-request support (ETag and Last-Modified).
func (s *FeedServer) serveSnapshot(w http.ResponseWriter, r *http.Request, mime string, body func(*feedSnapshot) []byte) {
	if r.Method != http.MethodGet && r.Method != http.MethodHead {
		w.Header().Set(config.HeaderAllow, config.AllowedMethods)
		http.Error(w, config.HTTPMsgMethodNotAll, http.StatusMethodNotAllowed)
		return
	}

	snap := s.cache.Load()
	if snap == nil {
		w.Header().Set(config.HeaderRetryAfter, config.RetryAfterSeconds)
		http.Error(w, config.HTTPMsgInitializing, http.StatusServiceUnavailable)
		return
	}

	w.Header().Set(config.HeaderContentType, mime)
	w.Header().Set(config.HeaderXContentType, config.MimeNoSniff)
	w.Header().Set(config.HeaderCacheControl, config.CacheControlPrivate)
	w.Header().Set(config.HeaderETag, snap.etag)
	w.Header().Set(config.HeaderLastModified, snap.lastModified)

	if match := r.Header.Get(config.HeaderIfNoneMatch); match == snap.etag {
		w.WriteHeader(http.StatusNotModified)
		return
	}

	if since := r.Header.Get(config.HeaderIfModifiedSince); since != "" {
		if clientTime, err := time.Parse(http.TimeFormat, since); err == nil {
			if serverTime, err := time.Parse(http.TimeFormat, snap.lastModified); err == nil {
				if !serverTime.After(clientTime) {
					w.WriteHeader(http.StatusNotModified)
					return
				}
			}
		}
	}

	if r.Method == http.MethodGet {
		if _, err := io.Copy(w, bytes.NewReader(body(snap))); err != nil {
			slog.Error(config.ErrWriteResp,
				config.LogKeyComponent, config.CompServer,
				config.LogKeyError, err,
			)
		}
	}
}
