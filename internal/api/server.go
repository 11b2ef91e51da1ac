// internal/api/server.go
package api

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/tamzrod/triga-plc/internal/calib"
	"github.com/tamzrod/triga-plc/internal/status"
)

// Server exposes the latest acquisition over read-only HTTP.
type Server struct {
	store     *Store
	calib     calib.Set
	sessionID string
	router    *gin.Engine
}

func NewServer(store *Store, set calib.Set, sessionID string) *Server {
	s := &Server{
		store:     store,
		calib:     set,
		sessionID: sessionID,
	}
	s.router = s.setupRoutes()
	return s
}

func (s *Server) setupRoutes() *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(requestLogger(logrus.StandardLogger()))

	router.GET("/healthz", s.getHealth)

	v1 := router.Group("/api/v1")
	v1.GET("/status", s.getStatus)
	v1.GET("/record", s.getRecord)
	v1.GET("/calibration", s.getCalibration)

	return router
}

// Handler returns the HTTP handler.
func (s *Server) Handler() http.Handler {
	return s.router
}

// ListenAndServe serves on addr until ctx is done, then shuts down.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errc := make(chan error, 1)
	go func() {
		logrus.WithField("listen", addr).Info("api listening")
		errc <- srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errc; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// ---- handlers ----

func (s *Server) getHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

type statusResponse struct {
	Session string          `json:"session"`
	Health  status.Snapshot `json:"health"`
}

func (s *Server) getStatus(c *gin.Context) {
	c.IndentedJSON(http.StatusOK, statusResponse{
		Session: s.sessionID,
		Health:  s.store.Snapshot(),
	})
}

func (s *Server) getRecord(c *gin.Context) {
	raw := c.Query("raw") == "true"

	r, ok := s.store.Latest(raw)
	if !ok {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "no acquisition yet"})
		return
	}
	c.JSON(http.StatusOK, r)
}

func (s *Server) getCalibration(c *gin.Context) {
	var buf bytes.Buffer
	if err := calib.Encode(&buf, s.calib); err != nil {
		_ = c.AbortWithError(http.StatusInternalServerError, err)
		return
	}
	c.Data(http.StatusOK, "text/plain; charset=utf-8", buf.Bytes())
}
