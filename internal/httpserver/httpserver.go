package httpserver

import (
	"context"
	"errors"
	"net/http"
)

// Run serves HTTP until Shutdown is called.
func (srv *HTTPServer) Run() error {
	srv.l.Infof(context.Background(), "HTTP server listening on %s", srv.server.Addr)
	if err := srv.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Shutdown stops accepting connections and waits for in-flight requests
// up to the configured shutdown timeout.
func (srv *HTTPServer) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), srv.shutdownTimeout)
	defer cancel()

	srv.l.Info(ctx, "Shutting down HTTP server...")
	return srv.server.Shutdown(ctx)
}
