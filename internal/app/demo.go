package app

import (
	"context"
	"errors"
	"log"
	"net"
	"net/http"
	"time"

	"github.com/vmxmy/invoiceview/internal/api"
)

const defaultDemoCount = 5000

// demoServer is an in-process invoice backend bound to a loopback port.
type demoServer struct {
	listener net.Listener
	server   *http.Server
}

// startDemoServer serves the deterministic demo dataset on 127.0.0.1 and
// shuts down when the context is cancelled. It returns once the listener is
// accepting connections.
func startDemoServer(ctx context.Context, count int) (*demoServer, error) {
	if count <= 0 {
		count = defaultDemoCount
	}

	listener, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		return nil, err
	}

	srv := &http.Server{
		Handler:           api.NewDemoRouter(api.NewDemoStore(count)),
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		if err := srv.Serve(listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Printf("demo backend stopped: %v", err)
		}
	}()
	go func() {
		<-ctx.Done()
		shutdown, cancel := context.WithTimeout(context.Background(), time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdown)
	}()

	return &demoServer{listener: listener, server: srv}, nil
}

// Addr reports the host:port the demo backend is listening on.
func (d *demoServer) Addr() string {
	return d.listener.Addr().String()
}

// Close stops the demo backend immediately.
func (d *demoServer) Close() {
	_ = d.server.Close()
}
