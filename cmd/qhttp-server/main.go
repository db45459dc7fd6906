package main

import (
	"context"
	"fmt"

	"github.com/ridge/qhttp"
	"github.com/ridge/qhttp/run"
	"github.com/ridge/qhttp/tquic"
	"github.com/ridge/qhttp/ttls"
	"github.com/spf13/pflag"
)

func main() {
	var addr string
	pflag.StringVar(&addr, "addr", "127.0.0.1:4433", "UDP address to listen on")
	pflag.Parse()

	run.Server(func(ctx context.Context) error {
		identity, err := ttls.NewIdentity()
		if err != nil {
			return err
		}
		tlsConf, err := ttls.ServerConfig(identity)
		if err != nil {
			return err
		}
		listener, err := tquic.Listen(addr, tlsConf)
		if err != nil {
			return fmt.Errorf("listening on %s: %w", addr, err)
		}

		router := qhttp.NewRouter(qhttp.DefaultRoutes)
		return qhttp.NewServer(listener, qhttp.StandardMiddleware(router)).Run(ctx)
	})
}
