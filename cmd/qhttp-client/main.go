package main

import (
	"context"
	"fmt"

	"github.com/ridge/qhttp"
	"github.com/ridge/qhttp/run"
	"github.com/ridge/qhttp/tlog"
	"github.com/ridge/qhttp/ttls"
	"github.com/spf13/pflag"
	"go.uber.org/zap"
)

// the fixed request sequence issued against the demo server
var paths = []string{"/", "/test", "/health", "/unknown"}

func main() {
	var addr string
	var insecure bool
	pflag.StringVar(&addr, "addr", "127.0.0.1:4433", "server UDP address")
	pflag.BoolVar(&insecure, "insecure", true, "accept any server certificate (development only)")
	pflag.Parse()

	run.Tool(func(ctx context.Context) error {
		policy := ttls.VerifyStrict
		if insecure {
			policy = ttls.VerifyAcceptAny
		}

		logger := tlog.Get(ctx)
		logger.Info("Connecting", zap.String("addr", addr))
		client, err := qhttp.Dial(ctx, addr, ttls.ClientConfig(policy))
		if err != nil {
			return err
		}
		defer client.Close()
		logger.Info("Connected")

		// Requests are issued strictly sequentially: each response is
		// read in full before the next request goes out, so the output
		// order is deterministic.
		for _, path := range paths {
			status, body, err := client.Get(ctx, path)
			if err != nil {
				return fmt.Errorf("GET %s: %w", path, err)
			}
			fmt.Printf("GET %s -> %d\n%s\n", path, status, body)
		}

		logger.Info("All requests completed")
		return nil
	})
}
