package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"github.com/forgelab/editorlink/internal/debug"
	"github.com/forgelab/editorlink/pkg/editor"
	"github.com/forgelab/editorlink/pkg/transport"
)

// Version information set at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

var (
	engineURL string
	basePath  string
	debugAddr string
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "editorlink",
		Short: "Drive an engine back-end over the editorlink protocol",
		Long: `editorlink is a command-line client for the editorlink wire protocol.

It connects to a running engine over WebSocket and can issue editor
commands or tail the engine's event stream. Useful for poking at an
engine without a full editor front-end.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().StringVarP(&engineURL, "url", "u",
		"ws://127.0.0.1:8089/editor", "Engine WebSocket endpoint")
	rootCmd.PersistentFlags().StringVar(&basePath, "base-path", "",
		"Editor content root")
	rootCmd.PersistentFlags().StringVar(&debugAddr, "debug-addr", "",
		"Serve /healthz and /metrics on this address (e.g. :9187)")

	rootCmd.AddCommand(
		tailCmd(),
		sendCmd(),
		versionCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(1)
	}
}

// connect dials the engine and wires a client session to the connection.
// The returned WS must be closed by the caller; its ReadLoop feeds the
// client until then.
func connect(ctx context.Context) (*editor.Client, *transport.WS, error) {
	ws, err := transport.DialWS(ctx, transport.WSConfig{URL: engineURL})
	if err != nil {
		return nil, nil, fmt.Errorf("dial %s: %w", engineURL, err)
	}

	client, err := editor.New(editor.Config{
		BasePath:  basePath,
		Transport: ws,
		Metrics:   editor.NewMetrics(),
	})
	if err != nil {
		ws.Close()
		return nil, nil, err
	}

	if debugAddr != "" {
		go func() {
			if err := debug.Serve(debugAddr, prometheus.DefaultGatherer); err != nil {
				slog.Error("debug server failed", "error", err)
			}
		}()
	}

	return client, ws, nil
}
