package main

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/forgelab/editorlink/pkg/protocol"
)

func tailCmd() *cobra.Command {
	var logsOnly bool

	cmd := &cobra.Command{
		Use:   "tail",
		Short: "Print the engine's event stream",
		Long: `Connect to the engine and print every event it pushes: log lines,
selection changes, entity movement, and property lists. Runs until
interrupted.

Examples:
  editorlink tail
  editorlink tail --logs
  editorlink tail -u ws://192.168.1.20:8089/editor`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTail(logsOnly)
		},
	}

	cmd.Flags().BoolVar(&logsOnly, "logs", false, "Only print log events")

	return cmd
}

func runTail(logsOnly bool) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	client, ws, err := connect(ctx)
	if err != nil {
		return err
	}
	defer ws.Close()

	client.OnLog(func(ev protocol.LogEvent) {
		fmt.Printf("[%s] %s\n", ev.Level, ev.Message)
	})
	if !logsOnly {
		client.OnEntitySelected(func(ev protocol.EntitySelectedEvent) {
			fmt.Printf("selected entity %d\n", ev.Entity)
		})
		client.OnEntityPosition(func(ev protocol.EntityPositionEvent) {
			fmt.Printf("entity %d at (%g, %g, %g)\n", ev.Entity, ev.X, ev.Y, ev.Z)
		})
		client.OnPropertyList(func(ev protocol.PropertyListEvent) {
			fmt.Printf("property list, %d entries:\n", len(ev.Properties))
			for _, p := range ev.Properties {
				fmt.Printf("  0x%08X = % X\n", p.Key, p.Value)
			}
		})
	}

	done := make(chan error, 1)
	go func() {
		done <- ws.ReadLoop(func(msg []byte) { client.OnBytes(msg) })
	}()

	select {
	case <-ctx.Done():
		return nil
	case err := <-done:
		return err
	}
}
