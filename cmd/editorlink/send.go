package main

import (
	"context"
	"encoding/hex"
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/forgelab/editorlink/pkg/editor"
)

func sendCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "send",
		Short: "Issue a single command to the engine",
		Long: `Connect to the engine, issue one command, and disconnect.

Examples:
  editorlink send add-entity
  editorlink send load scenes/level1.dat
  editorlink send set-position 7 1.0 2.0 3.0
  editorlink send set-property Transform Position 0000803f0000004000004040`,
	}

	cmd.AddCommand(
		oneShot("add-entity", "Create a new entity", 0,
			func(c *editor.Client, args []string) error {
				return c.AddEntity()
			}),
		oneShot("look-at-selected", "Point the camera at the selection", 0,
			func(c *editor.Client, args []string) error {
				return c.LookAtSelected()
			}),
		oneShot("toggle-game-mode", "Toggle between edit and game mode", 0,
			func(c *editor.Client, args []string) error {
				return c.ToggleGameMode()
			}),
		oneShot("new-universe", "Replace the universe with an empty one", 0,
			func(c *editor.Client, args []string) error {
				return c.NewUniverse()
			}),
		oneShot("load <path>", "Load a universe", 1,
			func(c *editor.Client, args []string) error {
				return c.LoadUniverse(args[0])
			}),
		oneShot("save <path>", "Save the universe", 1,
			func(c *editor.Client, args []string) error {
				return c.SaveUniverse(args[0])
			}),
		oneShot("wireframe <on|off>", "Toggle wireframe rendering", 1,
			func(c *editor.Client, args []string) error {
				return c.SetWireframe(args[0] == "on")
			}),
		oneShot("set-position <entity> <x> <y> <z>", "Move an entity", 4,
			func(c *editor.Client, args []string) error {
				entity, err := strconv.ParseInt(args[0], 10, 32)
				if err != nil {
					return fmt.Errorf("entity: %w", err)
				}
				var pos [3]float32
				for i, a := range args[1:] {
					f, err := strconv.ParseFloat(a, 32)
					if err != nil {
						return fmt.Errorf("coordinate %d: %w", i, err)
					}
					pos[i] = float32(f)
				}
				return c.SetEntityPosition(int32(entity), pos[0], pos[1], pos[2])
			}),
		oneShot("set-property <component> <property> <hex-value>", "Set a component property", 3,
			func(c *editor.Client, args []string) error {
				value, err := hex.DecodeString(args[2])
				if err != nil {
					return fmt.Errorf("value: %w", err)
				}
				return c.SetComponentProperty(args[0], args[1], value)
			}),
		oneShot("get-properties <type>", "Request a component type's property list", 1,
			func(c *editor.Client, args []string) error {
				return c.RequestProperties(args[0])
			}),
	)

	return cmd
}

// oneShot wraps a facade call in connect/issue/disconnect.
func oneShot(use, short string, nargs int, run func(*editor.Client, []string) error) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.ExactArgs(nargs),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()

			client, ws, err := connect(ctx)
			if err != nil {
				return err
			}
			defer ws.Close()

			return run(client, args)
		},
	}
}
