package main

import (
	"fmt"
	"net/http"
	"strconv"
	"text/tabwriter"

	"connectrpc.com/connect"
	"github.com/spf13/cobra"

	"go-canvas/api/drawingpb"
	"go-canvas/api/drawingpb/drawingpbconnect"
	"go-canvas/domain/canvas"
)

const defaultServer = "http://localhost:7878"

func newClient(cmd *cobra.Command) drawingpbconnect.DrawingServiceClient {
	addr, _ := cmd.Flags().GetString("server")
	return drawingpbconnect.NewDrawingServiceClient(http.DefaultClient, addr)
}

func addServerFlag(cmd *cobra.Command) {
	cmd.Flags().String("server", defaultServer, "Base URL of the drawing server")
}

func buildRoomsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rooms",
		Short: "List and create rooms",
	}
	cmd.AddCommand(buildRoomsListCmd(), buildRoomsCreateCmd())
	return cmd
}

func buildRoomsListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List rooms with their dimensions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := newClient(cmd).QueryRooms(cmd.Context(), connect.NewRequest(&drawingpb.QueryRoomsRequest{}))
			if err != nil {
				return err
			}
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tWIDTH\tHEIGHT")
			for _, r := range resp.Msg.Rooms {
				fmt.Fprintf(w, "%d\t%d\t%d\n", r.Id, r.Width, r.Height)
			}
			return w.Flush()
		},
	}
	addServerFlag(cmd)
	return cmd
}

func buildRoomsCreateCmd() *cobra.Command {
	var width, height int32
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a blank room",
		Long:  "Create a blank room. Without --width/--height the server's default size is used.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			req := &drawingpb.CreateRoomRequest{}
			if cmd.Flags().Changed("width") || cmd.Flags().Changed("height") {
				blank, err := canvas.Blank(width, height)
				if err != nil {
					return fmt.Errorf("invalid room size %dx%d: %w", width, height, err)
				}
				req.Initial = &drawingpb.Canvas{
					Width:    blank.Width,
					Height:   blank.Height,
					Contents: blank.Contents,
				}
			}
			resp, err := newClient(cmd).CreateRoom(cmd.Context(), connect.NewRequest(req))
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "created room %d\n", resp.Msg.RoomId)
			return nil
		},
	}
	cmd.Flags().Int32Var(&width, "width", 50, "Canvas width in pixels")
	cmd.Flags().Int32Var(&height, "height", 50, "Canvas height in pixels")
	addServerFlag(cmd)
	return cmd
}

func buildPullCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "pull <room-id>",
		Short: "Print a room's canvas",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseUint(args[0], 10, 32)
			if err != nil {
				return fmt.Errorf("invalid room id %q", args[0])
			}
			resp, err := newClient(cmd).PullCanvas(cmd.Context(), connect.NewRequest(&drawingpb.PullCanvasRequest{RoomId: uint32(id)}))
			if err != nil {
				return err
			}
			return printCanvas(cmd, resp.Msg.GetCanvas())
		},
	}
	addServerFlag(cmd)
	return cmd
}

// printCanvas writes one line per row, '.' for transparent pixels and '#'
// for painted ones.
func printCanvas(cmd *cobra.Command, msg *drawingpb.Canvas) error {
	if msg == nil {
		return fmt.Errorf("server returned no canvas")
	}
	c := canvas.Canvas{Width: msg.GetWidth(), Height: msg.GetHeight(), Contents: msg.GetContents()}
	if err := canvas.Validate(c); err != nil {
		return fmt.Errorf("server returned a bad canvas: %w", err)
	}
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%dx%d\n", c.Width, c.Height)
	row := make([]byte, 0, c.Width+1)
	for y := int32(0); y < c.Height; y++ {
		row = row[:0]
		for x := int32(0); x < c.Width; x++ {
			if c.At(x, y) != canvas.Transparent {
				row = append(row, '#')
			} else {
				row = append(row, '.')
			}
		}
		row = append(row, '\n')
		if _, err := out.Write(row); err != nil {
			return err
		}
	}
	return nil
}

func buildHealthCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "health",
		Short: "Check that the server is up",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := newClient(cmd).HealthCheck(cmd.Context(), connect.NewRequest(&drawingpb.HealthCheckRequest{}))
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), resp.Msg.Status)
			return nil
		},
	}
	addServerFlag(cmd)
	return cmd
}
