package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/spf13/cobra"

	"github.com/nullspan/qrcode/internal/relay"
	"github.com/nullspan/qrcode/stream"
)

var streamCmd = &cobra.Command{
	Use:   "stream",
	Short: "Send or receive a payload as a sequence of framed packets",
}

var streamID string

var streamSendCmd = &cobra.Command{
	Use:   "send <input-file> <relay-addr>",
	Short: "Chunk a file and push it through a relay server",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("reading input: %w", err)
		}

		client, err := relay.DialSend(context.Background(), args[1], streamID)
		if err != nil {
			return err
		}
		defer client.Close()

		sender := stream.NewSender(data, cfg.ChunkSize)
		sender.SetFPS(cfg.FPS)

		done := make(chan struct{})
		sender.Start(func(p stream.Packet) {
			if err := client.Send(stream.Encode(p)); err != nil {
				slog.Error("stream send failed", "seq", p.Seq, "err", err)
			} else {
				slog.Info("sent packet", "seq", p.Seq, "total", p.Total)
			}
		}, func() { close(done) })

		<-done
		return nil
	},
}

var streamRecvCmd = &cobra.Command{
	Use:   "recv <relay-addr> <output-file>",
	Short: "Receive a stream from a relay server and reassemble it",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := relay.DialRecv(context.Background(), args[0], streamID)
		if err != nil {
			return err
		}
		defer client.Close()

		receiver := stream.NewReceiver()
		receiver.OnProgress(func(received, total int, missing []uint16) {
			slog.Info("stream progress", "received", received, "total", total, "missing", len(missing))
		})

		done := make(chan []byte, 1)
		receiver.OnComplete(func(payload []byte) { done <- payload })

		go func() {
			for {
				frame, err := client.Recv()
				if err != nil {
					slog.Error("stream recv failed", "err", err)
					return
				}
				receiver.OnFrame(frame)
			}
		}()

		payload := <-done
		return os.WriteFile(args[1], payload, 0644)
	},
}

var streamServeAddr string

var streamServeCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run a relay server pairing one sender and one receiver per stream id",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		server := relay.NewServer()
		slog.Info("relay server listening", "addr", streamServeAddr)
		return http.ListenAndServe(streamServeAddr, server)
	},
}

func init() {
	streamCmd.PersistentFlags().StringVar(&streamID, "stream-id", "default", "identifier pairing a sender and receiver")
	streamServeCmd.Flags().StringVar(&streamServeAddr, "listen", ":8765", "address to listen on")
	streamCmd.AddCommand(streamSendCmd)
	streamCmd.AddCommand(streamRecvCmd)
	streamCmd.AddCommand(streamServeCmd)
}
