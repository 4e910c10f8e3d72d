package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	qrcode "github.com/nullspan/qrcode"
)

var (
	encodeScale  int
	encodeEC     string
	encodeMargin int
	encodeDebug  bool
)

var encodeCmd = &cobra.Command{
	Use:   "encode <input-file> <output.png>",
	Short: "Encode a file's bytes into a QR code PNG",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("reading input: %w", err)
		}

		ec := encodeEC
		if !cmd.Flags().Changed("ec") && cfg != nil && cfg.ECLevel != "" {
			ec = cfg.ECLevel
		}
		level, err := ecLevel(ec)
		if err != nil {
			return err
		}

		q, err := qrcode.Encode(data, level)
		if err != nil {
			return fmt.Errorf("encoding: %w", err)
		}
		slog.Info("encoded symbol", "version", q.Version, "size", q.Size, "mask", q.MaskIndex)

		out, err := os.Create(args[1])
		if err != nil {
			return fmt.Errorf("creating output: %w", err)
		}
		defer out.Close()

		return q.WritePNGWithOptions(out, qrcode.WriteOptions{
			Scale:                 encodeScale,
			QuietZone:             encodeMargin,
			DebugFunctionPatterns: encodeDebug,
		})
	},
}

func ecLevel(s string) (int, error) {
	switch s {
	case "L", "l":
		return qrcode.LevelL, nil
	case "M", "m", "":
		return qrcode.LevelM, nil
	case "Q", "q":
		return qrcode.LevelQ, nil
	case "H", "h":
		return qrcode.LevelH, nil
	default:
		return 0, fmt.Errorf("unknown ec level %q", s)
	}
}

func init() {
	encodeCmd.Flags().IntVar(&encodeScale, "scale", 8, "pixels per module")
	encodeCmd.Flags().StringVar(&encodeEC, "ec", "M", "error correction level: L, M, Q, H")
	encodeCmd.Flags().IntVar(&encodeMargin, "margin", 4, "quiet zone width in modules")
	encodeCmd.Flags().BoolVar(&encodeDebug, "debug-patterns", false, "render finder/timing/alignment/format modules in a distinct color")
}
