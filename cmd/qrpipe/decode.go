package main

import (
	"fmt"
	"image"
	_ "image/png"
	"os"

	"github.com/spf13/cobra"

	qrcode "github.com/nullspan/qrcode"
)

var decodeOutput string

var decodeCmd = &cobra.Command{
	Use:   "decode <input.png>",
	Short: "Decode a QR code image back into bytes",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		f, err := os.Open(args[0])
		if err != nil {
			return fmt.Errorf("opening input: %w", err)
		}
		defer f.Close()

		img, _, err := image.Decode(f)
		if err != nil {
			return fmt.Errorf("decoding image: %w", err)
		}

		pixels, width, height := toRGBA(img)
		data, err := qrcode.Decode(pixels, width, height)
		if err != nil {
			return fmt.Errorf("decoding symbol: %w", err)
		}

		if decodeOutput == "" {
			_, err = os.Stdout.Write(data)
			return err
		}
		return os.WriteFile(decodeOutput, data, 0644)
	},
}

// toRGBA flattens any image.Image into an 8-bit RGBA interleaved buffer,
// the layout Decode expects.
func toRGBA(img image.Image) ([]byte, int, int) {
	bounds := img.Bounds()
	width, height := bounds.Dx(), bounds.Dy()
	pixels := make([]byte, width*height*4)
	i := 0
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			r, g, b, a := img.At(x, y).RGBA()
			pixels[i+0] = byte(r >> 8)
			pixels[i+1] = byte(g >> 8)
			pixels[i+2] = byte(b >> 8)
			pixels[i+3] = byte(a >> 8)
			i += 4
		}
	}
	return pixels, width, height
}

func init() {
	decodeCmd.Flags().StringVar(&decodeOutput, "output", "", "write decoded bytes to this file instead of stdout")
}
