// Command pngdump decodes a PNG file and either reports its dimensions
// or re-encodes the decoded raster to verify pixel fidelity.
package main

import (
	"fmt"
	"image"
	stdpng "image/png"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	internalpng "github.com/lapinozz/png-parser/internal/png"
	pngapi "github.com/lapinozz/png-parser/pkg/png"
)

var verbose bool

func main() {
	root := &cobra.Command{
		Use:   "pngdump",
		Short: "Decode PNG files without the standard library's decoder",
	}
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug-level chunk/block tracing")
	root.PersistentPreRun = func(cmd *cobra.Command, args []string) {
		if verbose {
			internalpng.SetLogLevel(zerolog.DebugLevel)
		}
	}

	root.AddCommand(infoCmd())
	root.AddCommand(decodeCmd())

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

func infoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "info <file.png>",
		Short: "Print the decoded image's dimensions",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("reading %s: %w", args[0], err)
			}
			img, err := pngapi.Decode(data)
			if err != nil {
				return fmt.Errorf("decoding %s: %w", args[0], err)
			}
			fmt.Printf("%s: %dx%d pixels, %d bytes RGBA\n", args[0], img.Width(), img.Height(), len(img.RGBA()))
			return nil
		},
	}
}

func decodeCmd() *cobra.Command {
	var output string
	cmd := &cobra.Command{
		Use:   "decode <file.png>",
		Short: "Decode a PNG and re-encode it via the standard library, proving pixel fidelity",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("reading %s: %w", args[0], err)
			}
			img, err := pngapi.Decode(data)
			if err != nil {
				return fmt.Errorf("decoding %s: %w", args[0], err)
			}

			out := output
			if out == "" {
				out = args[0] + ".out.png"
			}
			f, err := os.Create(out)
			if err != nil {
				return fmt.Errorf("creating %s: %w", out, err)
			}
			defer f.Close()

			if err := stdpng.Encode(f, rasterToRGBA(img)); err != nil {
				return fmt.Errorf("re-encoding %s: %w", out, err)
			}
			fmt.Printf("wrote %s (%dx%d)\n", out, img.Width(), img.Height())
			return nil
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "", "output PNG path (defaults to <input>.out.png)")
	return cmd
}

// rasterToRGBA copies the decoded raster into a stdlib image.NRGBA (the
// raster's alpha is not premultiplied), since img already satisfies
// image.Image directly but image/png.Encode performs best against a
// concrete image type rather than repeated At() calls.
func rasterToRGBA(img *pngapi.Image) *image.NRGBA {
	out := image.NewNRGBA(image.Rect(0, 0, img.Width(), img.Height()))
	copy(out.Pix, img.RGBA())
	return out
}
