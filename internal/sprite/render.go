package sprite

import (
	"bytes"
	"fmt"
	"image"
	"image/png"
	"io"
)

// renderANSI draws a sprite as truecolor half-block characters, two
// image rows per terminal line. The image is downsampled to at most
// maxWidth columns. Fully transparent pixels stay as background.
func renderANSI(w io.Writer, pngData []byte, maxWidth int) error {
	img, err := png.Decode(bytes.NewReader(pngData))
	if err != nil {
		return fmt.Errorf("png.Decode > %w", err)
	}

	bounds := img.Bounds()
	step := 1
	if bounds.Dx() > maxWidth {
		step = (bounds.Dx() + maxWidth - 1) / maxWidth
	}

	for y := bounds.Min.Y; y < bounds.Max.Y; y += 2 * step {
		for x := bounds.Min.X; x < bounds.Max.X; x += step {
			topR, topG, topB, topOK := sample(img, x, y)
			botR, botG, botB, botOK := sample(img, x, y+step)

			switch {
			case topOK && botOK:
				fmt.Fprintf(w, "\x1b[38;2;%d;%d;%dm\x1b[48;2;%d;%d;%dm▀", topR, topG, topB, botR, botG, botB)
			case topOK:
				fmt.Fprintf(w, "\x1b[0m\x1b[38;2;%d;%d;%dm▀", topR, topG, topB)
			case botOK:
				fmt.Fprintf(w, "\x1b[0m\x1b[38;2;%d;%d;%dm▄", botR, botG, botB)
			default:
				fmt.Fprint(w, "\x1b[0m ")
			}
		}
		fmt.Fprint(w, "\x1b[0m\n")
	}
	return nil
}

// sample returns an 8-bit pixel; ok is false outside the image or for
// mostly transparent pixels.
func sample(img image.Image, x, y int) (uint8, uint8, uint8, bool) {
	if !(image.Point{X: x, Y: y}.In(img.Bounds())) {
		return 0, 0, 0, false
	}
	r, g, b, a := img.At(x, y).RGBA()
	if a < 0x8000 {
		return 0, 0, 0, false
	}
	return uint8(r >> 8), uint8(g >> 8), uint8(b >> 8), true
}
