package deck

import (
	"image"
	_ "image/jpeg" // JPEG decoder for image slides
	_ "image/png"  // PNG decoder for image slides
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/nfnt/resize"
)

// ImageSlide shows a raster image as half-block cells: each terminal cell
// carries two vertical pixels via the upper-half-block glyph.
type ImageSlide struct {
	title string
	img   image.Image

	// Render cache for the last requested region.
	cacheW, cacheH int
	cache          string
}

func loadImageSlide(path string) (*ImageSlide, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, err
	}
	return &ImageSlide{title: slideTitle(path), img: img}, nil
}

// Title implements Slide.
func (s *ImageSlide) Title() string { return s.title }

// Render implements Slide. The image is scaled to fit the region, keeping
// aspect ratio, then centered.
func (s *ImageSlide) Render(width, height int) string {
	if width < 1 || height < 1 {
		return ""
	}
	if s.cache != "" && s.cacheW == width && s.cacheH == height {
		return s.cache
	}

	// A cell is roughly twice as tall as it is wide, and a half-block
	// packs two pixels per cell vertically.
	scaled := resize.Thumbnail(uint(width), uint(2*height), s.img, resize.Bilinear) //nolint:gosec // dims checked positive
	bounds := scaled.Bounds()

	var b strings.Builder
	for y := bounds.Min.Y; y < bounds.Max.Y; y += 2 {
		if y > bounds.Min.Y {
			b.WriteByte('\n')
		}
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			top := cellColor(scaled, x, y)
			bottom := top
			if y+1 < bounds.Max.Y {
				bottom = cellColor(scaled, x, y+1)
			}
			style := lipgloss.NewStyle().
				Foreground(lipgloss.Color(top)).
				Background(lipgloss.Color(bottom))
			b.WriteString(style.Render("▀"))
		}
	}

	s.cacheW, s.cacheH = width, height
	s.cache = lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, b.String())
	return s.cache
}

// cellColor samples a pixel as a hex color string.
func cellColor(img image.Image, x, y int) string {
	r, g, b, _ := img.At(x, y).RGBA()
	return colorful.Color{
		R: float64(r) / 65535.0,
		G: float64(g) / 65535.0,
		B: float64(b) / 65535.0,
	}.Hex()
}
