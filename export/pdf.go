package export

import (
	"bytes"
	"image/png"
	"strings"
	"unicode"

	"github.com/go-pdf/fpdf"
)

const (
	// Embedded image width as a fraction of the page width.
	pageWidthFrac = 0.87
	// Upper bound on image height as a fraction of the page height; taller
	// bitmaps are refit against this bound so the document stays one page.
	pageHeightFrac = 0.96
)

// FitToPage computes the placement of a bitmap of imgW x imgH pixels on a
// pageW x pageH page. The image takes pageWidthFrac of the page width with
// height following the aspect ratio, centered vertically. If that height
// would exceed pageHeightFrac of the page, the height is pinned to the bound
// and the width rescaled instead.
func FitToPage(imgW, imgH, pageW, pageH float64) (w, h, x, y float64) {
	w = pageW * pageWidthFrac
	h = w * imgH / imgW
	if h > pageH*pageHeightFrac {
		h = pageH * pageHeightFrac
		w = h * imgW / imgH
	}
	x = (pageW - w) / 2
	y = (pageH - h) / 2
	return w, h, x, y
}

// FileName derives the download name from the recipe's display name, each
// whitespace character replaced by an underscore.
func FileName(name string) string {
	flat := strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return '_'
		}
		return r
	}, name)
	return flat + "_Recipe.pdf"
}

// BuildPDF embeds a PNG bitmap into a single-page A4 portrait document using
// the fit-to-page placement.
func BuildPDF(pngData []byte) ([]byte, error) {
	cfg, err := png.DecodeConfig(bytes.NewReader(pngData))
	if err != nil {
		return nil, err
	}

	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	pageW, pageH := pdf.GetPageSize()
	w, h, x, y := FitToPage(float64(cfg.Width), float64(cfg.Height), pageW, pageH)

	opts := fpdf.ImageOptions{ImageType: "PNG"}
	pdf.RegisterImageOptionsReader("recipe", opts, bytes.NewReader(pngData))
	pdf.ImageOptions("recipe", x, y, w, h, false, opts, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
