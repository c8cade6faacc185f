// Package export turns an unlocked recipe into a downloadable PDF: the
// recipe is composed into a styled markup fragment, rasterized to a bitmap,
// and the bitmap is embedded into a single A4 page.
package export

import (
	"context"
	"recipeserver/models"
)

type Renderer struct {
	Rasterizer Rasterizer
}

// Render produces the finished PDF bytes and the download filename. Any
// stage failing yields an error and no partial output.
func (re *Renderer) Render(ctx context.Context, recipe models.Recipe) ([]byte, string, error) {
	html, err := ComposeHTML(recipe)
	if err != nil {
		return nil, "", err
	}

	bitmap, err := re.Rasterizer.Rasterize(ctx, html)
	if err != nil {
		return nil, "", err
	}

	doc, err := BuildPDF(bitmap)
	if err != nil {
		return nil, "", err
	}

	return doc, FileName(recipe.Name), nil
}
