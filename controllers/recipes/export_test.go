package recipeController

import (
	"bytes"
	"context"
	"errors"
	"image"
	"image/png"
	"net/http"
	"net/http/httptest"
	"recipeserver/export"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubRasterizer struct {
	png []byte
	err error
}

func (s *stubRasterizer) Rasterize(ctx context.Context, html string) ([]byte, error) {
	return s.png, s.err
}

func testPNG(t *testing.T, w, h int) []byte {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, image.NewRGBA(image.Rect(0, 0, w, h))))
	return buf.Bytes()
}

func setRenderer(t *testing.T, rast export.Rasterizer) {
	t.Helper()
	orig := Renderer
	Renderer = &export.Renderer{Rasterizer: rast}
	t.Cleanup(func() { Renderer = orig })
}

func getExport(target string) *httptest.ResponseRecorder {
	req := httptest.NewRequest("GET", target, nil)
	rec := httptest.NewRecorder()
	HandleExportRecipe(rec, req)
	return rec
}

func TestExportRecipe(t *testing.T) {
	setRenderer(t, &stubRasterizer{png: testPNG(t, 700, 1400)})

	rec := getExport("/api/export-recipe?recipe_id=vegetable-stir-fry")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/pdf", rec.Header().Get("Content-Type"))
	assert.Contains(t, rec.Header().Get("Content-Disposition"), "Quick_Vegetable_Stir-Fry_Recipe.pdf")
	assert.True(t, bytes.HasPrefix(rec.Body.Bytes(), []byte("%PDF")))
}

func TestExportRecipeMissingParam(t *testing.T) {
	setRenderer(t, &stubRasterizer{png: testPNG(t, 10, 10)})

	rec := getExport("/api/export-recipe")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestExportRecipeUnknownID(t *testing.T) {
	setRenderer(t, &stubRasterizer{png: testPNG(t, 10, 10)})

	rec := getExport("/api/export-recipe?recipe_id=missing-recipe")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestExportRecipeRasterizerFailure(t *testing.T) {
	setRenderer(t, &stubRasterizer{err: errors.New("browser unavailable")})

	rec := getExport("/api/export-recipe?recipe_id=pasta-carbonara")
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	// No partial document may be written on failure.
	assert.False(t, bytes.HasPrefix(rec.Body.Bytes(), []byte("%PDF")))
}
