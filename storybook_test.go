package storybook_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	storybook "github.com/Chickencurry27/storybook"
	"github.com/Chickencurry27/storybook/pkg/figma"
)

func testDocument() figma.FileResponse {
	return figma.FileResponse{
		Name: "Test Design",
		Document: figma.Node{
			ID: "0:0", Type: "DOCUMENT",
			Children: []figma.Node{
				{
					ID: "0:1", Type: "CANVAS", Name: "Page 1",
					Children: []figma.Node{
						{
							ID: "1:1", Type: "COMPONENT", Name: "User Card!!",
							LayoutMode:          "VERTICAL",
							AbsoluteBoundingBox: &figma.Rectangle{Width: 320, Height: 120},
							Fills:               []figma.Paint{{Type: "SOLID", Color: &figma.Color{R: 1, G: 1, B: 1, A: 1}}},
							Children: []figma.Node{
								{ID: "2:1", Type: "TEXT", Name: "Title", Characters: "Hello",
									Style: &figma.TypeStyle{FontFamily: "Inter", FontSize: 16}},
								{ID: "2:2", Type: "RECTANGLE", Name: "Avatar Image",
									AbsoluteBoundingBox: &figma.Rectangle{Width: 48, Height: 48},
									Fills:               []figma.Paint{{Type: "IMAGE", ImageRef: "img1"}}},
							},
						},
					},
				},
			},
		},
	}
}

// newAPIStub serves the file, styles, render, and download endpoints used by
// a full pipeline run. withStyles controls whether the styles endpoint
// exists, to exercise the degraded token path.
func newAPIStub(t *testing.T, withStyles bool) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	var server *httptest.Server

	mux.HandleFunc("/files/KEY", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(testDocument())
	})

	if withStyles {
		mux.HandleFunc("/files/KEY/styles", func(w http.ResponseWriter, r *http.Request) {
			json.NewEncoder(w).Encode(figma.StylesResponse{
				Meta: figma.Meta{Styles: []figma.StyleMetadata{{Name: "Brand/White", StyleType: "FILL"}}},
			})
		})
	}

	mux.HandleFunc("/images/KEY", func(w http.ResponseWriter, r *http.Request) {
		ids := strings.Split(r.URL.Query().Get("ids"), ",")
		images := make(map[string]string, len(ids))
		for _, id := range ids {
			images[id] = server.URL + "/dl/" + id
		}
		json.NewEncoder(w).Encode(figma.ImagesResponse{Images: images})
	})

	mux.HandleFunc("/dl/", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("png-bytes"))
	})

	server = httptest.NewServer(mux)
	t.Cleanup(server.Close)
	return server
}

func baseOptions(server *httptest.Server, outDir string) storybook.Options {
	return storybook.Options{
		AccessToken: "test-token",
		FileURL:     "https://www.figma.com/file/KEY/Test-Design",
		OutDir:      outDir,
		APIBaseURL:  server.URL,
	}
}

func TestRunGeneratesAllArtifacts(t *testing.T) {
	server := newAPIStub(t, true)
	outDir := t.TempDir()

	result, err := storybook.Run(baseOptions(server, outDir))
	require.NoError(t, err)

	assert.Equal(t, "Test Design", result.FileName)
	assert.Equal(t, []string{"UserCard"}, result.Components)
	assert.Equal(t, 1, result.AssetCount)
	assert.Zero(t, result.AssetFailures)
	assert.Positive(t, result.WrittenFiles)

	// The three component artifacts always land together.
	compDir := filepath.Join(outDir, "components", "UserCard")
	jsx := readFile(t, filepath.Join(compDir, "UserCard.jsx"))
	scss := readFile(t, filepath.Join(compDir, "UserCard.scss"))
	stories := readFile(t, filepath.Join(compDir, "UserCard.stories.jsx"))

	assert.Contains(t, jsx, "import avatarImage from '../../assets/avatar-image-2-2.png';")
	assert.Contains(t, jsx, `<span className="UserCard__title">{text1}</span>`)
	assert.Contains(t, scss, ".UserCard__avatar-image {")
	assert.Contains(t, stories, "export const WithImage")

	tokensFile := readFile(t, filepath.Join(outDir, "_tokens.scss"))
	assert.Contains(t, tokensFile, "// Published styles: Brand/White (FILL)")
	assert.Contains(t, tokensFile, "$color-user-card: #FFFFFF;")

	assetFile := readFile(t, filepath.Join(outDir, "assets", "avatar-image-2-2.png"))
	assert.Equal(t, "png-bytes", assetFile)
}

func TestRunIsIdempotent(t *testing.T) {
	server := newAPIStub(t, true)
	outDir := t.TempDir()
	opts := baseOptions(server, outDir)

	first, err := storybook.Run(opts)
	require.NoError(t, err)
	require.Positive(t, first.WrittenFiles)

	second, err := storybook.Run(opts)
	require.NoError(t, err)

	// Unchanged document: every path goes through the idempotent writer and
	// reports no write the second time.
	assert.Zero(t, second.WrittenFiles)
	assert.Equal(t, first.WrittenFiles, second.UnchangedFiles)
}

func TestRunTokensWithoutStylesEndpoint(t *testing.T) {
	server := newAPIStub(t, false)
	outDir := t.TempDir()
	opts := baseOptions(server, outDir)
	opts.TokensOnly = true

	_, err := storybook.Run(opts)
	require.NoError(t, err, "missing styles endpoint must degrade, not fail")

	tokensFile := readFile(t, filepath.Join(outDir, "_tokens.scss"))
	assert.Contains(t, tokensFile, "$color-user-card: #FFFFFF;")
	assert.NotContains(t, tokensFile, "Published styles")
}

func TestRunScopeFlags(t *testing.T) {
	t.Run("tokens-only skips components and assets", func(t *testing.T) {
		server := newAPIStub(t, true)
		outDir := t.TempDir()
		opts := baseOptions(server, outDir)
		opts.TokensOnly = true

		result, err := storybook.Run(opts)
		require.NoError(t, err)

		assert.Empty(t, result.Components)
		assert.Zero(t, result.AssetCount)
		assert.NoDirExists(t, filepath.Join(outDir, "components"))
		assert.FileExists(t, filepath.Join(outDir, "_tokens.scss"))
	})

	t.Run("components-only renders placeholders without assets", func(t *testing.T) {
		server := newAPIStub(t, true)
		outDir := t.TempDir()
		opts := baseOptions(server, outDir)
		opts.ComponentsOnly = true

		result, err := storybook.Run(opts)
		require.NoError(t, err)

		assert.Equal(t, []string{"UserCard"}, result.Components)
		assert.NoDirExists(t, filepath.Join(outDir, "assets"))

		jsx := readFile(t, filepath.Join(outDir, "components", "UserCard", "UserCard.jsx"))
		assert.Contains(t, jsx, `<div className="UserCard__avatar-image" />`)
	})

	t.Run("assets-only exports binaries only", func(t *testing.T) {
		server := newAPIStub(t, true)
		outDir := t.TempDir()
		opts := baseOptions(server, outDir)
		opts.AssetsOnly = true

		result, err := storybook.Run(opts)
		require.NoError(t, err)

		assert.Equal(t, 1, result.AssetCount)
		assert.FileExists(t, filepath.Join(outDir, "assets", "avatar-image-2-2.png"))
		assert.NoFileExists(t, filepath.Join(outDir, "_tokens.scss"))
		assert.NoDirExists(t, filepath.Join(outDir, "components"))
	})

	t.Run("conflicting scope flags are rejected", func(t *testing.T) {
		server := newAPIStub(t, true)
		opts := baseOptions(server, t.TempDir())
		opts.TokensOnly = true
		opts.AssetsOnly = true

		_, err := storybook.Run(opts)
		assert.Error(t, err)
	})
}

func TestRunConfigErrors(t *testing.T) {
	t.Run("missing token fails before any network call", func(t *testing.T) {
		_, err := storybook.Run(storybook.Options{
			FileURL: "https://www.figma.com/file/KEY/Test",
		})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "access token")
	})

	t.Run("invalid URL", func(t *testing.T) {
		_, err := storybook.Run(storybook.Options{
			AccessToken: "x",
			FileURL:     "https://example.com/not-figma",
		})
		assert.Error(t, err)
	})
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(data)
}
