package storybook

import (
	"path/filepath"
	"sync"

	"github.com/cockroachdb/errors"
	"go.uber.org/zap"

	"github.com/Chickencurry27/storybook/pkg/assets"
	"github.com/Chickencurry27/storybook/pkg/emit"
	"github.com/Chickencurry27/storybook/pkg/figma"
	"github.com/Chickencurry27/storybook/pkg/graph"
	"github.com/Chickencurry27/storybook/pkg/logging"
	"github.com/Chickencurry27/storybook/pkg/tokens"
	"github.com/Chickencurry27/storybook/pkg/writer"
)

// maxParallelComponents bounds concurrent component generation. Components
// are independent units of parallelism: naming state is scoped per component
// and output directories are disjoint.
const maxParallelComponents = 4

// Options configures a generator run.
type Options struct {
	AccessToken string
	FileURL     string // Figma file URL
	OutDir      string // output root, default "storybook-out"
	Scale       float64

	// Scope flags are mutually exclusive; all false runs every phase.
	TokensOnly     bool
	ComponentsOnly bool
	AssetsOnly     bool

	// APIBaseURL overrides the Figma API endpoint, used by tests.
	APIBaseURL string

	// Logger receives progress and warnings. Nil means silent operation.
	Logger *zap.SugaredLogger
}

// Result summarizes a generator run.
type Result struct {
	FileName   string
	Components []string // generated component names, in document order

	// WrittenFiles and UnchangedFiles count idempotent-writer outcomes; a
	// second run against an unchanged document reports zero written files.
	WrittenFiles   int
	UnchangedFiles int

	// AssetCount is the number of asset candidates discovered;
	// AssetFailures how many of them ended up without a binary.
	AssetCount    int
	AssetFailures int
}

// Run executes the selected phases of the generation pipeline: design tokens,
// binary asset export, and per-component artifact generation. Configuration
// problems and a failed document fetch are fatal; asset and style gaps
// degrade to warnings.
func Run(opts Options) (*Result, error) {
	log := opts.Logger
	if log == nil {
		log = logging.Nop()
	}
	if opts.OutDir == "" {
		opts.OutDir = "storybook-out"
	}
	if opts.Scale <= 0 {
		opts.Scale = 1
	}

	if opts.AccessToken == "" {
		return nil, errors.New("missing Figma access token (set --token or FIGMA_TOKEN)")
	}
	if exclusive := countTrue(opts.TokensOnly, opts.ComponentsOnly, opts.AssetsOnly); exclusive > 1 {
		return nil, errors.New("--tokens-only, --components-only and --assets-only are mutually exclusive")
	}

	fileKey, err := figma.ExtractFileKey(opts.FileURL)
	if err != nil {
		return nil, errors.Wrap(err, "extract file key")
	}
	log.Debugw("resolved file key", "key", fileKey)

	client := figma.NewClient(opts.AccessToken)
	if opts.APIBaseURL != "" {
		client.SetBaseURL(opts.APIBaseURL)
	}

	log.Infow("fetching document", "key", fileKey)
	fileResp, err := client.GetFile(fileKey)
	if err != nil {
		return nil, errors.Wrap(err, "fetch file")
	}
	log.Infow("document fetched", "name", fileResp.Name)

	result := &Result{FileName: fileResp.Name}

	runTokens := !opts.ComponentsOnly && !opts.AssetsOnly
	runAssets := !opts.TokensOnly && !opts.ComponentsOnly
	runComponents := !opts.TokensOnly && !opts.AssetsOnly

	if runTokens {
		if err := writeTokens(client, fileKey, fileResp, opts, result, log); err != nil {
			return nil, err
		}
	}

	assetMap := map[string]assets.Record{}
	if runAssets {
		records, err := assets.Export(client, fileKey, &fileResp.Document, assets.Config{
			OutputDir: filepath.Join(opts.OutDir, "assets"),
			Scale:     opts.Scale,
		}, log)
		if err != nil {
			return nil, err
		}
		assetMap = assets.Map(records)
		result.AssetCount = len(records)
		for _, r := range records {
			if r.Filename == "" {
				result.AssetFailures++
			}
		}
		log.Infow("assets exported", "count", result.AssetCount, "failed", result.AssetFailures)
	}

	if runComponents {
		if err := writeComponents(fileResp, assetMap, opts, result, log); err != nil {
			return nil, err
		}
	}

	return result, nil
}

// writeTokens collects document-level tokens, decorates them with the
// published style inventory when reachable, and writes the shared token file.
// A failed styles fetch degrades to a warning, never aborts the run.
func writeTokens(client *figma.Client, fileKey string, fileResp *figma.FileResponse, opts Options, result *Result, log *zap.SugaredLogger) error {
	set := tokens.Collect(&fileResp.Document)

	styles, err := client.GetPublishedStyles(fileKey)
	if err != nil {
		log.Warnw("published styles unavailable, continuing without them", "error", err)
	} else {
		set.AddPublishedStyles(styles.Meta.Styles)
	}

	path := filepath.Join(opts.OutDir, "_tokens.scss")
	written, err := writer.WriteIfChanged(path, []byte(tokens.SCSS(set, fileResp.Name)))
	if err != nil {
		return errors.Wrap(err, "write token file")
	}
	result.countWrite(written)
	log.Infow("token file generated", "path", path, "written", written)

	return nil
}

// writeComponents annotates every component subtree once and renders the
// three coupled artifacts per component under a bounded worker pool. Within
// one component the emitters run serially over the same immutable tree.
func writeComponents(fileResp *figma.FileResponse, assetMap map[string]assets.Record, opts Options, result *Result, log *zap.SugaredLogger) error {
	comps := graph.Components(&fileResp.Document)
	if len(comps) == 0 {
		log.Warnw("no components found in document", "name", fileResp.Name)
		return nil
	}

	for _, c := range comps {
		result.Components = append(result.Components, c.Name)
	}

	var (
		mu       sync.Mutex
		wg       sync.WaitGroup
		firstErr error
	)
	sem := make(chan struct{}, maxParallelComponents)

	for _, comp := range comps {
		wg.Add(1)
		go func(comp *graph.Component) {
			defer wg.Done()
			sem <- struct{}{}
			defer func() { <-sem }()

			set := emit.Generate(comp, assetMap)
			dir := filepath.Join(opts.OutDir, "components", comp.Name)

			written, err := writeArtifactSet(dir, comp.Name, set)
			mu.Lock()
			defer mu.Unlock()
			if err != nil && firstErr == nil {
				firstErr = err
				return
			}
			for _, w := range written {
				result.countWrite(w)
			}
			log.Debugw("component generated", "component", comp.Name, "dir", dir)
		}(comp)
	}
	wg.Wait()

	if firstErr != nil {
		return errors.Wrap(firstErr, "write component artifacts")
	}
	log.Infow("components generated", "count", len(comps))

	return nil
}

// writeArtifactSet writes the three artifacts of one component. They always
// land together: a failure on any file aborts the set.
func writeArtifactSet(dir, name string, set emit.ArtifactSet) ([]bool, error) {
	files := []struct {
		path    string
		content string
	}{
		{filepath.Join(dir, name+".jsx"), set.Template},
		{filepath.Join(dir, name+".scss"), set.Style},
		{filepath.Join(dir, name+".stories.jsx"), set.Catalog},
	}

	written := make([]bool, 0, len(files))
	for _, f := range files {
		w, err := writer.WriteIfChanged(f.path, []byte(f.content))
		if err != nil {
			return written, err
		}
		written = append(written, w)
	}

	return written, nil
}

func (r *Result) countWrite(written bool) {
	if written {
		r.WrittenFiles++
	} else {
		r.UnchangedFiles++
	}
}

func countTrue(flags ...bool) int {
	n := 0
	for _, f := range flags {
		if f {
			n++
		}
	}
	return n
}
