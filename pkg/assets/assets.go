// Package assets exports binary images for every asset-candidate node:
// it batches render requests against the Figma API, downloads the returned
// URLs concurrently, and maps node IDs to local filenames. Partial failure is
// an expected outcome: a failed batch or download leaves the affected records
// without a filename and is surfaced as a warning, never as an error.
package assets

import (
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/cockroachdb/errors"
	"go.uber.org/zap"

	"github.com/Chickencurry27/storybook/pkg/figma"
	"github.com/Chickencurry27/storybook/pkg/graph"
	"github.com/Chickencurry27/storybook/pkg/naming"
)

const (
	maxNodesPerRequest   = 100
	maxParallelDownloads = 5
)

// Record maps one asset-candidate node to its exported file. Filename is
// empty when no binary export succeeded for the node; the node then degrades
// to a plain placeholder box downstream.
type Record struct {
	NodeID    string
	Name      string
	NodeType  string
	ImageFill bool
	Filename  string
}

// Config holds the export parameters.
type Config struct {
	OutputDir string  // local directory for downloaded files
	Scale     float64 // raster scale factor; 0 means 1
}

// Export collects every asset-candidate node under root, partitions them by
// export format, and downloads the rendered binaries. It returns one Record
// per candidate regardless of download outcome. The only error condition is
// failing to create the output directory; everything network-side degrades to
// warnings and empty filenames.
func Export(client *figma.Client, fileKey string, root *figma.Node, cfg Config, log *zap.SugaredLogger) ([]Record, error) {
	candidates := Collect(root)
	if len(candidates) == 0 {
		return nil, nil
	}

	if err := os.MkdirAll(cfg.OutputDir, 0o755); err != nil {
		return nil, errors.Wrapf(err, "create asset directory %q", cfg.OutputDir)
	}
	if cfg.Scale <= 0 {
		cfg.Scale = 1
	}

	records := make([]Record, len(candidates))
	byID := make(map[string]*Record, len(candidates))
	for i, c := range candidates {
		records[i] = Record{
			NodeID:    c.ID,
			Name:      c.Name,
			NodeType:  c.Type,
			ImageFill: graph.HasImageFill(c),
		}
		byID[c.ID] = &records[i]
	}

	// Partition by export format; the two partitions hit the API
	// concurrently, batches within one partition go out sequentially to
	// bound in-flight render requests.
	partitions := map[string][]string{}
	for _, c := range candidates {
		f := graph.ExportFormat(c)
		partitions[f] = append(partitions[f], c.ID)
	}

	var mu sync.Mutex
	var wg sync.WaitGroup
	for format, ids := range partitions {
		wg.Add(1)
		go func(format string, ids []string) {
			defer wg.Done()
			exportPartition(client, fileKey, format, ids, cfg, byID, &mu, log)
		}(format, ids)
	}
	wg.Wait()

	return records, nil
}

// Collect returns every asset-candidate node under root in depth-first
// pre-order.
func Collect(root *figma.Node) []*figma.Node {
	var out []*figma.Node
	var walk func(n *figma.Node)
	walk = func(n *figma.Node) {
		if graph.IsAssetCandidate(n) {
			out = append(out, n)
		}
		for i := range n.Children {
			walk(&n.Children[i])
		}
	}
	walk(root)
	return out
}

// exportPartition issues batched render requests for one format and downloads
// the returned URLs. A failed batch request skips the whole batch; a failed
// single download skips only that node.
func exportPartition(client *figma.Client, fileKey, format string, ids []string, cfg Config, byID map[string]*Record, mu *sync.Mutex, log *zap.SugaredLogger) {
	for start := 0; start < len(ids); start += maxNodesPerRequest {
		end := start + maxNodesPerRequest
		if end > len(ids) {
			end = len(ids)
		}
		batch := ids[start:end]

		imgResp, err := client.GetImages(fileKey, batch, format, cfg.Scale)
		if err != nil {
			log.Warnw("asset batch request failed, skipping batch",
				"format", format, "batch_size", len(batch), "error", err)
			continue
		}

		var wg sync.WaitGroup
		sem := make(chan struct{}, maxParallelDownloads)

		for _, id := range batch {
			rec := byID[id]
			imageURL := imgResp.Images[id]
			if imageURL == "" {
				log.Warnw("no image URL returned for node", "node", rec.Name, "id", id)
				continue
			}

			wg.Add(1)
			go func(rec *Record, url string) {
				defer wg.Done()
				sem <- struct{}{}
				defer func() { <-sem }()

				fileName := FileName(rec.Name, rec.NodeID, format)
				destPath := filepath.Join(cfg.OutputDir, fileName)
				if err := downloadFile(url, destPath); err != nil {
					log.Warnw("asset download failed", "node", rec.Name, "id", rec.NodeID, "error", err)
					return
				}

				mu.Lock()
				rec.Filename = fileName
				mu.Unlock()
			}(rec, imageURL)
		}

		wg.Wait()
	}
}

// downloadFile performs an HTTP GET and saves the response body to destPath.
func downloadFile(url, destPath string) error {
	resp, err := http.Get(url)
	if err != nil {
		return errors.Wrap(err, "HTTP GET failed")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return errors.Newf("unexpected status %d downloading image", resp.StatusCode)
	}

	f, err := os.Create(destPath)
	if err != nil {
		return errors.Wrapf(err, "create file %q", destPath)
	}
	defer f.Close()

	if _, err := io.Copy(f, resp.Body); err != nil {
		return errors.Wrapf(err, "write file %q", destPath)
	}

	return nil
}

// FileName builds "<slug>-<sanitized id>.<ext>". Embedding the node ID keeps
// filenames unique even when two nodes share a label and makes the mapping
// invertible for debugging.
func FileName(nodeName, nodeID, format string) string {
	slug := naming.ToIdentifier(nodeName)
	if slug == "" {
		slug = "asset"
	}
	return slug + "-" + sanitizeID(nodeID) + "." + format
}

// sanitizeID makes a Figma node ID ("12:34", "I12:34;56:78") filesystem-safe.
func sanitizeID(id string) string {
	id = strings.ToLower(id)
	var b strings.Builder
	for _, r := range id {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') || r == '-' || r == '_' {
			b.WriteRune(r)
		} else {
			b.WriteByte('-')
		}
	}
	return b.String()
}

// Map indexes records by node ID for the emitters.
func Map(records []Record) map[string]Record {
	m := make(map[string]Record, len(records))
	for _, r := range records {
		m[r.NodeID] = r
	}
	return m
}
