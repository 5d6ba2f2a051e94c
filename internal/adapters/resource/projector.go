// Package resource exposes current cache contents as versioned, externally
// addressable read-only snapshots.
package resource

import (
	"crypto/sha256"
	"encoding/hex"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"time"

	"github.com/jonboulle/clockwork"
	"go.trai.ch/memo/internal/adapters/fs"
	"go.trai.ch/memo/internal/core/domain"
	"go.trai.ch/memo/internal/core/ports"
	"go.trai.ch/memo/internal/engine/results"
)

// Namespace is the key prefix for cached projections.
const Namespace = "resource"

// Metadata view kinds.
const (
	ViewFingerprints = "fingerprints"
	ViewStructure    = "structure"
)

// structure view bounds, to keep snapshots of large trees cheap.
const (
	maxTreeDepth   = 6
	maxTreeEntries = 500
)

// View is the externally visible snapshot shape. Data is nil, with an
// explanatory note, when nothing has been cached yet; a cold cache is never
// an error.
type View struct {
	Version     string `json:"version"`
	LastUpdated string `json:"lastUpdated"`
	Data        any    `json:"data"`
	Note        string `json:"note,omitempty"`
}

// FileEntry is one row of the fingerprint table view.
type FileEntry struct {
	Hash       string `json:"hash"`
	SizeBytes  int64  `json:"sizeBytes"`
	ModifiedAt string `json:"modifiedAt"`
}

// TreeNode is one node of the structure view.
type TreeNode struct {
	Name     string     `json:"name"`
	Dir      bool       `json:"dir,omitempty"`
	Children []TreeNode `json:"children,omitempty"`
}

// Projector builds views over the shared store. Metadata aggregates are
// themselves stored back under the resource namespace with the structural
// TTL, so repeated projections inside the TTL window are cache hits too.
type Projector struct {
	store    ports.Store
	fp       ports.Fingerprinter
	res      *results.Cache
	walker   *fs.Walker
	clock    clockwork.Clock
	root     string
	excludes []string
}

// NewProjector creates a Projector.
func NewProjector(
	store ports.Store,
	fp ports.Fingerprinter,
	res *results.Cache,
	walker *fs.Walker,
	clock clockwork.Clock,
	root string,
	excludes []string,
) *Projector {
	return &Projector{
		store:    store,
		fp:       fp,
		res:      res,
		walker:   walker,
		clock:    clock,
		root:     root,
		excludes: excludes,
	}
}

// OperationView wraps the latest record for an operation type, valid or not,
// with a content-derived version id for cheap change detection.
func (p *Projector) OperationView(op domain.OperationType) View {
	rec, ok := p.res.Latest(op)
	if !ok {
		return p.emptyView(string(op), "no "+string(op)+" result cached yet")
	}
	return View{
		Version:     versionID(rec.ProducedAt, string(op)),
		LastUpdated: rec.ProducedAt.UTC().Format(time.RFC3339),
		Data:        rec,
	}
}

// MetadataView builds a point-in-time aggregate independent of any single
// operation record.
func (p *Projector) MetadataView(kind string) (View, error) {
	switch kind {
	case ViewFingerprints:
		return p.fingerprintView(), nil
	case ViewStructure:
		return p.structureView(), nil
	default:
		return View{}, domain.ErrUnknownView
	}
}

func (p *Projector) fingerprintView() View {
	key := p.store.GenerateKey(Namespace, ViewFingerprints)
	if v, ok := p.store.Get(key); ok {
		if view, ok := v.(View); ok {
			return view
		}
	}

	sources := p.walker.SourceFiles(p.root, fs.SourceExtensions, p.excludes)
	table := make(map[string]FileEntry, len(sources))
	for _, fp := range p.fp.GetBatch(sources) {
		if !fp.Exists {
			continue
		}
		table[fp.Path] = FileEntry{
			Hash:       fp.ContentHash,
			SizeBytes:  fp.SizeBytes,
			ModifiedAt: fp.ModifiedAt.UTC().Format(time.RFC3339),
		}
	}

	now := p.clock.Now()
	view := View{
		Version:     versionID(now, ViewFingerprints),
		LastUpdated: now.UTC().Format(time.RFC3339),
		Data:        table,
	}
	p.store.SetWithClassTTL(key, view, ports.TTLMedium)
	return view
}

func (p *Projector) structureView() View {
	key := p.store.GenerateKey(Namespace, ViewStructure)
	if v, ok := p.store.Get(key); ok {
		if view, ok := v.(View); ok {
			return view
		}
	}

	budget := maxTreeEntries
	tree := p.buildTree(p.root, 0, &budget)

	now := p.clock.Now()
	view := View{
		Version:     versionID(now, ViewStructure),
		LastUpdated: now.UTC().Format(time.RFC3339),
		Data:        tree,
	}
	p.store.SetWithClassTTL(key, view, ports.TTLMedium)
	return view
}

func (p *Projector) buildTree(dir string, depth int, budget *int) []TreeNode {
	if depth >= maxTreeDepth || *budget <= 0 {
		return nil
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Name() < entries[j].Name() })

	var nodes []TreeNode
	for _, e := range entries {
		if *budget <= 0 {
			break
		}
		name := e.Name()
		if name == ".git" || name == ".jj" || excludedName(name, p.excludes) {
			continue
		}
		*budget--

		node := TreeNode{Name: name, Dir: e.IsDir()}
		if e.IsDir() {
			node.Children = p.buildTree(filepath.Join(dir, name), depth+1, budget)
		}
		nodes = append(nodes, node)
	}
	return nodes
}

func (p *Projector) emptyView(kind, note string) View {
	now := p.clock.Now()
	return View{
		Version:     versionID(now, kind),
		LastUpdated: now.UTC().Format(time.RFC3339),
		Data:        nil,
		Note:        note,
	}
}

// versionID derives a short content version from the timestamp and view
// kind, cheap for external readers to diff.
func versionID(t time.Time, kind string) string {
	sum := sha256.Sum256([]byte(strconv.FormatInt(t.UnixNano(), 10) + ":" + kind))
	return hex.EncodeToString(sum[:6])
}

func excludedName(name string, excludes []string) bool {
	for _, pattern := range excludes {
		if matched, _ := filepath.Match(pattern, name); matched {
			return true
		}
	}
	return false
}
