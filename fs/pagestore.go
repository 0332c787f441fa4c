package fs

import (
	"context"
	"fmt"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"

	"github.com/fwojciec/showcase"
)

// Ensure FileStore implements showcase.PageStore at compile time.
var _ showcase.PageStore = (*FileStore)(nil)

// FileStore implements showcase.PageStore with atomic update semantics.
// Pages are saved as markdown to a temporary directory, then moved
// atomically on Commit.
type FileStore struct {
	baseDir   string
	name      string
	converter showcase.Converter
}

// NewFileStore creates a new FileStore.
// baseDir is the parent directory, name is the output directory name.
// Files are saved to baseDir/name.tmp and moved to baseDir/name on Commit.
// The converter turns page descriptions into markdown.
func NewFileStore(baseDir, name string, converter showcase.Converter) *FileStore {
	return &FileStore{
		baseDir:   baseDir,
		name:      name,
		converter: converter,
	}
}

func (s *FileStore) tempDir() string {
	return filepath.Join(s.baseDir, s.name+".tmp")
}

func (s *FileStore) finalDir() string {
	return filepath.Join(s.baseDir, s.name)
}

func (s *FileStore) Save(ctx context.Context, page *showcase.Page) error {
	relPath, err := ViewToPath(page.ViewID())
	if err != nil {
		return err
	}

	content, err := FormatPage(page, s.converter)
	if err != nil {
		return err
	}

	fullPath := filepath.Join(s.tempDir(), filepath.FromSlash(relPath))

	// Create parent directories
	if err := os.MkdirAll(filepath.Dir(fullPath), 0755); err != nil {
		return err
	}

	return os.WriteFile(fullPath, []byte(content), 0644)
}

func (s *FileStore) Commit() error {
	// Remove existing final directory if present
	if err := os.RemoveAll(s.finalDir()); err != nil {
		return err
	}

	// A store without saved pages still produces an empty directory.
	if err := os.MkdirAll(s.tempDir(), 0755); err != nil {
		return err
	}

	return os.Rename(s.tempDir(), s.finalDir())
}

func (s *FileStore) Abort() error {
	return os.RemoveAll(s.tempDir())
}

// ViewToPath converts a view ID to a relative markdown file path.
// Example: /showcase/utils/Faces.xhtml → showcase/utils/Faces.md
func ViewToPath(viewID string) (string, error) {
	if viewID == "" {
		return "", showcase.Errorf(showcase.EINVALID, "view ID required")
	}

	for _, segment := range strings.Split(viewID, "/") {
		if segment == ".." {
			return "", showcase.Errorf(showcase.EINVALID, "path traversal in view ID %q", viewID)
		}
	}

	p := strings.TrimPrefix(path.Clean("/"+viewID), "/")
	if p == "" {
		return "index.md", nil
	}
	return strings.TrimSuffix(p, path.Ext(p)) + ".md", nil
}

// FormatPage formats a loaded page as markdown with YAML frontmatter,
// followed by the description and one fenced block per source.
func FormatPage(page *showcase.Page, converter showcase.Converter) (string, error) {
	var b strings.Builder
	b.WriteString("---\n")
	b.WriteString("view: ")
	b.WriteString(page.ViewID())
	b.WriteString("\ntitle: ")
	b.WriteString(page.Title())
	if doc := page.Documentation(); doc != nil {
		writeList(&b, "api", doc.API)
		writeList(&b, "src", doc.Src)
		writeList(&b, "vdl", doc.VDL)
		writeList(&b, "js", doc.JS)
	}
	b.WriteString("\nexported: ")
	b.WriteString(time.Now().Format("2006-01-02"))
	b.WriteString("\n---\n")

	if description := page.Description(); description != "" {
		md, err := converter.Convert(description)
		if err != nil {
			return "", fmt.Errorf("failed to convert description of %s: %w", page.ViewID(), err)
		}
		b.WriteString("\n")
		b.WriteString(md)
		b.WriteString("\n")
	}

	for _, src := range page.Sources() {
		fmt.Fprintf(&b, "\n## %s\n\n```%s\n%s\n```\n", src.Title, src.Type, src.Code)
	}

	return b.String(), nil
}

func writeList(b *strings.Builder, key string, values []string) {
	if len(values) == 0 {
		return
	}
	b.WriteString("\n")
	b.WriteString(key)
	b.WriteString(": [")
	b.WriteString(strings.Join(values, ", "))
	b.WriteString("]")
}
