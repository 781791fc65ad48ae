package linters

import (
	"embed"
	"fmt"
	"io/fs"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed docs/*.md
var docsFS embed.FS

// DocInfo holds metadata extracted from a linter doc's front matter.
type DocInfo struct {
	Name        string
	Description string
	Content     string
}

// ListDocs returns all embedded linter docs sorted by name.
func ListDocs() ([]DocInfo, error) {
	return listDocsFromFS(docsFS)
}

// LookupDoc finds a linter doc by name (e.g. "final_newline") and returns
// its full content. Matching is case-insensitive.
func LookupDoc(name string) (string, error) {
	return lookupDocFromFS(docsFS, name)
}

func listDocsFromFS(fsys fs.FS) ([]DocInfo, error) {
	entries, err := fs.ReadDir(fsys, "docs")
	if err != nil {
		return nil, fmt.Errorf("reading docs directory: %w", err)
	}

	var docs []DocInfo
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".md") {
			continue
		}
		data, err := fs.ReadFile(fsys, "docs/"+entry.Name())
		if err != nil {
			continue
		}
		info, err := parseFrontMatter(string(data))
		if err != nil {
			continue
		}
		info.Content = string(data)
		docs = append(docs, info)
	}

	sort.Slice(docs, func(i, j int) bool {
		return docs[i].Name < docs[j].Name
	})

	return docs, nil
}

func lookupDocFromFS(fsys fs.FS, name string) (string, error) {
	docs, err := listDocsFromFS(fsys)
	if err != nil {
		return "", err
	}

	for _, d := range docs {
		if strings.EqualFold(d.Name, name) {
			return d.Content, nil
		}
	}

	return "", fmt.Errorf("unknown linter %q", name)
}

// parseFrontMatter extracts name and description from YAML front matter.
func parseFrontMatter(content string) (DocInfo, error) {
	const delim = "---\n"
	if !strings.HasPrefix(content, delim) {
		return DocInfo{}, fmt.Errorf("missing front matter")
	}
	rest := content[len(delim):]
	end := strings.Index(rest, delim)
	if end < 0 {
		return DocInfo{}, fmt.Errorf("unterminated front matter")
	}

	var meta struct {
		Name        string `yaml:"name"`
		Description string `yaml:"description"`
	}
	if err := yaml.Unmarshal([]byte(rest[:end]), &meta); err != nil {
		return DocInfo{}, fmt.Errorf("parsing front matter: %w", err)
	}
	if meta.Name == "" {
		return DocInfo{}, fmt.Errorf("front matter missing name")
	}

	return DocInfo{Name: meta.Name, Description: meta.Description}, nil
}
