// Package scaffold writes the starter files for a new portfolio site: an
// .env.example, a README and a content.yaml with the built-in tables.
package scaffold

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"text/template"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/mdalaminab17/portfolio/content"
)

// Templates contains all scaffold template files.
// Files use Go text/template syntax and have a .tmpl suffix.
//
//go:embed all:templates
var Templates embed.FS

// ErrExists is returned when the target already holds a content file.
var ErrExists = errors.New("scaffold: content.yaml already exists")

// Data holds the template variables passed to every scaffold template.
type Data struct {
	SiteName string
	SiteURL  string
	Author   string
}

// DataFor derives template data from a directory name, e.g. "jane-doe"
// becomes "Jane Doe".
func DataFor(dir string) Data {
	name := filepath.Base(filepath.Clean(dir))
	if name == "." || name == string(filepath.Separator) {
		name = "portfolio"
	}
	title := cases.Title(language.English).String(strings.NewReplacer("-", " ", "_", " ").Replace(name))
	return Data{
		SiteName: title,
		SiteURL:  "http://localhost:3000",
		Author:   title,
	}
}

// Write renders the templates into dir and adds content.yaml. It returns the
// created paths.
func Write(dir string, data Data) ([]string, error) {
	contentPath := filepath.Join(dir, "content.yaml")
	if _, err := os.Stat(contentPath); err == nil {
		return nil, ErrExists
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}

	var created []string
	root := "templates"
	err := fs.WalkDir(Templates, root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		relPath, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}
		outPath := strings.TrimSuffix(filepath.Join(dir, relPath), ".tmpl")
		// dotenv is stored without the dot so embed picks it up.
		if filepath.Base(outPath) == "dotenv" {
			outPath = filepath.Join(filepath.Dir(outPath), ".env.example")
		}
		if d.IsDir() {
			return os.MkdirAll(outPath, 0o755)
		}

		raw, err := Templates.ReadFile(path)
		if err != nil {
			return fmt.Errorf("read %s: %w", path, err)
		}
		tmpl, err := template.New(filepath.Base(path)).Parse(string(raw))
		if err != nil {
			return fmt.Errorf("parse template %s: %w", path, err)
		}
		f, err := os.Create(outPath)
		if err != nil {
			return fmt.Errorf("create %s: %w", outPath, err)
		}
		defer f.Close()
		if err := tmpl.Execute(f, data); err != nil {
			return fmt.Errorf("execute template %s: %w", path, err)
		}
		created = append(created, outPath)
		return nil
	})
	if err != nil {
		return created, err
	}

	tables := content.Default()
	tables.Profile.Name = data.Author
	raw, err := content.Marshal(tables)
	if err != nil {
		return created, err
	}
	if err := os.WriteFile(contentPath, raw, 0o644); err != nil {
		return created, fmt.Errorf("write content: %w", err)
	}
	return append(created, contentPath), nil
}
