// Package site holds the public editorial content of Plain Theory: the
// masthead, the article catalogue and the page templates. The same catalogue
// backs the HTTP site and the terminal landing page.
package site

import (
	"embed"
	"fmt"
	"html/template"
	"io"
	"sync"

	"gopkg.in/yaml.v3"
)

//go:embed content/articles.yaml
var catalogueYAML []byte

//go:embed templates/*.html
var templateFS embed.FS

type Masthead struct {
	Title   string `yaml:"title"`
	Tagline string `yaml:"tagline"`
	Footer  string `yaml:"footer"`
}

type Section struct {
	Heading    string   `yaml:"heading"`
	Paragraphs []string `yaml:"paragraphs"`
}

type Article struct {
	Slug        string    `yaml:"slug"`
	Title       string    `yaml:"title"`
	Subtitle    string    `yaml:"subtitle"`
	Kicker      string    `yaml:"kicker"`
	Byline      string    `yaml:"byline"`
	ReadMinutes int       `yaml:"read_minutes"`
	Sections    []Section `yaml:"sections"`
}

// Catalogue is the decoded content file.
type Catalogue struct {
	Masthead Masthead  `yaml:"masthead"`
	Articles []Article `yaml:"articles"`
}

var (
	loadOnce sync.Once
	loaded   *Catalogue
	loadErr  error

	tmplOnce sync.Once
	tmpl     *template.Template
	tmplErr  error
)

// Load decodes the embedded catalogue. The result is shared; do not modify it.
func Load() (*Catalogue, error) {
	loadOnce.Do(func() {
		loaded, loadErr = parseCatalogue(catalogueYAML)
	})
	return loaded, loadErr
}

func parseCatalogue(b []byte) (*Catalogue, error) {
	c := &Catalogue{}
	if err := yaml.Unmarshal(b, c); err != nil {
		return nil, fmt.Errorf("decode catalogue: %w", err)
	}
	seen := make(map[string]struct{}, len(c.Articles))
	for _, a := range c.Articles {
		if a.Slug == "" {
			return nil, fmt.Errorf("article %q has no slug", a.Title)
		}
		if _, ok := seen[a.Slug]; ok {
			return nil, fmt.Errorf("duplicate article slug %q", a.Slug)
		}
		seen[a.Slug] = struct{}{}
	}
	return c, nil
}

// Article returns the article with the given slug.
func (c *Catalogue) Article(slug string) (*Article, bool) {
	for i := range c.Articles {
		if c.Articles[i].Slug == slug {
			return &c.Articles[i], true
		}
	}
	return nil, false
}

type indexPage struct {
	Masthead Masthead
	Articles []Article
}

type articlePage struct {
	Masthead Masthead
	Article  *Article
}

func templates() (*template.Template, error) {
	tmplOnce.Do(func() {
		tmpl, tmplErr = template.ParseFS(templateFS, "templates/*.html")
	})
	return tmpl, tmplErr
}

// RenderIndex writes the landing page.
func (c *Catalogue) RenderIndex(w io.Writer) error {
	t, err := templates()
	if err != nil {
		return err
	}
	return t.ExecuteTemplate(w, "index.html", indexPage{Masthead: c.Masthead, Articles: c.Articles})
}

// RenderArticle writes a single article page.
func (c *Catalogue) RenderArticle(w io.Writer, a *Article) error {
	t, err := templates()
	if err != nil {
		return err
	}
	return t.ExecuteTemplate(w, "article.html", articlePage{Masthead: c.Masthead, Article: a})
}
