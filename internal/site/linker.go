// Package site builds display text and absolute URLs for pages, user
// profiles and the thanks confirmation page.
package site

import (
	"net/url"
	"strconv"
	"strings"

	"github.com/Wikia/thanksmetoo/internal/config"
	"github.com/Wikia/thanksmetoo/internal/domain"
)

// Namespace numbers with a known prefix. Unknown namespaces render the
// title without a prefix.
const (
	NamespaceMain        = 0
	NamespaceTalk        = 1
	NamespaceUser        = 2
	NamespaceUserTalk    = 3
	NamespaceProject     = 4
	NamespaceFile        = 6
	NamespaceTemplate    = 10
	NamespaceHelp        = 12
	NamespaceCategory    = 14
	NamespaceUserProfile = 1200
)

var namespaceNames = map[int]string{
	NamespaceTalk:     "Talk",
	NamespaceUser:     "User",
	NamespaceUserTalk: "User talk",
	NamespaceProject:  "Project",
	NamespaceFile:     "File",
	NamespaceTemplate: "Template",
	NamespaceHelp:     "Help",
	NamespaceCategory: "Category",
}

// Linker turns stored page and user references into links on this site.
type Linker struct {
	base        string
	articlePath string
	thanksPath  string
	profileNS   string
}

// NewLinker creates a Linker. cfg is expected to have passed validation.
func NewLinker(cfg config.SiteConfig) (*Linker, error) {
	base, err := url.Parse(cfg.BaseURL)
	if err != nil {
		return nil, err
	}
	return &Linker{
		base:        strings.TrimRight(base.String(), "/"),
		articlePath: cfg.ArticlePath,
		thanksPath:  cfg.ThanksPath,
		profileNS:   cfg.ProfileNamespace,
	}, nil
}

// TargetRef resolves a page to its display text and absolute URL.
func (l *Linker) TargetRef(p domain.Page) domain.TargetRef {
	full := l.fullTitle(p.Namespace, p.Title)
	return domain.TargetRef{
		PageID:      p.ID,
		Namespace:   p.Namespace,
		Title:       p.Title,
		DisplayText: strings.ReplaceAll(full, "_", " "),
		URL:         l.articleURL(full),
	}
}

// ProfileURL returns the profile page of the named user.
func (l *Linker) ProfileURL(name string) string {
	return l.articleURL(l.profileNS + ":" + name)
}

// ThanksURL returns the confirmation page for an edit ("123") or an
// action ("Log/123").
func (l *Linker) ThanksURL(key domain.ThanksKey) string {
	par := strconv.FormatInt(key.ID, 10)
	if key.Kind == domain.EventKindAction {
		par = "Log/" + par
	}
	return l.join(l.thanksPath + par)
}

func (l *Linker) fullTitle(ns int, title string) string {
	switch {
	case ns == NamespaceMain:
		return title
	case ns == NamespaceUserProfile:
		return l.profileNS + ":" + title
	}
	if name, ok := namespaceNames[ns]; ok {
		return name + ":" + title
	}
	return title
}

func (l *Linker) articleURL(title string) string {
	dbKey := strings.ReplaceAll(title, " ", "_")
	return l.join(l.articlePath + escapeTitle(dbKey))
}

// join appends an already escaped path to the base URL.
func (l *Linker) join(path string) string {
	return l.base + path
}

// escapeTitle percent-encodes a title for use in a path, keeping the
// characters wiki links leave readable.
func escapeTitle(title string) string {
	escaped := url.PathEscape(title)
	r := strings.NewReplacer("%3A", ":", "%2F", "/")
	return r.Replace(escaped)
}
