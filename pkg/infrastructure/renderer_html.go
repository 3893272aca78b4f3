package infrastructure

import (
	"bytes"
	"context"
	"html/template"
	"log/slog"
	"net/url"
	"strings"
	"sync"

	"resume-builder/internal/model"
	"resume-builder/internal/usecase"
	"resume-builder/templates"

	"golang.org/x/net/publicsuffix"
)

type contactItem struct {
	Kind string
	Text string
	Href string
}

type previewData struct {
	Resume  model.Resume
	Contact []contactItem
}

// HTMLRenderer projects a resume into the preview page.
type HTMLRenderer struct {
	tpl *template.Template
	css string
}

func NewHTMLRenderer() (*HTMLRenderer, error) {
	tpl, err := template.New("preview").Parse(templates.PreviewHTML)
	if err != nil {
		return nil, err
	}
	return &HTMLRenderer{tpl: tpl, css: templates.StyleCSS}, nil
}

func (r *HTMLRenderer) Render(doc model.Resume) (string, error) {
	var buf bytes.Buffer
	if err := r.tpl.Execute(&buf, previewData{Resume: doc, Contact: contactLine(doc.PersonalInfo)}); err != nil {
		return "", err
	}
	html := buf.String()

	// inline the stylesheet at the top of head
	if r.css != "" {
		cssBlock := "<style>" + r.css + "</style>"
		if strings.Contains(html, "<head>") {
			html = strings.Replace(html, "<head>", "<head>"+cssBlock, 1)
		} else {
			html = cssBlock + html
		}
	}
	return html, nil
}

// contactLine keeps contact fields in display order and drops empty ones.
func contactLine(p model.PersonalInfo) []contactItem {
	var items []contactItem
	if p.Email != "" {
		items = append(items, contactItem{Kind: "email", Text: p.Email})
	}
	if p.Phone != "" {
		items = append(items, contactItem{Kind: "phone", Text: p.Phone})
	}
	if p.Location != "" {
		items = append(items, contactItem{Kind: "location", Text: p.Location})
	}
	if p.Website != "" {
		items = append(items, contactItem{Kind: "website", Text: p.Website, Href: websiteHref(p.Website)})
	}
	return items
}

// websiteHref returns a link target for free-text website values that name a
// registrable domain, or "" when the value does not look like one.
func websiteHref(raw string) string {
	s := strings.TrimSpace(raw)
	if s == "" || strings.ContainsAny(s, " \t\n") {
		return ""
	}
	withScheme := s
	if !strings.Contains(s, "://") {
		withScheme = "https://" + s
	}
	u, err := url.Parse(withScheme)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") {
		return ""
	}
	host := u.Hostname()
	if !strings.Contains(host, ".") {
		return ""
	}
	if _, err := publicsuffix.EffectiveTLDPlusOne(host); err != nil {
		return ""
	}
	return u.String()
}

// PreviewCache re-renders the preview after each change so readers always
// get the page for the latest snapshot.
type PreviewCache struct {
	renderer *HTMLRenderer
	log      *slog.Logger

	mu   sync.RWMutex
	html string
}

// NewPreviewCache renders initial once so the cache is never empty.
func NewPreviewCache(renderer *HTMLRenderer, initial model.Resume, logger *slog.Logger) (*PreviewCache, error) {
	html, err := renderer.Render(initial)
	if err != nil {
		return nil, err
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &PreviewCache{renderer: renderer, html: html, log: logger}, nil
}

func (c *PreviewCache) OnChange(_ context.Context, ch usecase.Change) {
	html, err := c.renderer.Render(ch.Current)
	if err != nil {
		// keep serving the last good page
		c.log.Error("preview render failed", "op", ch.Intent.Op, "error", err)
		return
	}
	c.mu.Lock()
	c.html = html
	c.mu.Unlock()
}

func (c *PreviewCache) HTML() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.html
}
