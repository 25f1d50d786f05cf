// Package extractor turns an article page into a domain.Article.
//
// Metadata comes from a single <script> element carrying a JSON object; the
// paragraph text is collected from every <p> element independently of it.
// Missing or malformed metadata is not an error: the article is built from an
// empty metadata object instead.
package extractor

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	"github.com/andybalholm/cascadia"
	"golang.org/x/net/html"

	"news_harvester/internal/domain"
)

// Fetcher retrieves a document body.
type Fetcher interface {
	Get(ctx context.Context, url string) ([]byte, error)
}

// Config holds extractor configuration.
type Config struct {
	MetadataScriptID string
	// IncludeBodyText puts the joined paragraph text into the html field
	// when the metadata has no html of its own.
	IncludeBodyText bool
}

// Extractor implements service.ArticleExtractor.
type Extractor struct {
	fetcher         Fetcher
	scriptSel       cascadia.Selector
	includeBodyText bool
	logger          *slog.Logger
}

var paraSel = cascadia.MustCompile("p")

// New creates an extractor looking for <script id="cfg.MetadataScriptID">.
func New(fetcher Fetcher, cfg Config, logger *slog.Logger) (*Extractor, error) {
	sel, err := cascadia.Compile(fmt.Sprintf(`script[id=%q]`, cfg.MetadataScriptID))
	if err != nil {
		return nil, fmt.Errorf("compile metadata selector: %w", err)
	}

	return &Extractor{
		fetcher:         fetcher,
		scriptSel:       sel,
		includeBodyText: cfg.IncludeBodyText,
		logger:          logger.With("component", "extractor"),
	}, nil
}

// Extract fetches articleURL and builds its record. It fails only when the
// page cannot be fetched or parsed.
func (e *Extractor) Extract(ctx context.Context, articleURL string) (*domain.Article, error) {
	body, err := e.fetcher.Get(ctx, articleURL)
	if err != nil {
		return nil, err
	}
	return e.ExtractHTML(articleURL, body)
}

// ExtractHTML builds the record from an already fetched page.
func (e *Extractor) ExtractHTML(articleURL string, page []byte) (*domain.Article, error) {
	root, err := html.Parse(bytes.NewReader(page))
	if err != nil {
		return nil, &domain.ParseError{URL: articleURL, Err: err}
	}

	meta := e.metadata(articleURL, root)

	var body string
	if e.includeBodyText {
		body = BodyText(root)
	}

	article := meta.Article(body)
	return &article, nil
}

func (e *Extractor) metadata(articleURL string, root *html.Node) domain.Metadata {
	script := e.scriptSel.MatchFirst(root)
	if script == nil {
		e.logger.Debug("no metadata script", "url", articleURL)
		return domain.Metadata{}
	}

	return ParseMetadata(GetTextContent(script))
}

// ParseMetadata decodes the first balanced JSON object found in text.
// Anything unusable yields empty metadata.
func ParseMetadata(text string) domain.Metadata {
	var meta domain.Metadata

	obj, ok := FirstObject(text)
	if !ok {
		return meta
	}
	if err := json.Unmarshal([]byte(obj), &meta); err != nil {
		return domain.Metadata{}
	}
	return meta
}

// FirstObject returns the first top-level balanced {...} span of s. Braces
// inside JSON string literals are not counted.
func FirstObject(s string) (string, bool) {
	start := strings.IndexByte(s, '{')
	if start < 0 {
		return "", false
	}

	depth := 0
	inString := false
	escaped := false

	for i := start; i < len(s); i++ {
		c := s[i]

		if inString {
			switch {
			case escaped:
				escaped = false
			case c == '\\':
				escaped = true
			case c == '"':
				inString = false
			}
			continue
		}

		switch c {
		case '"':
			inString = true
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return s[start : i+1], true
			}
		}
	}

	return "", false
}

// BodyText joins the text of every <p> element with newlines, in document order.
func BodyText(root *html.Node) string {
	paras := paraSel.MatchAll(root)
	texts := make([]string, len(paras))
	for i, p := range paras {
		texts[i] = GetTextContent(p)
	}
	return strings.Join(texts, "\n")
}

// GetTextContent recursively fetches the text for a node.
func GetTextContent(n *html.Node) string {
	var sb strings.Builder
	writeText(&sb, n)
	return sb.String()
}

func writeText(sb *strings.Builder, n *html.Node) {
	if n.Type == html.TextNode {
		sb.WriteString(n.Data)
		return
	}
	for child := n.FirstChild; child != nil; child = child.NextSibling {
		writeText(sb, child)
	}
}
