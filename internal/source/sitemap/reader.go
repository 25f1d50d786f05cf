// Package sitemap lists URLs from sitemap index and monthly sitemap documents.
package sitemap

import (
	"bytes"
	"context"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"golang.org/x/net/html/charset"

	"news_harvester/internal/domain"
)

// Fetcher retrieves a document body.
type Fetcher interface {
	Get(ctx context.Context, url string) ([]byte, error)
}

// Reader implements service.SitemapReader.
type Reader struct {
	fetcher  Fetcher
	indexURL string
	logger   *slog.Logger
}

// New creates a sitemap reader rooted at indexURL.
func New(fetcher Fetcher, indexURL string, logger *slog.Logger) *Reader {
	return &Reader{
		fetcher:  fetcher,
		indexURL: indexURL,
		logger:   logger.With("component", "sitemap"),
	}
}

// ListMonthlySitemaps returns every <loc> of the sitemap index, in document order.
func (r *Reader) ListMonthlySitemaps(ctx context.Context) ([]string, error) {
	return r.list(ctx, r.indexURL)
}

// ListArticleURLs returns every <loc> of a monthly sitemap, in document order.
func (r *Reader) ListArticleURLs(ctx context.Context, sitemapURL string) ([]string, error) {
	return r.list(ctx, sitemapURL)
}

func (r *Reader) list(ctx context.Context, url string) ([]string, error) {
	body, err := r.fetcher.Get(ctx, url)
	if err != nil {
		return nil, err
	}

	locs, err := ParseLocs(bytes.NewReader(body))
	if err != nil {
		return nil, &domain.ParseError{URL: url, Err: err}
	}

	r.logger.Debug("listed sitemap", "url", url, "locs", len(locs))

	return locs, nil
}

// ParseLocs returns the text of every loc element in the root element's
// namespace, at any depth, in document order. Extension elements such as
// <image:loc> are skipped. It does not care whether the document is a
// <sitemapindex> or a <urlset>.
func ParseLocs(in io.Reader) ([]string, error) {
	dec := xml.NewDecoder(in)
	dec.CharsetReader = charset.NewReaderLabel

	locs := []string{}
	var (
		root  *xml.Name
		inLoc bool
		text  strings.Builder
	)

	for {
		tok, err := dec.Token()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("decode failed: %w", err)
		}

		switch t := tok.(type) {
		case xml.StartElement:
			if root == nil {
				root = &t.Name
			}
			if strings.EqualFold(t.Name.Local, "loc") && t.Name.Space == root.Space {
				inLoc = true
				text.Reset()
			}
		case xml.CharData:
			if inLoc {
				text.Write(t)
			}
		case xml.EndElement:
			if inLoc && strings.EqualFold(t.Name.Local, "loc") {
				locs = append(locs, strings.TrimSpace(text.String()))
				inLoc = false
			}
		}
	}

	return locs, nil
}
