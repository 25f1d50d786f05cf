package jsonfile

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"news_harvester/internal/domain"
)

// Writer stores each month's articles as one JSON array file.
type Writer struct {
	dir    string
	indent string
	logger *slog.Logger
}

func NewWriter(dir, indent string, logger *slog.Logger) *Writer {
	return &Writer{
		dir:    dir,
		indent: indent,
		logger: logger.With("component", "writer"),
	}
}

// FileName is the output file name for a month.
func FileName(month domain.Month) string {
	return fmt.Sprintf("articles_%s_%s.json", month.Year, month.Month)
}

// Write replaces the month's file with articles, in the given order. Non-ASCII
// text and HTML characters are written literally. An empty batch still
// produces a file holding an empty array.
func (w *Writer) Write(_ context.Context, month domain.Month, articles []domain.Article) (string, error) {
	data, err := Encode(articles, w.indent)
	if err != nil {
		return "", fmt.Errorf("encode articles: %w", err)
	}

	path := filepath.Join(w.dir, FileName(month))
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("write file: %w", err)
	}

	w.logger.Debug("wrote batch", "path", path, "articles", len(articles), "bytes", len(data))

	return path, nil
}

// Encode renders articles as an indented JSON array.
func Encode(articles []domain.Article, indent string) ([]byte, error) {
	if articles == nil {
		articles = []domain.Article{}
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", indent)

	if err := enc.Encode(articles); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
