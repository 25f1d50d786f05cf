package domain

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
)

// Article is the record harvested from one article page. Field order is the
// order written to the monthly JSON file.
type Article struct {
	Type          *string          `json:"type"`
	PostID        *string          `json:"postid"`
	Title         *string          `json:"title"`
	URL           *string          `json:"url"`
	Keywords      []string         `json:"keywords"`
	Thumbnail     *string          `json:"thumbnail"`
	VideoDuration *string          `json:"video_duration"`
	WordCount     *string          `json:"word_count"`
	Lang          *string          `json:"lang"`
	PublishedTime *string          `json:"published_time"`
	LastUpdated   *string          `json:"last_updated"`
	Description   *string          `json:"description"`
	Author        *string          `json:"author"`
	Classes       []map[string]any `json:"classes"`
	HTML          string           `json:"html"`
	LiteURL       *string          `json:"lite_url"`
}

// Text is a metadata value that may be missing. Strings are taken as-is;
// numbers and booleans keep their JSON literal text; null means absent.
type Text struct {
	Value string
	Valid bool
}

func (t *Text) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	switch {
	case bytes.Equal(data, []byte("null")):
		*t = Text{}
	case len(data) > 0 && data[0] == '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*t = Text{Value: s, Valid: true}
	default:
		*t = Text{Value: string(data), Valid: true}
	}
	return nil
}

// Ptr returns nil for an absent value.
func (t Text) Ptr() *string {
	if !t.Valid {
		return nil
	}
	v := t.Value
	return &v
}

// Metadata is the JSON object embedded in an article page's metadata script.
type Metadata struct {
	Type          Text             `json:"type"`
	PostID        Text             `json:"postid"`
	Title         Text             `json:"title"`
	URL           Text             `json:"url"`
	Keywords      Text             `json:"keywords"`
	Thumbnail     Text             `json:"thumbnail"`
	VideoDuration Text             `json:"video_duration"`
	WordCount     Text             `json:"word_count"`
	Lang          Text             `json:"lang"`
	PublishedTime Text             `json:"published_time"`
	LastUpdated   Text             `json:"last_updated"`
	Description   Text             `json:"description"`
	Author        Text             `json:"author"`
	Classes       []map[string]any `json:"classes"`
	HTML          Text             `json:"html"`
	LiteURL       Text             `json:"lite_url"`
}

// UnmarshalJSON looks keys up exactly as written, unlike the default
// case-insensitive matching. A malformed classes value is dropped without
// affecting the other fields.
func (m *Metadata) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	*m = Metadata{}
	fields := map[string]*Text{
		"type":           &m.Type,
		"postid":         &m.PostID,
		"title":          &m.Title,
		"url":            &m.URL,
		"keywords":       &m.Keywords,
		"thumbnail":      &m.Thumbnail,
		"video_duration": &m.VideoDuration,
		"word_count":     &m.WordCount,
		"lang":           &m.Lang,
		"published_time": &m.PublishedTime,
		"last_updated":   &m.LastUpdated,
		"description":    &m.Description,
		"author":         &m.Author,
		"html":           &m.HTML,
		"lite_url":       &m.LiteURL,
	}
	for key, dst := range fields {
		v, ok := raw[key]
		if !ok {
			continue
		}
		if err := dst.UnmarshalJSON(v); err != nil {
			return fmt.Errorf("decode %s: %w", key, err)
		}
	}

	m.Classes = decodeClasses(raw["classes"])
	return nil
}

// decodeClasses keeps the object entries of a classes array. Anything else
// yields nil.
func decodeClasses(raw json.RawMessage) []map[string]any {
	if len(raw) == 0 {
		return nil
	}
	var items []any
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil
	}
	classes := make([]map[string]any, 0, len(items))
	for _, item := range items {
		if obj, ok := item.(map[string]any); ok {
			classes = append(classes, obj)
		}
	}
	return classes
}

// SplitKeywords splits the comma separated keyword string. An absent or
// empty value yields a single empty keyword.
func (m Metadata) SplitKeywords() []string {
	return strings.Split(m.Keywords.Value, ",")
}

// Article builds the record. body replaces the html field only when the
// metadata carries no html of its own and body is non-empty.
func (m Metadata) Article(body string) Article {
	classes := m.Classes
	if classes == nil {
		classes = []map[string]any{}
	}

	html := m.HTML.Value
	if !m.HTML.Valid && body != "" {
		html = body
	}

	return Article{
		Type:          m.Type.Ptr(),
		PostID:        m.PostID.Ptr(),
		Title:         m.Title.Ptr(),
		URL:           m.URL.Ptr(),
		Keywords:      m.SplitKeywords(),
		Thumbnail:     m.Thumbnail.Ptr(),
		VideoDuration: m.VideoDuration.Ptr(),
		WordCount:     m.WordCount.Ptr(),
		Lang:          m.Lang.Ptr(),
		PublishedTime: m.PublishedTime.Ptr(),
		LastUpdated:   m.LastUpdated.Ptr(),
		Description:   m.Description.Ptr(),
		Author:        m.Author.Ptr(),
		Classes:       classes,
		HTML:          html,
		LiteURL:       m.LiteURL.Ptr(),
	}
}
