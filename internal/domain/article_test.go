package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetadata_SplitKeywords(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want []string
	}{
		{name: "comma separated", raw: `{"keywords":"a,b,c"}`, want: []string{"a", "b", "c"}},
		{name: "absent", raw: `{}`, want: []string{""}},
		{name: "empty", raw: `{"keywords":""}`, want: []string{""}},
		{name: "null", raw: `{"keywords":null}`, want: []string{""}},
		{name: "keeps spaces", raw: `{"keywords":"a, b"}`, want: []string{"a", " b"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var m Metadata
			require.NoError(t, json.Unmarshal([]byte(tt.raw), &m))
			assert.Equal(t, tt.want, m.SplitKeywords())
		})
	}
}

func TestText_UnmarshalJSON(t *testing.T) {
	var m Metadata
	raw := `{"postid":12345,"title":"عنوان","word_count":"800","lang":null,"author":true}`
	require.NoError(t, json.Unmarshal([]byte(raw), &m))

	assert.Equal(t, Text{Value: "12345", Valid: true}, m.PostID)
	assert.Equal(t, Text{Value: "عنوان", Valid: true}, m.Title)
	assert.Equal(t, Text{Value: "800", Valid: true}, m.WordCount)
	assert.False(t, m.Lang.Valid)
	assert.Equal(t, "true", m.Author.Value)
	assert.False(t, m.Description.Valid)
	assert.Nil(t, m.Description.Ptr())
}

func TestMetadata_UnmarshalJSON_ExactKeys(t *testing.T) {
	var m Metadata
	require.NoError(t, json.Unmarshal([]byte(`{"Title":"wrong-key","URL":"u","url":"https://example.com/a"}`), &m))

	assert.False(t, m.Title.Valid)
	assert.Equal(t, Text{Value: "https://example.com/a", Valid: true}, m.URL)
}

func TestMetadata_Article_ExplicitNulls(t *testing.T) {
	var m Metadata
	require.NoError(t, json.Unmarshal([]byte(`{"html":null,"classes":null,"title":null}`), &m))

	a := m.Article("")
	assert.Equal(t, "", a.HTML)
	assert.Equal(t, []map[string]any{}, a.Classes)
	assert.Nil(t, a.Title)
}

func TestMetadata_UnmarshalJSON_Classes(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want []map[string]any
	}{
		{name: "objects", raw: `{"classes":[{"key":"category","value":"news"}]}`, want: []map[string]any{{"key": "category", "value": "news"}}},
		{name: "mixed entries", raw: `{"classes":["news",{"key":"a"},3]}`, want: []map[string]any{{"key": "a"}}},
		{name: "object instead of array", raw: `{"classes":{"category":"x"}}`, want: nil},
		{name: "string", raw: `{"classes":"news"}`, want: nil},
		{name: "absent", raw: `{}`, want: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var m Metadata
			require.NoError(t, json.Unmarshal([]byte(tt.raw), &m))
			assert.Equal(t, tt.want, m.Classes)
		})
	}
}

func TestMetadata_Article_Empty(t *testing.T) {
	a := Metadata{}.Article("")

	assert.Nil(t, a.Type)
	assert.Nil(t, a.PostID)
	assert.Nil(t, a.Title)
	assert.Nil(t, a.URL)
	assert.Nil(t, a.VideoDuration)
	assert.Nil(t, a.LiteURL)
	assert.Equal(t, []string{""}, a.Keywords)
	assert.Equal(t, []map[string]any{}, a.Classes)
	assert.Equal(t, "", a.HTML)
}

func TestMetadata_Article_BodyText(t *testing.T) {
	m := Metadata{HTML: Text{Value: "<div>x</div>", Valid: true}}
	assert.Equal(t, "<div>x</div>", m.Article("para one\npara two").HTML)

	m = Metadata{}
	assert.Equal(t, "para one\npara two", m.Article("para one\npara two").HTML)
}

func TestArticle_JSONFieldOrder(t *testing.T) {
	data, err := json.Marshal(Metadata{}.Article(""))
	require.NoError(t, err)

	want := `{"type":null,"postid":null,"title":null,"url":null,"keywords":[""],` +
		`"thumbnail":null,"video_duration":null,"word_count":null,"lang":null,` +
		`"published_time":null,"last_updated":null,"description":null,"author":null,` +
		`"classes":[],"html":"","lite_url":null}`
	assert.Equal(t, want, string(data))
}
