package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)

	assert.Equal(t, DefaultIndexURL, cfg.Sitemap.IndexURL)
	assert.Equal(t, DefaultMetadataScriptID, cfg.Extractor.MetadataScriptID)
	assert.False(t, cfg.Extractor.IncludeBodyText)
	assert.Equal(t, 11, cfg.Harvest.MaxArticlesPerMonth)
	assert.Equal(t, DefaultMonthPattern, cfg.Harvest.MonthPattern)
	assert.Equal(t, time.Duration(0), cfg.Harvest.Interval)
	assert.Equal(t, 30*time.Second, cfg.HTTP.Timeout)
	assert.Equal(t, ".", cfg.Output.Dir)
	assert.Equal(t, "    ", cfg.Output.Indent)
	assert.False(t, cfg.Database.Enabled)
	assert.False(t, cfg.RabbitMQ.Enabled)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "text", cfg.LogFormat)
}

func TestLoad_OverridesAndEnv(t *testing.T) {
	t.Setenv("HARVEST_DB_PASSWORD", "s3cret")

	path := writeConfig(t, `
sitemap:
  index_url: http://localhost/all.xml
http:
  timeout: 5s
extractor:
  metadata_script_id: meta
  include_body_text: true
harvest:
  max_articles_per_month: -1
  interval: 1h
output:
  dir: out
database:
  enabled: true
  host: db
  user: harvester
  password: ${HARVEST_DB_PASSWORD}
  dbname: news
log_level: debug
log_format: json
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "http://localhost/all.xml", cfg.Sitemap.IndexURL)
	assert.Equal(t, 5*time.Second, cfg.HTTP.Timeout)
	assert.Equal(t, "meta", cfg.Extractor.MetadataScriptID)
	assert.True(t, cfg.Extractor.IncludeBodyText)
	assert.Equal(t, -1, cfg.Harvest.MaxArticlesPerMonth)
	assert.Equal(t, time.Hour, cfg.Harvest.Interval)
	assert.Equal(t, "out", cfg.Output.Dir)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "json", cfg.LogFormat)
	assert.Equal(t,
		"host=db port=5432 user=harvester password=s3cret dbname=news sslmode=disable",
		cfg.Database.DSN(),
	)
}

func TestLoad_InvalidYAML(t *testing.T) {
	path := writeConfig(t, "harvest: [unclosed")

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse config")
}

func TestLoad_ZeroCapFallsBackToDefault(t *testing.T) {
	path := writeConfig(t, `
harvest:
  max_articles_per_month: 0
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, DefaultMaxArticles, cfg.Harvest.MaxArticlesPerMonth)
}
