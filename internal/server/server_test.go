package server

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/davideasaf/neuralnotes/pkg/content"
	"github.com/davideasaf/neuralnotes/pkg/siteconfig"
)

type memSource struct {
	docs map[content.Kind][]content.Document
}

func (s *memSource) List(ctx context.Context, kind content.Kind) ([]content.Document, error) {
	return s.docs[kind], nil
}

func testServer(t *testing.T) *Server {
	t.Helper()

	src := &memSource{docs: map[content.Kind][]content.Document{
		content.KindNotes: {
			{
				Slug: "hello-world",
				Raw: []byte(`---
title: Hello World
date: 2024-05-01
tags: [intro]
videoUrl: https://youtu.be/dQw4w9WgXcQ
videoTitle: Welcome
---
Some words here.`),
			},
			{
				Slug: "draft-note",
				Raw:  []byte("---\ntitle: Draft\ndraft: true\n---\nbody"),
			},
		},
		content.KindProjects: {
			{
				Slug: "portfolio",
				Raw:  []byte("---\ntitle: Portfolio\ndate: 2023-01-01\ntags: [web]\n---\nbody"),
			},
		},
	}}

	provider := siteconfig.NewProvider(filepath.Join(t.TempDir(), "missing.yaml"), nil)
	resolver := content.NewResolver(src, provider)
	return New(Config{Addr: ":0"}, resolver, provider)
}

func get(t *testing.T, s *Server, path string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)
	return rec
}

func TestListEndpoint(t *testing.T) {
	s := testServer(t)

	rec := get(t, s, "/api/notes")
	require.Equal(t, http.StatusOK, rec.Code)

	var items []struct {
		Slug string `json:"slug"`
		Meta struct {
			Title    string   `json:"title"`
			Tags     []string `json:"tags"`
			ReadTime string   `json:"readTime"`
		} `json:"meta"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &items))
	require.Len(t, items, 1, "drafts never appear in listings")
	assert.Equal(t, "hello-world", items[0].Slug)
	assert.Equal(t, "Hello World", items[0].Meta.Title)
	assert.Equal(t, []string{"intro"}, items[0].Meta.Tags)
	assert.Equal(t, "1 min read", items[0].Meta.ReadTime)
}

func TestListTagFilter(t *testing.T) {
	s := testServer(t)

	rec := get(t, s, "/api/projects?tag=web")
	require.Equal(t, http.StatusOK, rec.Code)
	var items []json.RawMessage
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &items))
	assert.Len(t, items, 1)

	rec = get(t, s, "/api/projects?tag=nope")
	require.Equal(t, http.StatusOK, rec.Code)
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &items))
	assert.Empty(t, items)
}

func TestItemEndpoint(t *testing.T) {
	s := testServer(t)

	rec := get(t, s, "/api/notes/hello-world")
	require.Equal(t, http.StatusOK, rec.Code)

	var view struct {
		Slug    string `json:"slug"`
		Primary struct {
			Type  string `json:"type"`
			URL   string `json:"url"`
			Title string `json:"title"`
		} `json:"primaryMedia"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &view))
	assert.Equal(t, "hello-world", view.Slug)
	assert.Equal(t, "video", view.Primary.Type)
	assert.Equal(t, "Welcome", view.Primary.Title)
}

func TestItemNotFound(t *testing.T) {
	s := testServer(t)

	assert.Equal(t, http.StatusNotFound, get(t, s, "/api/notes/does-not-exist").Code)
	assert.Equal(t, http.StatusNotFound, get(t, s, "/api/notes/draft-note").Code, "drafts are not reachable by slug")
	assert.Equal(t, http.StatusNotFound, get(t, s, "/api/gallery").Code)
}

func TestConfigEndpoint(t *testing.T) {
	s := testServer(t)

	rec := get(t, s, "/api/config")
	require.Equal(t, http.StatusOK, rec.Code)

	var cfg struct {
		Reading struct {
			WordsPerMinute int `json:"wordsPerMinute"`
		} `json:"reading"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &cfg))
	assert.Equal(t, siteconfig.Default().Reading.WordsPerMinute, cfg.Reading.WordsPerMinute)
}

func TestVideoValidationEndpoint(t *testing.T) {
	s := testServer(t)

	rec := get(t, s, "/api/media/video?url=https://youtu.be/dQw4w9WgXcQ")
	require.Equal(t, http.StatusOK, rec.Code)
	var embed struct {
		EmbedURL string `json:"embedUrl"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &embed))
	assert.Equal(t, "https://www.youtube-nocookie.com/embed/dQw4w9WgXcQ", embed.EmbedURL)

	rec = get(t, s, "/api/media/video?url=https://vimeo.com/123")
	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	var verr struct {
		Code string `json:"code"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &verr))
	assert.Equal(t, "unsupported-host", verr.Code)
}
