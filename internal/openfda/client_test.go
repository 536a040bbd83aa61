package openfda

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookupQueryShape(t *testing.T) {
	var gotSearch, gotLimit string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotSearch = r.URL.Query().Get("search")
		gotLimit = r.URL.Query().Get("limit")
		w.Write([]byte(`{"results":[{"purpose":["pain reliever"]}]}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, server.Client())
	_, found := client.Lookup(context.Background(), "Advil")

	require.True(t, found)
	assert.Equal(t, `openfda.brand_name:"Advil"`, gotSearch)
	assert.Equal(t, "1", gotLimit)
}

func TestLookupSuccess(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"results":[{
			"purpose":["pain reliever"],
			"indications_and_usage":["temporarily relieves minor aches"],
			"warnings":["do not exceed the recommended dose"]
		}]}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, server.Client())
	record, found := client.Lookup(context.Background(), "Advil")

	require.True(t, found)
	require.NotNil(t, record)
	assert.Equal(t, SourceLabel, record.Source)
	assert.Equal(t, "pain reliever", record.Purpose)
	assert.Equal(t, "temporarily relieves minor aches", record.Indications)
	assert.Equal(t, "do not exceed the recommended dose", record.Warnings)
}

func TestLookupMissingFieldsDefaultToNotListed(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"results":[{"purpose":["pain reliever"]}]}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, server.Client())
	record, found := client.Lookup(context.Background(), "Advil")

	require.True(t, found)
	assert.Equal(t, "pain reliever", record.Purpose)
	assert.Equal(t, "Not Listed", record.Indications)
	assert.Equal(t, "Not Listed", record.Warnings)
}

func TestLookupTruncatesWarnings(t *testing.T) {
	long := strings.Repeat("w", 5000)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"results":[{"warnings":["` + long + `"]}]}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, server.Client())
	record, found := client.Lookup(context.Background(), "Advil")

	require.True(t, found)
	assert.Len(t, record.Warnings, 1000)
	assert.Equal(t, strings.Repeat("w", 1000), record.Warnings)
}

func TestLookupTruncatesWarningsOnRuneBoundary(t *testing.T) {
	long := strings.Repeat("é", 1500)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"results":[{"warnings":["` + long + `"]}]}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, server.Client())
	record, found := client.Lookup(context.Background(), "Advil")

	require.True(t, found)
	assert.True(t, utf8.ValidString(record.Warnings), "truncation must not split a rune")
	assert.Equal(t, 1000, utf8.RuneCountInString(record.Warnings))
	assert.Equal(t, strings.Repeat("é", 1000), record.Warnings)
}

func TestLookupFailuresCollapseToNotFound(t *testing.T) {
	tests := []struct {
		name    string
		handler http.HandlerFunc
	}{
		{
			name: "API error field",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(`{"error":{"code":"NOT_FOUND","message":"No matches found!"}}`))
			},
		},
		{
			name: "empty result set",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(`{"results":[]}`))
			},
		},
		{
			name: "malformed JSON",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(`<html>not json</html>`))
			},
		},
		{
			name: "server error status",
			handler: func(w http.ResponseWriter, r *http.Request) {
				http.Error(w, "boom", http.StatusInternalServerError)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(tt.handler)
			defer server.Close()

			client := NewClient(server.URL, server.Client())
			record, found := client.Lookup(context.Background(), "Dolo 650")

			assert.False(t, found)
			assert.Nil(t, record)
		})
	}
}

func TestLookupTransportFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close() // connection refused from here on

	client := NewClient(server.URL, nil)
	record, found := client.Lookup(context.Background(), "Advil")

	assert.False(t, found)
	assert.Nil(t, record)
}
