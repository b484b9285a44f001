package service

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHTTPFetcher_Fetch(t *testing.T) {
	ctx := context.Background()

	t.Run("returns body on 200", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte("edited bytes"))
		}))
		defer srv.Close()

		data, err := NewHTTPFetcher(srv.Client()).Fetch(ctx, srv.URL+"/tmp/edited.docx")
		require.NoError(t, err)
		assert.Equal(t, []byte("edited bytes"), data)
	})

	t.Run("non-200 is an error", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
		}))
		defer srv.Close()

		_, err := NewHTTPFetcher(srv.Client()).Fetch(ctx, srv.URL)
		assert.Error(t, err)
	})

	t.Run("network error surfaces", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
		srv.Close() // refuse connections

		_, err := NewHTTPFetcher(nil).Fetch(ctx, srv.URL)
		assert.Error(t, err)
	})
}
