package repository

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	bCtx "github.com/estatemint/goapi/base/ctx"
)

func Test_httpReaderRepo_Get(t *testing.T) {
	req := require.New(t)
	body := `{"name":"Test House","attributes":[]}`
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(body))
	}))
	defer srv.Close()

	r := NewHttpReaderRepo(http.Client{}, 10*time.Second, nil)
	b, err := r.Get(bCtx.Background(), srv.URL)
	req.NoError(err)
	req.Equal([]byte(body), b)
}

func Test_httpReaderRepo_Get_NotOk(t *testing.T) {
	req := require.New(t)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer srv.Close()

	r := NewHttpReaderRepo(http.Client{}, 10*time.Second, nil)
	_, err := r.Get(bCtx.Background(), srv.URL)
	req.Error(err)
}
