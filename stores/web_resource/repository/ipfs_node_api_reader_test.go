package repository

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	ipfsapi "github.com/ipfs/go-ipfs-api"
	"github.com/stretchr/testify/require"

	bCtx "github.com/estatemint/goapi/base/ctx"
)

func Test_ipfsNodeApiReaderRepo_Get(t *testing.T) {
	req := require.New(t)
	body := `{"name":"Test House","attributes":[]}`
	cid := "QmeSjSinHpPnmXmspMjwiXyN6zS4E9zccariGR3jxcaWtq/0"
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		req.Equal("/api/v0/cat", r.URL.Path)
		req.Equal(cid, r.URL.Query().Get("arg"))
		w.Write([]byte(body))
	}))
	defer srv.Close()

	r := NewIpfsNodeApiReaderRepo(ipfsapi.NewShell(srv.URL), 10*time.Second)
	b, err := r.Get(bCtx.Background(), cid)
	req.NoError(err)
	req.Equal([]byte(body), b)
}

func Test_ipfsNodeApiReaderRepo_Get_NodeError(t *testing.T) {
	req := require.New(t)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{"Message":"invalid path","Code":0,"Type":"error"}`))
	}))
	defer srv.Close()

	r := NewIpfsNodeApiReaderRepo(ipfsapi.NewShell(srv.URL), 10*time.Second)
	_, err := r.Get(bCtx.Background(), "not-a-cid")
	req.Error(err)
}
