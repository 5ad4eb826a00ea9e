package upstream

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
)

// recorder is a fake upstream that remembers the last request it served.
type recorder struct {
	server *httptest.Server
	path   string
	query  url.Values
	agent  string
}

func newRecorder(t *testing.T, status int, contentType string, body []byte) *recorder {
	rec := &recorder{}
	rec.server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rec.path = r.URL.Path
		rec.query = r.URL.Query()
		rec.agent = r.Header.Get("User-Agent")

		w.Header().Set("Content-Type", contentType)
		w.WriteHeader(status)
		_, _ = w.Write(body)
	}))
	t.Cleanup(rec.server.Close)

	return rec
}

func (rec *recorder) URL() string {
	return rec.server.URL
}
