package cache

import (
	"bytes"
	"fmt"
	"io"
	"net/http"
	"time"

	gocache "github.com/patrickmn/go-cache"
)

// Transport is an http.RoundTripper that serves repeated requests from an
// in-memory cache for the configured freshness window. Upstream open-data
// sources change at most daily, so a request repeated inside the window
// yields a byte-identical response body without touching the network.
//
// Only successful (2xx) responses are cached. POST requests are cached too:
// the Land Registry SPARQL endpoint is a read-only query interface where the
// form body is part of the identity of the request.
type Transport struct {
	inner http.RoundTripper
	cache *gocache.Cache
}

type cachedResponse struct {
	statusCode  int
	contentType string
	body        []byte
}

// NewTransport wraps inner with a freshness-window cache. A nil inner falls
// back to http.DefaultTransport.
func NewTransport(inner http.RoundTripper, ttl time.Duration) *Transport {
	if inner == nil {
		inner = http.DefaultTransport
	}
	return &Transport{
		inner: inner,
		cache: gocache.New(ttl, 10*time.Minute),
	}
}

func (t *Transport) RoundTrip(req *http.Request) (*http.Response, error) {
	key, cacheable := t.cacheKey(req)
	if cacheable {
		if v, found := t.cache.Get(key); found {
			return t.respond(req, v.(cachedResponse)), nil
		}
	}

	resp, err := t.inner.RoundTrip(req)
	if err != nil {
		return nil, err
	}

	if !cacheable || resp.StatusCode < 200 || resp.StatusCode > 299 {
		return resp, nil
	}

	body, err := io.ReadAll(resp.Body)
	_ = resp.Body.Close()
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	entry := cachedResponse{
		statusCode:  resp.StatusCode,
		contentType: resp.Header.Get("Content-Type"),
		body:        body,
	}
	t.cache.SetDefault(key, entry)

	resp.Body = io.NopCloser(bytes.NewReader(body))
	return resp, nil
}

// cacheKey builds the identity of a request. For POST the body participates
// in the key, so the request must carry GetBody (true for requests built
// from readers by http.NewRequest).
func (t *Transport) cacheKey(req *http.Request) (string, bool) {
	switch req.Method {
	case http.MethodGet:
		return "GET " + req.URL.String(), true
	case http.MethodPost:
		if req.GetBody == nil {
			return "", false
		}
		rc, err := req.GetBody()
		if err != nil {
			return "", false
		}
		body, err := io.ReadAll(rc)
		_ = rc.Close()
		if err != nil {
			return "", false
		}
		return "POST " + req.URL.String() + " " + string(body), true
	default:
		return "", false
	}
}

func (t *Transport) respond(req *http.Request, entry cachedResponse) *http.Response {
	header := make(http.Header)
	if entry.contentType != "" {
		header.Set("Content-Type", entry.contentType)
	}
	return &http.Response{
		StatusCode:    entry.statusCode,
		Status:        http.StatusText(entry.statusCode),
		Header:        header,
		Body:          io.NopCloser(bytes.NewReader(entry.body)),
		ContentLength: int64(len(entry.body)),
		Request:       req,
		Proto:         "HTTP/1.1",
		ProtoMajor:    1,
		ProtoMinor:    1,
	}
}
