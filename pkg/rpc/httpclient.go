package rpc

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sync/atomic"
	"time"

	"github.com/puzpuzpuz/xsync/v4"

	"github.com/vknowable/namada-ping-middleware/pkg/utils"
)

// HTTPClient is a wrapper around an http.Client that implements a circuit-breaker and token-bucket.
type HTTPClient struct {
	endpoints []string
	client    *http.Client

	// token-bucket
	tokens      int64
	maxTokens   int64
	refillEvery time.Duration
	lastRefill  atomic.Value // time.Time

	// circuit-breaker, keyed by endpoint
	failures *xsync.Map[string, int]
	opened   *xsync.Map[string, time.Time]

	breakerThreshold int
	breakerCooldown  time.Duration
}

// Opts is the set of options for a new HTTPClient.
type Opts struct {
	Endpoints       []string
	Timeout         time.Duration
	RPS             int
	Burst           int
	BreakerFailures int
	BreakerCooldown time.Duration
	HTTPClient      *http.Client
}

// StatusError is returned when an endpoint answers with a non-2xx status.
type StatusError struct {
	Endpoint string
	Code     int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("http %d from %s", e.Code, e.Endpoint)
}

// IsNotFound reports whether err carries a 404 from the node.
func IsNotFound(err error) bool {
	var se *StatusError
	return errors.As(err, &se) && se.Code == http.StatusNotFound
}

// NewHTTPWithOpts creates a new HTTPClient with the given options.
func NewHTTPWithOpts(o Opts) *HTTPClient {
	if o.RPS <= 0 {
		o.RPS = 20
	}
	if o.Burst <= 0 {
		o.Burst = 40
	}
	if o.Timeout <= 0 {
		o.Timeout = 15 * time.Second
	}
	if o.BreakerFailures <= 0 {
		o.BreakerFailures = 3
	}
	if o.BreakerCooldown <= 0 {
		o.BreakerCooldown = 5 * time.Second
	}

	client := o.HTTPClient
	if client == nil {
		client = &http.Client{Timeout: o.Timeout}
	} else if client.Timeout == 0 {
		client.Timeout = o.Timeout
	}

	c := &HTTPClient{
		endpoints:        utils.Dedup(o.Endpoints),
		client:           client,
		maxTokens:        int64(o.Burst),
		refillEvery:      time.Second / time.Duration(o.RPS),
		failures:         xsync.NewMap[string, int](),
		opened:           xsync.NewMap[string, time.Time](),
		breakerThreshold: o.BreakerFailures,
		breakerCooldown:  o.BreakerCooldown,
	}
	c.tokens = c.maxTokens
	c.lastRefill.Store(time.Now())
	return c
}

// Endpoints returns the deduplicated endpoint list.
func (c *HTTPClient) Endpoints() []string {
	return append([]string(nil), c.endpoints...)
}

// refill refills the token-bucket with new tokens if necessary.
func (c *HTTPClient) refill() {
	last := c.lastRefill.Load().(time.Time)
	now := time.Now()
	if now.Sub(last) >= c.refillEvery {
		if atomic.LoadInt64(&c.tokens) < c.maxTokens {
			atomic.AddInt64(&c.tokens, 1)
		}
		c.lastRefill.Store(now)
	}
}

// acquire takes a token from the bucket, blocking until one is available or ctx is done.
func (c *HTTPClient) acquire(ctx context.Context) error {
	for {
		c.refill()
		if atomic.AddInt64(&c.tokens, -1) >= 0 {
			return nil
		}
		atomic.AddInt64(&c.tokens, 1)

		timer := time.NewTimer(c.refillEvery / 2)
		select {
		case <-ctx.Done():
			timer.Stop()
			return ctx.Err()
		case <-timer.C:
		}
	}
}

// isOpen returns true while the endpoint's breaker is OPEN.
func (c *HTTPClient) isOpen(ep string) bool {
	until, ok := c.opened.Load(ep)
	if !ok {
		return false
	}
	if time.Now().After(until) {
		c.opened.Delete(ep)
		c.failures.Store(ep, 0)
		return false
	}
	return true
}

// noteFailure marks an endpoint as failed and opens the circuit-breaker if the failure count exceeds the threshold.
func (c *HTTPClient) noteFailure(ep string) {
	n, _ := c.failures.Compute(ep, func(old int, loaded bool) (int, xsync.ComputeOp) {
		return old + 1, xsync.UpdateOp
	})
	if n >= c.breakerThreshold {
		c.opened.Store(ep, time.Now().Add(c.breakerCooldown))
	}
}

func (c *HTTPClient) noteSuccess(ep string) {
	c.failures.Delete(ep)
}

// doJSON sends a request to the first healthy endpoint and decodes the JSON body into out.
// Transport errors and 5xx responses mark the endpoint as failed and move on to the next one.
// A 404 is a definitive answer and is returned immediately as a *StatusError.
func (c *HTTPClient) doJSON(ctx context.Context, method, path string, query url.Values, payload any, out any) error {
	if len(c.endpoints) == 0 {
		return fmt.Errorf("no endpoints configured")
	}

	var body []byte
	if payload != nil {
		b, err := json.Marshal(payload)
		if err != nil {
			return err
		}
		body = b
	}

	target := path
	if len(query) > 0 {
		target = path + "?" + query.Encode()
	}

	var lastErr error
	for _, ep := range c.endpoints {
		// Skip endpoints whose breaker is OPEN.
		if c.isOpen(ep) {
			lastErr = fmt.Errorf("circuit open for %s", ep)
			continue
		}

		if err := c.acquire(ctx); err != nil {
			return err
		}

		req, reqErr := http.NewRequestWithContext(ctx, method, ep+target, bytes.NewReader(body))
		if reqErr != nil {
			return reqErr
		}
		req.Header.Set("Accept", "application/json")
		if payload != nil {
			req.Header.Set("Content-Type", "application/json")
		}

		resp, err := c.client.Do(req)
		if err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			lastErr = err
			c.noteFailure(ep)
			continue
		}

		if resp.StatusCode >= 500 {
			lastErr = &StatusError{Endpoint: ep, Code: resp.StatusCode}
			c.noteFailure(ep)
			_ = drainBody(resp.Body)
			continue
		}
		if resp.StatusCode == http.StatusNotFound {
			_ = drainBody(resp.Body)
			c.noteSuccess(ep)
			return &StatusError{Endpoint: ep, Code: resp.StatusCode}
		}
		if resp.StatusCode >= 300 {
			lastErr = &StatusError{Endpoint: ep, Code: resp.StatusCode}
			_ = drainBody(resp.Body)
			continue
		}

		if out != nil {
			raw, readErr := io.ReadAll(resp.Body)
			_ = drainBody(resp.Body)
			if readErr != nil {
				lastErr = readErr
				continue
			}
			if err := json.Unmarshal(raw, out); err != nil {
				lastErr = fmt.Errorf("decode %s: %w", path, err)
				continue
			}
			c.noteSuccess(ep)
			return nil
		}

		c.noteSuccess(ep)
		return drainBody(resp.Body)
	}

	return lastErr
}

// get is doJSON for GET requests without a body.
func (c *HTTPClient) get(ctx context.Context, path string, query url.Values, out any) error {
	return c.doJSON(ctx, http.MethodGet, path, query, nil, out)
}

// drainBody discards what is left of a response body and closes it, so the
// transport can reuse the connection.
func drainBody(rc io.ReadCloser) error {
	if rc == nil {
		return nil
	}
	_, _ = io.Copy(io.Discard, rc)
	return rc.Close()
}
