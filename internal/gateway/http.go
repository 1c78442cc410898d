package gateway

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	"profilescreen/internal/jsonutil"
)

// DefaultFetchLimit is the number of products requested per fetch.
const DefaultFetchLimit = 2

const (
	errorBodyBytes  = 4 << 10
	errorSnippetLen = 200
)

// HTTPGateway fetches a user's products from a JSON HTTP endpoint:
// GET {BaseURL}/users/{id}/products?limit={Limit}
type HTTPGateway struct {
	BaseURL string
	Limit   int
	Client  *http.Client
	Logger  *zap.Logger
}

var _ Gateway = (*HTTPGateway)(nil)

// NewHTTPGateway creates a gateway for baseURL with a client timeout.
func NewHTTPGateway(baseURL string, timeout time.Duration, logger *zap.Logger) *HTTPGateway {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &HTTPGateway{
		BaseURL: strings.TrimSuffix(baseURL, "/"),
		Limit:   DefaultFetchLimit,
		Client:  &http.Client{Timeout: timeout},
		Logger:  logger,
	}
}

// Fetch implements Gateway. The request runs on its own goroutine.
func (g *HTTPGateway) Fetch(ctx context.Context, userID int64, done Completion) {
	done = Once(done)
	if err := ValidateUserID(userID); err != nil {
		done(Failure(err))
		return
	}
	go func() {
		resp, err := g.get(ctx, userID)
		if err != nil {
			g.logger().Debug("fetch failed", zap.Int64("user_id", userID), zap.Error(err))
			done(Failure(err))
			return
		}
		done(Success(resp))
	}()
}

func (g *HTTPGateway) get(ctx context.Context, userID int64) (*Response, error) {
	u, err := g.endpoint(userID)
	if err != nil {
		return nil, err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	client := g.Client
	if client == nil {
		client = http.DefaultClient
	}
	res, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("get %s: %w", u, err)
	}
	defer res.Body.Close()

	if res.StatusCode < 200 || res.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(res.Body, errorBodyBytes))
		return nil, fmt.Errorf("get %s: unexpected status %s: %s", u, res.Status, jsonutil.Snippet(body, errorSnippetLen))
	}
	var out Response
	if err := jsonutil.DecodeBody(res.Body, &out, "decode products"); err != nil {
		return nil, err
	}
	return &out, nil
}

func (g *HTTPGateway) endpoint(userID int64) (string, error) {
	base, err := url.Parse(g.BaseURL)
	if err != nil {
		return "", fmt.Errorf("parse base url %q: %w", g.BaseURL, err)
	}
	limit := g.Limit
	if limit <= 0 {
		limit = DefaultFetchLimit
	}
	u := base.JoinPath("users", strconv.FormatInt(userID, 10), "products")
	q := u.Query()
	q.Set("limit", strconv.Itoa(limit))
	u.RawQuery = q.Encode()
	return u.String(), nil
}

func (g *HTTPGateway) logger() *zap.Logger {
	if g.Logger == nil {
		return zap.NewNop()
	}
	return g.Logger
}
