package gateway

import (
	"context"
	"fmt"
	"os"
	"sync/atomic"
	"time"

	"gopkg.in/yaml.v3"
)

// FixtureGateway answers fetches from a canned Response. It is what the demo
// binary runs against when no backend URL is configured.
type FixtureGateway struct {
	Response *Response
	// Latency delays each completion; zero completes as soon as the
	// goroutine runs.
	Latency time.Duration
	// Err, when set, makes every fetch fail with it.
	Err error

	calls atomic.Int64
}

var _ Gateway = (*FixtureGateway)(nil)

// LoadFixture reads a YAML fixture file into a FixtureGateway.
func LoadFixture(path string) (*FixtureGateway, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read fixture: %w", err)
	}
	return ParseFixture(data)
}

// ParseFixture decodes YAML fixture data.
//
//	productName: Running shoes
//	identity: {name: Ada, surname: Lovelace}
//	component: {title: Free shipping, enabled: true}
//	products:
//	  - id: 1
//	  - name: unresolved
func ParseFixture(data []byte) (*FixtureGateway, error) {
	var resp Response
	if err := yaml.Unmarshal(data, &resp); err != nil {
		return nil, fmt.Errorf("parse fixture: %w", err)
	}
	return &FixtureGateway{Response: &resp}, nil
}

// Calls returns how many fetches reached the I/O stage.
func (g *FixtureGateway) Calls() int64 {
	return g.calls.Load()
}

// Fetch implements Gateway.
func (g *FixtureGateway) Fetch(ctx context.Context, userID int64, done Completion) {
	done = Once(done)
	if err := ValidateUserID(userID); err != nil {
		done(Failure(err))
		return
	}
	g.calls.Add(1)
	go func() {
		if g.Latency > 0 {
			timer := time.NewTimer(g.Latency)
			defer timer.Stop()
			select {
			case <-ctx.Done():
				done(Failure(ctx.Err()))
				return
			case <-timer.C:
			}
		}
		if err := ctx.Err(); err != nil {
			done(Failure(err))
			return
		}
		if g.Err != nil {
			done(Failure(g.Err))
			return
		}
		done(Success(g.Response))
	}()
}
