package service

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/kongx-dev/retailstar-sol-sub001/internal/appraisal"
	"github.com/kongx-dev/retailstar-sol-sub001/internal/logger"
	"golang.org/x/sync/singleflight"
)

var (
	ErrDomainUnregistered = errors.New("domain is not registered")
	ErrSNSUnavailable     = errors.New("sns lookup unavailable")
)

// SNSClient resolves .sol names through an SNS SDK proxy. Concurrent lookups
// of the same name share one upstream request.
type SNSClient struct {
	client  *resty.Client
	baseURL string
	timeout time.Duration
	group   singleflight.Group
}

// SNSConfig holds configuration for the SNS client.
type SNSConfig struct {
	BaseURL string
	Timeout time.Duration
}

// NewSNSClient creates a new SNS client.
func NewSNSClient(cfg *SNSConfig) *SNSClient {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	client := resty.New()
	client.SetHeader("Accept", "application/json")
	client.SetTimeout(timeout)

	return &SNSClient{
		client:  client,
		baseURL: strings.TrimSuffix(cfg.BaseURL, "/"),
		timeout: timeout,
	}
}

type snsResponse struct {
	S      string `json:"s"`
	Result string `json:"result"`
}

// OwnerLookup is the result of an owner resolution.
type OwnerLookup struct {
	Name   string `json:"name"`
	Domain string `json:"domain"`
	Owner  string `json:"owner"`
}

// ResolveOwner returns the owner public key of name. The name is normalized
// first; an unregistered domain yields ErrDomainUnregistered.
func (c *SNSClient) ResolveOwner(ctx context.Context, name string) (*OwnerLookup, error) {
	normalized := appraisal.Normalize(name)
	if normalized == "" {
		return nil, &appraisal.InvalidDomainNameError{Input: name}
	}

	// The shared call outlives any single caller; each caller still stops
	// waiting when its own context is done.
	ch := c.group.DoChan(normalized, func() (interface{}, error) {
		callCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), c.timeout)
		defer cancel()
		return c.resolve(callCtx, normalized)
	})

	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%w: %w", ErrSNSUnavailable, ctx.Err())
	case res := <-ch:
		if res.Err != nil {
			return nil, res.Err
		}
		owner := *res.Val.(*OwnerLookup)
		logger.CtxDebug(ctx, "Resolved owner of %s (shared=%t)", owner.Domain, res.Shared)
		return &owner, nil
	}
}

func (c *SNSClient) resolve(ctx context.Context, normalized string) (*OwnerLookup, error) {
	var resp snsResponse
	httpResp, err := c.client.R().
		SetContext(ctx).
		SetResult(&resp).
		ForceContentType("application/json").
		Get(c.baseURL + "/resolve/" + url.PathEscape(normalized))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSNSUnavailable, err)
	}

	switch {
	case httpResp.StatusCode() == 404:
		return nil, ErrDomainUnregistered
	case httpResp.StatusCode() >= 500:
		return nil, fmt.Errorf("%w: HTTP %d", ErrSNSUnavailable, httpResp.StatusCode())
	case httpResp.StatusCode() < 200 || httpResp.StatusCode() >= 300:
		return nil, fmt.Errorf("sns proxy returned HTTP %d: %s", httpResp.StatusCode(), string(httpResp.Body()))
	}

	if resp.S != "ok" || resp.Result == "" {
		return nil, ErrDomainUnregistered
	}

	return &OwnerLookup{
		Name:   normalized,
		Domain: normalized + appraisal.DomainSuffix,
		Owner:  resp.Result,
	}, nil
}
