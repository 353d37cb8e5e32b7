// Package prometheus fetches categorical codes from a Prometheus server. Every
// result comes back already tagged with the code that picks its color.
package prometheus

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/prometheus/client_golang/api"
	v1 "github.com/prometheus/client_golang/api/prometheus/v1"
	"github.com/prometheus/common/model"
	"github.com/prometheus/prometheus/promql/parser"
)

var (
	ErrNoURL      = errors.New("no prometheus URL given")
	ErrResultType = errors.New("unexpected result type")
)

// Client reads codes from Prometheus. The code of a series is the value of the
// requested label (see CodeOf).
type Client interface {
	// QueryCodes runs an instant query that must return a vector.
	QueryCodes(query, label string, timeout time.Duration) ([]Sample, v1.Warnings, error)
	// QueryRangeCodes runs a range query that must return a matrix.
	QueryRangeCodes(query, label string, r v1.Range, timeout time.Duration) ([]Stream, v1.Warnings, error)
	// Codes lists the distinct non-empty values label took between start and end.
	Codes(label string, start, end time.Time, timeout time.Duration) ([]string, v1.Warnings, error)
}

type codeClient struct {
	api v1.API
}

func NewClient(url string) (Client, error) {
	if url == "" {
		return nil, ErrNoURL
	}
	c, err := api.NewClient(api.Config{Address: url})
	if err != nil {
		return nil, fmt.Errorf("creating prometheus client for %s: %w", url, err)
	}
	return &codeClient{api: v1.NewAPI(c)}, nil
}

func (c *codeClient) QueryCodes(query, label string, timeout time.Duration) ([]Sample, v1.Warnings, error) {
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	value, warnings, err := c.api.Query(ctx, query, time.Now(), v1.WithTimeout(timeout))
	if err != nil {
		return nil, warnings, err
	}
	vector, ok := value.(model.Vector)
	if !ok {
		return nil, warnings, fmt.Errorf("%w: %s, want %s", ErrResultType, typeOf(value), model.ValVector)
	}
	return SamplesOf(vector, label), warnings, nil
}

func (c *codeClient) QueryRangeCodes(query, label string, r v1.Range, timeout time.Duration) ([]Stream, v1.Warnings, error) {
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	value, warnings, err := c.api.QueryRange(ctx, query, r, v1.WithTimeout(timeout))
	if err != nil {
		return nil, warnings, err
	}
	matrix, ok := value.(model.Matrix)
	if !ok {
		return nil, warnings, fmt.Errorf("%w: %s, want %s", ErrResultType, typeOf(value), model.ValMatrix)
	}
	return StreamsOf(matrix, label), warnings, nil
}

func (c *codeClient) Codes(label string, start, end time.Time, timeout time.Duration) ([]string, v1.Warnings, error) {
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	values, warnings, err := c.api.LabelValues(ctx, label, nil, start, end, v1.WithTimeout(timeout))
	if err != nil {
		return nil, warnings, err
	}
	return uniqueCodes(values), warnings, nil
}

func typeOf(v model.Value) model.ValueType {
	if v == nil {
		return model.ValNone
	}
	return v.Type()
}

// FormatQuery pretty-prints PromQL. Unparseable input is returned unchanged.
func FormatQuery(query string) string {
	expr, err := parser.ParseExpr(query)
	if err != nil {
		return query
	}
	return expr.Pretty(0)
}

// ValidateQuery reports PromQL syntax errors before a request is sent.
func ValidateQuery(query string) error {
	if _, err := parser.ParseExpr(query); err != nil {
		return fmt.Errorf("invalid query: %w", err)
	}
	return nil
}
