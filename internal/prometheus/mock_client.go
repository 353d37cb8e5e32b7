package prometheus

import (
	"time"

	v1 "github.com/prometheus/client_golang/api/prometheus/v1"
)

// MockClient is a Client whose methods delegate to the matching func field.
// A nil field returns no data and no error.
type MockClient struct {
	QueryCodesFunc      func(query, label string, timeout time.Duration) ([]Sample, v1.Warnings, error)
	QueryRangeCodesFunc func(query, label string, r v1.Range, timeout time.Duration) ([]Stream, v1.Warnings, error)
	CodesFunc           func(label string, start, end time.Time, timeout time.Duration) ([]string, v1.Warnings, error)
}

func (m *MockClient) QueryCodes(query, label string, timeout time.Duration) ([]Sample, v1.Warnings, error) {
	if m.QueryCodesFunc == nil {
		return nil, nil, nil
	}
	return m.QueryCodesFunc(query, label, timeout)
}

func (m *MockClient) QueryRangeCodes(query, label string, r v1.Range, timeout time.Duration) ([]Stream, v1.Warnings, error) {
	if m.QueryRangeCodesFunc == nil {
		return nil, nil, nil
	}
	return m.QueryRangeCodesFunc(query, label, r, timeout)
}

func (m *MockClient) Codes(label string, start, end time.Time, timeout time.Duration) ([]string, v1.Warnings, error) {
	if m.CodesFunc == nil {
		return nil, nil, nil
	}
	return m.CodesFunc(label, start, end, timeout)
}
