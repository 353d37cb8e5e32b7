package prometheus

import (
	"sort"
	"time"

	"github.com/prometheus/common/model"
)

// Sample is one element of an instant vector, tagged with the categorical code
// that picks its color.
type Sample struct {
	Metric    model.Metric
	Code      string
	Value     float64
	Timestamp time.Time
}

// Point is one value of a Stream.
type Point struct {
	Timestamp time.Time
	Value     float64
}

// Stream is one series of a range query, tagged like Sample.
type Stream struct {
	Metric model.Metric
	Code   string
	Points []Point
}

// CodeOf returns the categorical code carried by a metric: the value of label,
// or the full metric string when label is empty or absent.
func CodeOf(metric model.Metric, label string) string {
	if label == "" {
		return metric.String()
	}
	v, ok := metric[model.LabelName(label)]
	if !ok {
		return metric.String()
	}
	return string(v)
}

// SamplesOf tags every element of vector with its code, keeping vector order.
func SamplesOf(vector model.Vector, label string) []Sample {
	out := make([]Sample, len(vector))
	for i, s := range vector {
		out[i] = Sample{
			Metric:    s.Metric,
			Code:      CodeOf(s.Metric, label),
			Value:     float64(s.Value),
			Timestamp: s.Timestamp.Time(),
		}
	}
	return out
}

// StreamsOf tags every series of matrix with its code, keeping matrix order.
func StreamsOf(matrix model.Matrix, label string) []Stream {
	out := make([]Stream, len(matrix))
	for i, ss := range matrix {
		points := make([]Point, len(ss.Values))
		for j, p := range ss.Values {
			points[j] = Point{Timestamp: p.Timestamp.Time(), Value: float64(p.Value)}
		}
		out[i] = Stream{
			Metric: ss.Metric,
			Code:   CodeOf(ss.Metric, label),
			Points: points,
		}
	}
	return out
}

// uniqueCodes drops empty and repeated values and sorts the rest.
func uniqueCodes(values model.LabelValues) []string {
	seen := make(map[string]struct{}, len(values))
	codes := make([]string, 0, len(values))
	for _, v := range values {
		code := string(v)
		if code == "" {
			continue
		}
		if _, dup := seen[code]; dup {
			continue
		}
		seen[code] = struct{}{}
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}
