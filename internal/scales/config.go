package scales

import (
	"fmt"
	"io"
	"os"

	"github.com/akasprzok/ragbadge/internal/palette"
	"gopkg.in/yaml.v2"
)

type bucketFile struct {
	Buckets []struct {
		Color string   `yaml:"color"`
		Keys  []string `yaml:"keys"`
	} `yaml:"buckets"`
}

// LoadBuckets reads extra buckets from YAML:
//
//	buckets:
//	  - color: "#8e44ad"
//	    keys: [PURPLE, VIOLET]
func LoadBuckets(r io.Reader) ([]CategoryBucket, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading buckets: %w", err)
	}
	var f bucketFile
	if err := yaml.UnmarshalStrict(data, &f); err != nil {
		return nil, fmt.Errorf("decoding buckets: %w", err)
	}
	out := make([]CategoryBucket, 0, len(f.Buckets))
	for i, b := range f.Buckets {
		c, err := palette.ParseHex(b.Color)
		if err != nil {
			return nil, fmt.Errorf("bucket %d: %w", i, err)
		}
		if len(b.Keys) == 0 {
			return nil, fmt.Errorf("bucket %d (%s): no keys", i, b.Color)
		}
		out = append(out, CategoryBucket{Color: c, Keys: b.Keys})
	}
	return out, nil
}

// NewResolverWithFile builds a resolver from the default buckets plus the
// buckets in path. An empty path yields the default buckets only.
func NewResolverWithFile(path string) (*Resolver, error) {
	buckets := DefaultBuckets()
	if path != "" {
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("opening buckets file: %w", err)
		}
		defer f.Close()
		extra, err := LoadBuckets(f)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
		buckets = append(buckets, extra...)
	}
	t, err := NewTable(buckets...)
	if err != nil {
		return nil, err
	}
	return NewResolver(t, NewFallback(nil)), nil
}
