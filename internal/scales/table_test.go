package scales

import (
	"errors"
	"sort"
	"testing"

	"github.com/akasprzok/ragbadge/internal/palette"
)

func TestDefaultTableKeysAreUnique(t *testing.T) {
	table, err := NewTable(DefaultBuckets()...)
	if err != nil {
		t.Fatalf("NewTable(DefaultBuckets()) returned error: %v", err)
	}

	sum := 0
	for _, b := range DefaultBuckets() {
		sum += len(b.Keys)
	}
	if table.Len() != sum {
		t.Errorf("flattened table has %d entries, buckets declare %d keys", table.Len(), sum)
	}
	if table.KeyCount() != sum {
		t.Errorf("KeyCount() = %d, want %d", table.KeyCount(), sum)
	}
}

func TestNewTableRejectsDuplicates(t *testing.T) {
	tests := []struct {
		name    string
		buckets []CategoryBucket
	}{
		{
			name: "across buckets",
			buckets: []CategoryBucket{
				{Color: palette.Red, Keys: []string{"STOP"}},
				{Color: palette.Green, Keys: []string{"GO", "STOP"}},
			},
		},
		{
			name: "differing only by case",
			buckets: []CategoryBucket{
				{Color: palette.Red, Keys: []string{"stop"}},
				{Color: palette.Green, Keys: []string{"Stop"}},
			},
		},
		{
			name: "within one bucket",
			buckets: []CategoryBucket{
				{Color: palette.Red, Keys: []string{"STOP", "stop"}},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewTable(tt.buckets...)
			if !errors.Is(err, ErrDuplicateKey) {
				t.Errorf("NewTable() error = %v, want ErrDuplicateKey", err)
			}
		})
	}
}

func TestTableLookupNormalizes(t *testing.T) {
	table, err := NewTable(CategoryBucket{Color: palette.Blue, Keys: []string{"mixed_Case"}})
	if err != nil {
		t.Fatalf("NewTable() returned error: %v", err)
	}
	for _, k := range []string{"mixed_case", "MIXED_CASE", "Mixed_Case"} {
		if c, ok := table.Lookup(k); !ok || c != palette.Blue {
			t.Errorf("Lookup(%q) = %s, %v; want %s, true", k, c, ok, palette.Blue)
		}
	}
	if _, ok := table.Lookup("other"); ok {
		t.Error("Lookup(other) should miss")
	}
}

func TestTableEntriesSorted(t *testing.T) {
	table, err := NewTable(DefaultBuckets()...)
	if err != nil {
		t.Fatalf("NewTable() returned error: %v", err)
	}
	entries := table.Entries()
	if len(entries) != table.Len() {
		t.Fatalf("Entries() returned %d, want %d", len(entries), table.Len())
	}
	if !sort.SliceIsSorted(entries, func(i, j int) bool { return entries[i].Key < entries[j].Key }) {
		t.Error("Entries() is not sorted by key")
	}
}

func TestEmptyTable(t *testing.T) {
	table, err := NewTable()
	if err != nil {
		t.Fatalf("NewTable() returned error: %v", err)
	}
	if table.Len() != 0 || len(table.Entries()) != 0 {
		t.Error("empty table should have no entries")
	}
}
