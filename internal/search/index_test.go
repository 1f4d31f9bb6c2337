package search

import (
	"reflect"
	"testing"
)

// testRecord implements Fielder for testing.
type testRecord struct {
	title  string
	author string
	tags   []string
	path   string
}

func (r testRecord) SearchFields() []Field {
	fields := []Field{{Text: r.title, Title: true}}
	if r.author != "" {
		fields = append(fields, Field{Text: r.author})
	}
	for _, tag := range r.tags {
		fields = append(fields, Field{Text: tag})
	}
	if r.path != "" {
		fields = append(fields, Field{Text: r.path})
	}
	return fields
}

func testIndex() *Index[testRecord] {
	return Build([]testRecord{
		{title: "The Go Programming Language", author: "Alan Donovan", tags: []string{"programming"}, path: "Donovan/go-pl"},
		{title: "Mastering Regular Expressions", author: "Jeffrey Friedl", tags: []string{"programming", "reference"}, path: "Friedl/regex"},
		{title: "中国历史", author: "吕思勉", tags: []string{"history"}, path: "Lv/zhongguo"},
		{title: "A Pattern Language", author: "Christopher Alexander", tags: []string{"architecture"}, path: "Alexander/patterns"},
	})
}

func TestQueryEmptyReturnsAllInLoadOrder(t *testing.T) {
	ix := testIndex()

	for _, query := range []string{"", "   ", "\t"} {
		got := ix.Query(query)
		want := []int{0, 1, 2, 3}
		if !reflect.DeepEqual(got, want) {
			t.Errorf("Query(%q) = %v, want %v", query, got, want)
		}
	}
}

func TestQueryMatching(t *testing.T) {
	tests := []struct {
		name     string
		query    string
		expected []int
	}{
		{
			name:     "case-insensitive title substring",
			query:    "REGULAR",
			expected: []int{1},
		},
		{
			name:     "author field",
			query:    "friedl",
			expected: []int{1},
		},
		{
			name:     "tag narrows across records",
			query:    "programming",
			expected: []int{0, 1},
		},
		{
			name:     "terms AND across different fields",
			query:    "pattern architecture",
			expected: []int{3},
		},
		{
			name:     "conflicting terms match nothing",
			query:    "pattern friedl",
			expected: nil,
		},
		{
			name:     "cjk literal substring",
			query:    "历史",
			expected: []int{2},
		},
		{
			name:     "pinyin query matches cjk title",
			query:    "zhongguo lishi",
			expected: []int{2},
		},
		{
			name:     "pinyin substring of author",
			query:    "simian",
			expected: []int{2},
		},
	}

	ix := testIndex()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ix.Query(tt.query)
			if !reflect.DeepEqual(got, tt.expected) {
				t.Errorf("Query(%q) = %v, want %v", tt.query, got, tt.expected)
			}
		})
	}
}

func TestQueryTitleHitsRankFirst(t *testing.T) {
	ix := Build([]testRecord{
		{title: "Cooking Basics", tags: []string{"go"}, path: "misc/cooking"},
		{title: "Go in Action", tags: []string{"programming"}, path: "manning/go"},
	})

	// "go" appears in record 0 only as a tag, in record 1 in the title;
	// the title hit outranks load order.
	got := ix.Query("go")
	want := []int{1, 0}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Query(\"go\") = %v, want %v", got, want)
	}
}

func TestQueryIdempotent(t *testing.T) {
	ix := testIndex()
	first := ix.Query("programming")
	second := ix.Query("programming")
	if !reflect.DeepEqual(first, second) {
		t.Errorf("repeated query differs: %v vs %v", first, second)
	}
}

func TestQueryEmptyIndex(t *testing.T) {
	ix := Build([]testRecord{})
	if got := ix.Query(""); len(got) != 0 {
		t.Errorf("Query(\"\") on empty index = %v, want empty", got)
	}
	if got := ix.Query("anything"); got != nil {
		t.Errorf("Query on empty index = %v, want nil", got)
	}
}

func TestRecordResolution(t *testing.T) {
	ix := testIndex()
	matches := ix.Query("friedl")
	if len(matches) != 1 {
		t.Fatalf("Query(\"friedl\") = %v, want one match", matches)
	}
	if got := ix.Record(matches[0]).title; got != "Mastering Regular Expressions" {
		t.Errorf("Record().title = %q", got)
	}
}
