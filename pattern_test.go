package router

import (
	"reflect"
	"testing"
)

func TestParsePattern(t *testing.T) {
	tests := []struct {
		path string
		want []Segment
	}{
		{"/", nil},
		{"//", nil},
		{"/foo", []Segment{{Value: "foo"}}},
		{"/foo/", []Segment{{Value: "foo"}}},
		{"//foo//bar", []Segment{{Value: "foo"}, {Value: "bar"}}},
		{"/foo/_/bar", []Segment{{Value: "foo"}, {Wild: true}, {Value: "bar"}}},
		{"/_", []Segment{{Wild: true}}},
		{"/_/_", []Segment{{Wild: true}, {Wild: true}}},
		{"/Foo/..", []Segment{{Value: "Foo"}, {Value: ".."}}},
	}

	for _, tt := range tests {
		p := ParsePattern("GET", tt.path)

		if p.Method() != "GET" {
			t.Errorf("%q: method == %q, want GET", tt.path, p.Method())
		}

		if p.Len() != len(tt.want) {
			t.Errorf("%q: %d segments, want %d", tt.path, p.Len(), len(tt.want))
			continue
		}

		var got []Segment
		for i := 0; i < p.Len(); i++ {
			got = append(got, p.Segment(i))
		}

		if !reflect.DeepEqual(got, tt.want) {
			t.Errorf("%q: segments == %v, want %v", tt.path, got, tt.want)
		}
	}
}

func TestNewPatternInvalidInput(t *testing.T) {
	recv := catchPanic(func() {
		NewPattern("", "foo")
	})
	if recv == nil {
		t.Fatal("empty method did not panic")
	}

	recv = catchPanic(func() {
		NewPattern("GET", "foo", "")
	})
	if recv == nil {
		t.Fatal("empty token did not panic")
	}
}

func TestPatternEqual(t *testing.T) {
	tests := []struct {
		a, b Pattern
		want bool
	}{
		{NewPattern("GET"), NewPattern("GET"), true},
		{NewPattern("GET", "foo", Wildcard), NewPattern("GET", "foo", Wildcard), true},
		{NewPattern("GET", "foo"), ParsePattern("GET", "//foo/"), true},
		{NewPattern("GET", "foo"), NewPattern("POST", "foo"), false},
		{NewPattern("GET", "foo"), NewPattern("GET", "foo", "bar"), false},
		{NewPattern("GET", "foo", Wildcard), NewPattern("GET", "foo", "bar"), false},
		{NewPattern("GET", "foo"), NewPattern("GET", "Foo"), false},
	}

	for i, tt := range tests {
		if got := tt.a.Equal(tt.b); got != tt.want {
			t.Errorf("%d: Equal(%s %s, %s %s) == %v, want %v",
				i, tt.a.Method(), tt.a, tt.b.Method(), tt.b, got, tt.want)
		}
	}
}

func TestPatternString(t *testing.T) {
	tests := []struct {
		p    Pattern
		want string
	}{
		{NewPattern("GET"), "/"},
		{NewPattern("GET", "foo"), "/foo"},
		{NewPattern("GET", "foo", Wildcard, "bar"), "/foo/_/bar"},
		{ParsePattern("GET", "/users/_/"), "/users/_"},
	}

	for _, tt := range tests {
		if got := tt.p.String(); got != tt.want {
			t.Errorf("String() == %q, want %q", got, tt.want)
		}
	}
}
