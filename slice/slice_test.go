package slice

import (
	"reflect"
	"testing"
)

func TestMap(t *testing.T) {
	got := Map([]int{1, 2, 3}, func(i int) int { return i * 2 })
	if !reflect.DeepEqual(got, []int{2, 4, 6}) {
		t.Errorf("got %v, wanted [2 4 6]", got)
	}
}

func TestFind(t *testing.T) {
	v, ok := Find([]string{"a", "b"}, func(s string) bool { return s == "b" })
	if !ok || v != "b" {
		t.Errorf("got %q (%v), wanted \"b\"", v, ok)
	}
	_, ok = Find([]string{"a", "b"}, func(s string) bool { return s == "c" })
	if ok {
		t.Errorf("expected no match")
	}
}

func TestZipWith(t *testing.T) {
	sum := func(a, b int) int { return a + b }

	tests := []struct {
		name     string
		a, b     []int
		expected []int
	}{
		{name: "equal length", a: []int{1, 2}, b: []int{10, 20}, expected: []int{11, 22}},
		{name: "first shorter", a: []int{1}, b: []int{10, 20}, expected: []int{11}},
		{name: "second shorter", a: []int{1, 2, 3}, b: []int{10}, expected: []int{11}},
		{name: "empty", a: nil, b: []int{10}, expected: []int{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ZipWith(tt.a, tt.b, sum)
			if !reflect.DeepEqual(got, tt.expected) {
				t.Errorf("got %v, wanted %v", got, tt.expected)
			}
		})
	}
}
