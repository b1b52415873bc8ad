package collection_test

import (
	"reflect"
	"testing"

	"github.com/shashiranjanraj/dukaan/pkg/collection"
)

func TestMap(t *testing.T) {
	got := collection.Map([]int{1, 2, 3}, func(n int) int { return n * 2 })
	if !reflect.DeepEqual(got, []int{2, 4, 6}) {
		t.Fatalf("got %v", got)
	}
}

func TestFilterAndReject(t *testing.T) {
	even := func(n int) bool { return n%2 == 0 }

	if got := collection.Filter([]int{1, 2, 3, 4}, even); !reflect.DeepEqual(got, []int{2, 4}) {
		t.Fatalf("Filter got %v", got)
	}
	if got := collection.Reject([]int{1, 2, 3, 4}, even); !reflect.DeepEqual(got, []int{1, 3}) {
		t.Fatalf("Reject got %v", got)
	}
}

func TestFirst(t *testing.T) {
	v, ok := collection.First([]string{"a", "bb", "ccc"}, func(s string) bool { return len(s) == 2 })
	if !ok || v != "bb" {
		t.Fatalf("got %q, %v", v, ok)
	}

	_, ok = collection.First([]string{"a"}, func(s string) bool { return len(s) == 9 })
	if ok {
		t.Fatal("expected no match")
	}
}

func TestIndexOfAndContains(t *testing.T) {
	is := func(target int) func(int) bool {
		return func(n int) bool { return n == target }
	}

	if idx := collection.IndexOf([]int{5, 6, 7}, is(6)); idx != 1 {
		t.Fatalf("got %d", idx)
	}
	if idx := collection.IndexOf([]int{5, 6, 7}, is(9)); idx != -1 {
		t.Fatalf("got %d", idx)
	}
	if !collection.Contains([]int{5, 6, 7}, is(7)) {
		t.Fatal("expected Contains true")
	}
}

func TestSum(t *testing.T) {
	type line struct {
		price float64
		qty   int
	}
	lines := []line{{10, 2}, {5, 1}}

	got := collection.Sum(lines, func(l line) float64 { return l.price * float64(l.qty) })
	if got != 25 {
		t.Fatalf("got %v", got)
	}
	if collection.Sum(nil, func(l line) float64 { return l.price }) != 0 {
		t.Fatal("empty sum should be 0")
	}
}

func TestReduce(t *testing.T) {
	got := collection.Reduce([]string{"a", "b", "c"}, "", func(carry string, s string) string {
		return carry + s
	})
	if got != "abc" {
		t.Fatalf("got %q", got)
	}
}

func TestKeyBy(t *testing.T) {
	got := collection.KeyBy([]string{"a", "bb"}, func(s string) int { return len(s) })
	if got[1] != "a" || got[2] != "bb" {
		t.Fatalf("got %v", got)
	}
}

func TestSortByDoesNotMutate(t *testing.T) {
	in := []int{3, 1, 2}
	got := collection.SortBy(in, func(a, b int) bool { return a < b })

	if !reflect.DeepEqual(got, []int{1, 2, 3}) {
		t.Fatalf("got %v", got)
	}
	if !reflect.DeepEqual(in, []int{3, 1, 2}) {
		t.Fatalf("input mutated: %v", in)
	}
}
