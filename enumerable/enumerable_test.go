// Copyright 2024 Mike Carlton
// Released under terms of the MIT License:
//   http://www.opensource.org/licenses/mit-license.php

package enumerable

import (
	"slices"
	"strconv"
	"testing"
)

func TestFilter(t *testing.T) {
	got := Filter([]int{1, 2, 3, 4, 5}, func(i int) bool { return i%2 == 1 })
	if want := []int{1, 3, 5}; !slices.Equal(got, want) {
		t.Errorf("Filter = %v, want %v", got, want)
	}

	if got := Filter([]int{}, func(int) bool { return true }); len(got) != 0 {
		t.Errorf("Filter(empty) = %v, want []", got)
	}
}

func TestMap(t *testing.T) {
	got := Map([]int{1, 20, 300}, strconv.Itoa)
	if want := []string{"1", "20", "300"}; !slices.Equal(got, want) {
		t.Errorf("Map = %v, want %v", got, want)
	}
}

func TestReduce(t *testing.T) {
	sum := Reduce([]int{1, 2, 3, 4}, 0, func(acc, i int) int { return acc + i })
	if sum != 10 {
		t.Errorf("Reduce(sum) = %d, want 10", sum)
	}

	joined := Reduce([]int{1, 2}, "x", func(acc string, i int) string { return acc + strconv.Itoa(i) })
	if joined != "x12" {
		t.Errorf("Reduce(join) = %q, want %q", joined, "x12")
	}
}

func TestAny(t *testing.T) {
	tests := []struct {
		input    []int
		expected bool
	}{
		{[]int{1, 3, 5}, false},
		{[]int{1, 4, 5}, true},
		{nil, false},
	}

	for _, test := range tests {
		if got := Any(test.input, func(i int) bool { return i%2 == 0 }); got != test.expected {
			t.Errorf("Any(%v) = %v, want %v", test.input, got, test.expected)
		}
	}
}
