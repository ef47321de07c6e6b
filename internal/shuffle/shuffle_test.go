package shuffle

import (
	"sort"
	"testing"
)

func TestShuffleKeepsElements(t *testing.T) {
	s := NewSeeded(42)
	in := []int{5, 3, 3, 9, 1, 7, 2}
	out := Shuffle(s, in)
	if len(out) != len(in) {
		t.Fatalf("expected %d elements, got %d", len(in), len(out))
	}
	a := append([]int(nil), in...)
	b := append([]int(nil), out...)
	sort.Ints(a)
	sort.Ints(b)
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("multiset changed: %v vs %v", in, out)
		}
	}
}

func TestShuffleDoesNotMutateInput(t *testing.T) {
	in := []string{"a", "b", "c", "d"}
	_ = Shuffle(NewSeeded(1), in)
	if in[0] != "a" || in[1] != "b" || in[2] != "c" || in[3] != "d" {
		t.Fatalf("input mutated: %v", in)
	}
}

func TestShuffleEmptyAndSingleton(t *testing.T) {
	s := NewSeeded(7)
	if out := Shuffle(s, []int{}); len(out) != 0 {
		t.Fatalf("expected empty output, got %v", out)
	}
	out := Shuffle(s, []int{4})
	if len(out) != 1 || out[0] != 4 {
		t.Fatalf("expected singleton unchanged, got %v", out)
	}
}

func TestShuffleSeededIsReproducible(t *testing.T) {
	in := []int{1, 2, 3, 4, 5, 6, 7, 8}
	a := Shuffle(NewSeeded(99), in)
	b := Shuffle(NewSeeded(99), in)
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("same seed produced different order: %v vs %v", a, b)
		}
	}
}

func TestShuffleCoversAllPositions(t *testing.T) {
	s := NewSeeded(3)
	seen := map[int]bool{}
	for i := 0; i < 200; i++ {
		out := Shuffle(s, []int{0, 1, 2})
		seen[out[0]] = true
	}
	if len(seen) != 3 {
		t.Fatalf("expected every element to reach the first slot, saw %v", seen)
	}
}
