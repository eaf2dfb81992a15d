package ordtree

import (
	"math/rand"
	"testing"
)

const (
	testN     = 4000
	testRange = 8000
)

func depth[T any](n *node[T], d int) (count, sum int) {
	if n == nil {
		return 0, 0
	}
	if n.left == nil && n.right == nil {
		return 1, d
	}
	lc, ls := depth(n.left, d+1)
	rc, rs := depth(n.right, d+1)
	return lc + rc, ls + rs
}

func (t *BST[T]) averageDepth() float32 {
	c, s := depth[T](t.root, 1)
	if c == 0 {
		return 0
	}
	return float32(s) / float32(c)
}

func TestBST_InsertSearch(t *testing.T) {
	rg := rand.New(rand.NewSource(0))
	tree := NewBST[int](OrderedCompare[int]())
	content := make(map[int]struct{})
	for i := 0; i < testN; i++ {
		v := rg.Intn(testRange)
		_, replaced := tree.Insert(v)
		_, in := content[v]
		if replaced != in {
			t.Errorf("Insert(%d) reported replaced=%v, want %v", v, replaced, in)
		}
		content[v] = struct{}{}
	}
	if !tree.IsValid() {
		t.Fatal("tree is not a valid BST after inserts")
	}
	t.Logf("average depth: %f, size: %d", tree.averageDepth(), len(content))
	for v := range content {
		if _, ok := tree.Search(v); !ok {
			t.Errorf("Search(%d) missing after insert", v)
		}
	}
	if _, ok := tree.Search(testRange + 1); ok {
		t.Errorf("Search found a value that was never inserted")
	}
}

func TestBST_Remove(t *testing.T) {
	rg := rand.New(rand.NewSource(1))
	tree := NewBST[int](OrderedCompare[int]())
	content := make(map[int]struct{})
	for i := 0; i < testN; i++ {
		v := rg.Intn(testRange)
		tree.Insert(v)
		content[v] = struct{}{}
	}
	for v := range content {
		if rg.Intn(2) == 0 {
			continue
		}
		if _, ok := tree.Remove(v); !ok {
			t.Errorf("Remove(%d) failed, expected present", v)
		}
		delete(content, v)
		if _, ok := tree.Remove(v); ok {
			t.Errorf("Remove(%d) succeeded twice", v)
		}
	}
	if !tree.IsValid() {
		t.Fatal("tree is not a valid BST after removals")
	}
	for v := range content {
		if _, ok := tree.Search(v); !ok {
			t.Errorf("Search(%d) missing after partial removal", v)
		}
	}
}

func TestBST_MinMaxPrevNext(t *testing.T) {
	tree := NewBST[int](OrderedCompare[int]())
	vals := []int{50, 30, 70, 20, 40, 60, 80}
	for _, v := range vals {
		tree.Insert(v)
	}
	if m, ok := tree.Min(); !ok || m != 20 {
		t.Errorf("Min() = %d, %v, want 20, true", m, ok)
	}
	if m, ok := tree.Max(); !ok || m != 80 {
		t.Errorf("Max() = %d, %v, want 80, true", m, ok)
	}
	if p, ok := tree.Prev(50); !ok || p != 40 {
		t.Errorf("Prev(50) = %d, %v, want 40, true", p, ok)
	}
	if n, ok := tree.Next(50); !ok || n != 60 {
		t.Errorf("Next(50) = %d, %v, want 60, true", n, ok)
	}
	if _, ok := tree.Prev(20); ok {
		t.Errorf("Prev(20) should have no predecessor")
	}
	if _, ok := tree.Next(80); ok {
		t.Errorf("Next(80) should have no successor")
	}
}

func TestBST_InsertMinMax(t *testing.T) {
	tree := NewBST[int](OrderedCompare[int]())
	for i := 0; i < testN; i++ {
		tree.InsertMax(i)
	}
	if !tree.IsValid() {
		t.Fatal("tree built via InsertMax is not valid")
	}
	for i := 0; i < testN; i++ {
		if _, ok := tree.Search(i); !ok {
			t.Errorf("Search(%d) missing after InsertMax build", i)
		}
	}
	tree2 := NewBST[int](OrderedCompare[int]())
	for i := testN - 1; i >= 0; i-- {
		tree2.InsertMin(i)
	}
	if !tree2.IsValid() {
		t.Fatal("tree built via InsertMin is not valid")
	}
	if m, _ := tree2.Min(); m != 0 {
		t.Errorf("Min() = %d, want 0", m)
	}
}

func TestBST_Rebalance(t *testing.T) {
	tree := NewBST[int](OrderedCompare[int]())
	for i := 0; i < testN; i++ {
		tree.InsertMax(i)
	}
	if d := tree.averageDepth(); d < float32(testN)/2 {
		t.Fatalf("degenerate chain has unexpectedly low average depth %f", d)
	}
	tree.Rebalance()
	if !tree.IsValid() {
		t.Fatal("tree is not valid after Rebalance")
	}
	for i := 0; i < testN; i++ {
		if _, ok := tree.Search(i); !ok {
			t.Errorf("Search(%d) missing after Rebalance", i)
		}
	}
	if d := tree.averageDepth(); d > 20 {
		t.Errorf("average depth %f too large for %d elements after Rebalance", d, testN)
	}
}

func TestBST_RemoveAll(t *testing.T) {
	tree := NewBST[int](OrderedCompare[int]())
	for i := 0; i < testN; i++ {
		tree.Insert(i)
	}
	destroyed := make(map[int]struct{})
	tree.RemoveAll(func(v int) { destroyed[v] = struct{}{} })
	if !tree.IsEmpty() {
		t.Error("tree is not empty after RemoveAll")
	}
	if len(destroyed) != testN {
		t.Errorf("RemoveAll destroyed %d values, want %d", len(destroyed), testN)
	}
}

func TestBST_Copy(t *testing.T) {
	tree := NewBST[int](OrderedCompare[int]())
	for i := 0; i < testN; i++ {
		tree.Insert(i)
	}
	dup := tree.Copy()
	if !dup.IsValid() {
		t.Fatal("copy is not valid")
	}
	dup.Remove(0)
	if _, ok := tree.Search(0); !ok {
		t.Error("mutating copy affected original tree")
	}
	for i := 0; i < testN; i++ {
		if _, ok := dup.Search(i); !ok && i != 0 {
			t.Errorf("copy missing %d", i)
		}
	}
}
