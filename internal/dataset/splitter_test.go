package dataset

import (
	"fmt"
	"testing"

	"github.com/hamlet-ml/hamlet/internal/filesystem"
)

func addCorpus(fs *filesystem.MockFileSystem, hamCount, spamCount int) {
	for i := 0; i < hamCount; i++ {
		fs.AddFile(fmt.Sprintf("/work/corpus/ham/h%02d.txt", i), []byte("hi there"))
	}
	for i := 0; i < spamCount; i++ {
		fs.AddFile(fmt.Sprintf("/work/corpus/spam/s%02d.txt", i), []byte("buy now"))
	}
}

func addDestinations(fs *filesystem.MockFileSystem) {
	fs.AddDir("/work/data/train/ham")
	fs.AddDir("/work/data/validate/ham")
	fs.AddDir("/work/data/train/spam")
	fs.AddDir("/work/data/validate/spam")
}

func TestSplitIndex_Truncates(t *testing.T) {
	cases := []struct {
		n, want int
	}{
		{0, 0},
		{1, 0},
		{4, 3},
		{5, 4},
		{9, 7},
		{10, 8},
	}
	for _, tc := range cases {
		if got := SplitIndex(tc.n, 0.8); got != tc.want {
			t.Fatalf("SplitIndex(%d, 0.8) = %d, want %d", tc.n, got, tc.want)
		}
	}
}

// The canonical numbering example: 10 ham and 5 spam files produce
// train/ham 0-7, validate/ham 8-9, train/spam 10-13, validate/spam 14.
func TestSplit_EndToEndNumbering(t *testing.T) {
	fs := filesystem.NewMockFileSystem()
	addCorpus(fs, 10, 5)
	addDestinations(fs)

	d, err := Discover(fs, "/work/corpus")
	if err != nil {
		t.Fatalf("Discover() error = %v", err)
	}

	splitter := NewSplitter(fs, DefaultRatio)
	result, err := splitter.Execute(splitter.BuildPlan(d, "/work/data"))
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if result.Moved != 15 {
		t.Fatalf("expected 15 moves, got %d", result.Moved)
	}

	for i := 0; i <= 7; i++ {
		mustExist(t, fs, fmt.Sprintf("/work/data/train/ham/%d.txt", i))
	}
	for i := 8; i <= 9; i++ {
		mustExist(t, fs, fmt.Sprintf("/work/data/validate/ham/%d.txt", i))
	}
	for i := 10; i <= 13; i++ {
		mustExist(t, fs, fmt.Sprintf("/work/data/train/spam/%d.txt", i))
	}
	mustExist(t, fs, "/work/data/validate/spam/14.txt")

	// Moves, not copies: the sources are gone.
	if fs.Exists("/work/corpus/ham/h00.txt") {
		t.Fatal("expected source file to be moved away")
	}
}

func TestSplit_GroupCounts(t *testing.T) {
	fs := filesystem.NewMockFileSystem()
	addCorpus(fs, 10, 5)
	addDestinations(fs)

	d, err := Discover(fs, "/work/corpus")
	if err != nil {
		t.Fatalf("Discover() error = %v", err)
	}

	splitter := NewSplitter(fs, DefaultRatio)
	plan := splitter.BuildPlan(d, "/work/data")

	want := map[Group]int{
		{"train", ClassHam}:      8,
		{"validate", ClassHam}:   2,
		{"train", ClassSpam}:     4,
		{"validate", ClassSpam}:  1,
	}
	for g, n := range want {
		if plan.Counts[g] != n {
			t.Fatalf("expected %d files in %s/%s, got %d", n, g.Subset, g.Class, plan.Counts[g])
		}
	}
}

func TestSplit_SortedSourcesDetermineAssignment(t *testing.T) {
	fs := filesystem.NewMockFileSystem()
	fs.AddFile("/work/corpus/ham/b.txt", []byte("2"))
	fs.AddFile("/work/corpus/ham/a.txt", []byte("1"))
	addDestinations(fs)

	d, err := Discover(fs, "/work/corpus")
	if err != nil {
		t.Fatalf("Discover() error = %v", err)
	}

	splitter := NewSplitter(fs, DefaultRatio)
	plan := splitter.BuildPlan(d, "/work/data")

	// floor(0.8*2) = 1: a.txt trains, b.txt validates.
	if plan.Moves[0].Source != "/work/corpus/ham/a.txt" ||
		plan.Moves[0].Dest != "/work/data/train/ham/0.txt" {
		t.Fatalf("unexpected first move: %+v", plan.Moves[0])
	}
	if plan.Moves[1].Source != "/work/corpus/ham/b.txt" ||
		plan.Moves[1].Dest != "/work/data/validate/ham/1.txt" {
		t.Fatalf("unexpected second move: %+v", plan.Moves[1])
	}
}

func TestSplit_EmptyClass(t *testing.T) {
	fs := filesystem.NewMockFileSystem()
	addCorpus(fs, 3, 0)
	addDestinations(fs)

	d, err := Discover(fs, "/work/corpus")
	if err != nil {
		t.Fatalf("Discover() error = %v", err)
	}

	splitter := NewSplitter(fs, DefaultRatio)
	result, err := splitter.Execute(splitter.BuildPlan(d, "/work/data"))
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if result.Moved != 3 {
		t.Fatalf("expected 3 moves, got %d", result.Moved)
	}
	if result.Counts[Group{"train", ClassSpam}] != 0 ||
		result.Counts[Group{"validate", ClassSpam}] != 0 {
		t.Fatalf("expected empty spam groups, got %v", result.Counts)
	}
}

func TestSplit_MissingDestinationAbortsWithoutRollback(t *testing.T) {
	fs := filesystem.NewMockFileSystem()
	addCorpus(fs, 2, 2)
	// train dirs exist, validate dirs do not
	fs.AddDir("/work/data/train/ham")
	fs.AddDir("/work/data/train/spam")

	d, err := Discover(fs, "/work/corpus")
	if err != nil {
		t.Fatalf("Discover() error = %v", err)
	}

	splitter := NewSplitter(fs, DefaultRatio)
	result, err := splitter.Execute(splitter.BuildPlan(d, "/work/data"))
	if err == nil {
		t.Fatal("expected error for missing destination directory")
	}

	// floor(0.8*2) = 1 ham file moved before the failure; it stays moved.
	if result.Moved != 1 {
		t.Fatalf("expected 1 completed move, got %d", result.Moved)
	}
	if !fs.Exists("/work/data/train/ham/0.txt") {
		t.Fatal("expected completed move to stay in place")
	}
	if fs.Exists("/work/corpus/ham/h00.txt") {
		t.Fatal("expected moved source to stay gone")
	}
}

func TestSplit_SecondRunFindsNothing(t *testing.T) {
	fs := filesystem.NewMockFileSystem()
	addCorpus(fs, 5, 5)
	addDestinations(fs)

	d, err := Discover(fs, "/work/corpus")
	if err != nil {
		t.Fatalf("Discover() error = %v", err)
	}
	splitter := NewSplitter(fs, DefaultRatio)
	if _, err := splitter.Execute(splitter.BuildPlan(d, "/work/data")); err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	// Re-running the stale plan fails: the sources were already moved.
	if _, err := splitter.Execute(splitter.BuildPlan(d, "/work/data")); err == nil {
		t.Fatal("expected second run on the same plan to fail")
	}
}

func mustExist(t *testing.T, fs filesystem.FileSystem, path string) {
	t.Helper()
	if !fs.Exists(path) {
		t.Fatalf("expected %s to exist", path)
	}
}
