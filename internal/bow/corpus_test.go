package bow

import (
	"reflect"
	"testing"

	"github.com/hamlet-ml/hamlet/internal/filesystem"
)

func TestFromFile(t *testing.T) {
	fs := filesystem.NewMockFileSystem()
	fs.AddFile("/corpus/a.txt", []byte("hello there world"))

	b, err := FromFile(fs, "/corpus/a.txt")
	if err != nil {
		t.Fatalf("FromFile() error = %v", err)
	}
	want := FromText("hello there world")
	if !reflect.DeepEqual(b.Counts, want.Counts) {
		t.Fatalf("expected %v, got %v", want.Counts, b.Counts)
	}
}

func TestFromFile_Missing(t *testing.T) {
	fs := filesystem.NewMockFileSystem()

	if _, err := FromFile(fs, "/corpus/missing.txt"); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestFromDir_CombinesFiles(t *testing.T) {
	fs := filesystem.NewMockFileSystem()
	fs.AddFile("/corpus/a.txt", []byte("hello there world"))
	fs.AddFile("/corpus/b.txt", []byte("hello there world 😊😊"))
	fs.AddFile("/corpus/c.txt", []byte("😊😊😊"))

	b, err := FromDir(fs, "/corpus", nil)
	if err != nil {
		t.Fatalf("FromDir() error = %v", err)
	}

	want := FromText("hello there world hello there world 😊😊😊😊😊")
	if !reflect.DeepEqual(b.Counts, want.Counts) {
		t.Fatalf("expected %v, got %v", want.Counts, b.Counts)
	}
}

func TestFromDir_SkipsSubdirectories(t *testing.T) {
	fs := filesystem.NewMockFileSystem()
	fs.AddFile("/corpus/a.txt", []byte("hello"))
	fs.AddDir("/corpus/nested")

	b, err := FromDir(fs, "/corpus", nil)
	if err != nil {
		t.Fatalf("FromDir() error = %v", err)
	}
	if got := b.TotalWords(); got != 1 {
		t.Fatalf("expected 1 word, got %d", got)
	}
}

func TestFromDir_ReportsProgress(t *testing.T) {
	fs := filesystem.NewMockFileSystem()
	fs.AddFile("/corpus/a.txt", []byte("hello"))
	fs.AddFile("/corpus/b.txt", []byte("world"))

	var seen []string
	_, err := FromDir(fs, "/corpus", func(name string) {
		seen = append(seen, name)
	})
	if err != nil {
		t.Fatalf("FromDir() error = %v", err)
	}
	if len(seen) != 2 {
		t.Fatalf("expected 2 progress calls, got %v", seen)
	}
}

func TestFromDir_MissingDir(t *testing.T) {
	fs := filesystem.NewMockFileSystem()

	if _, err := FromDir(fs, "/nope", nil); err == nil {
		t.Fatal("expected error for missing directory")
	}
}
