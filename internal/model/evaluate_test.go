package model

import (
	"testing"

	"github.com/hamlet-ml/hamlet/internal/bow"
	"github.com/hamlet-ml/hamlet/internal/filesystem"
)

func trainedModel(t *testing.T) Model {
	t.Helper()
	m, err := FromBags(
		bow.FromText("free money meeting meeting meeting meeting"),
		bow.FromText("free free free free money money money meeting"),
	)
	if err != nil {
		t.Fatalf("FromBags() error = %v", err)
	}
	return m
}

func TestEvaluateDir_CountsCorrect(t *testing.T) {
	fs := filesystem.NewMockFileSystem()
	fs.AddFile("/data/validate/spam/0.txt", []byte("free free money"))
	fs.AddFile("/data/validate/spam/1.txt", []byte("meeting meeting meeting"))

	m := trainedModel(t)
	eval, err := m.EvaluateDir(fs, "/data/validate/spam", "spam",
		func(p float64) bool { return p > 0.8 })
	if err != nil {
		t.Fatalf("EvaluateDir() error = %v", err)
	}

	if eval.Total != 2 {
		t.Fatalf("expected 2 files, got %d", eval.Total)
	}
	if eval.Correct != 1 {
		t.Fatalf("expected 1 correct, got %d", eval.Correct)
	}
	if eval.Accuracy() != 0.5 {
		t.Fatalf("expected accuracy 0.5, got %v", eval.Accuracy())
	}
	if len(eval.Results) != 2 {
		t.Fatalf("expected 2 results, got %d", len(eval.Results))
	}
}

func TestEvaluateDir_EmptyDir(t *testing.T) {
	fs := filesystem.NewMockFileSystem()
	fs.AddDir("/data/validate/ham")

	m := trainedModel(t)
	eval, err := m.EvaluateDir(fs, "/data/validate/ham", "ham",
		func(p float64) bool { return p < 0.2 })
	if err != nil {
		t.Fatalf("EvaluateDir() error = %v", err)
	}
	if eval.Total != 0 || eval.Accuracy() != 0 {
		t.Fatalf("expected empty evaluation, got %+v", eval)
	}
}

func TestEvaluateDir_MissingDir(t *testing.T) {
	fs := filesystem.NewMockFileSystem()

	m := trainedModel(t)
	if _, err := m.EvaluateDir(fs, "/nope", "ham", func(float64) bool { return true }); err == nil {
		t.Fatal("expected error for missing directory")
	}
}
