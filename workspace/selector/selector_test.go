package selector

import (
	"testing"
	"testing/fstest"

	"github.com/google/go-cmp/cmp"
)

func TestSelectHonorsGitignore(t *testing.T) {
	mfs := fstest.MapFS{
		".gitignore": &fstest.MapFile{Data: []byte("# build artifacts\n*.log\n")},
		"a.go":       &fstest.MapFile{Data: []byte("package a\n")},
		"b.log":      &fstest.MapFile{Data: []byte("noise")},
		"sub/c.log":  &fstest.MapFile{Data: []byte("noise")},
		"sub/d.go":   &fstest.MapFile{Data: []byte("package d\n")},
	}

	got, err := Select(mfs, ".", []string{".gitignore"}, []string{"**/*"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []string{"a.go", "sub/d.go"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("selected files mismatch (-want +got):\n%s", diff)
	}
}

func TestSelectNestedGitignoreAppliesToSubtree(t *testing.T) {
	mfs := fstest.MapFS{
		"a.tmp":          &fstest.MapFile{Data: []byte("keep: only sub ignores tmp")},
		"sub/.gitignore": &fstest.MapFile{Data: []byte("*.tmp\n")},
		"sub/b.tmp":      &fstest.MapFile{Data: []byte("noise")},
		"sub/c.go":       &fstest.MapFile{Data: []byte("package c\n")},
	}

	got, err := Select(mfs, ".", []string{".gitignore"}, []string{"**/*"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []string{"a.tmp", "sub/c.go"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("selected files mismatch (-want +got):\n%s", diff)
	}
}

func TestSelectScopedToStartDir(t *testing.T) {
	mfs := fstest.MapFS{
		"a.go":          &fstest.MapFile{Data: []byte("package a\n")},
		"sub/d.go":      &fstest.MapFile{Data: []byte("package d\n")},
		"sub/deep/e.go": &fstest.MapFile{Data: []byte("package e\n")},
		"other/f.go":    &fstest.MapFile{Data: []byte("package f\n")},
	}

	got, err := Select(mfs, "sub", nil, []string{"**/*.go"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []string{"sub/d.go", "sub/deep/e.go"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("selected files mismatch (-want +got):\n%s", diff)
	}
}

func TestSelectSkipsExcludedDirectories(t *testing.T) {
	mfs := fstest.MapFS{
		"a.go":          &fstest.MapFile{Data: []byte("package a\n")},
		"vendor/lib.go": &fstest.MapFile{Data: []byte("package lib\n")},
	}

	got, err := Select(mfs, ".", []string{"vendor/"}, []string{"**/*.go"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []string{"a.go"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("selected files mismatch (-want +got):\n%s", diff)
	}
}
