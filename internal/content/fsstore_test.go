package content

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"regexp"
	"testing"
)

const sampleSetJSON = `{
  "variations": [
    {"screens": [["Hey {{receiverName}}", "line two"], ["closing", "bye"]]},
    {"screens": [["Hello {{receiverName}}", "alt two"], ["alt closing", "see you"]]}
  ]
}`

func TestFSSourceLoad(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "male_friend_birthday.json"), []byte(sampleSetJSON), 0644); err != nil {
		t.Fatalf("failed to write fixture: %v", err)
	}

	src := NewFSSource(dir)
	set, err := src.Load(context.Background(), "male_friend_birthday")
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if len(set.Variations) != 2 {
		t.Fatalf("variation count = %d, want 2", len(set.Variations))
	}
	if len(set.Variations[0].Screens) != 2 {
		t.Errorf("screen count = %d, want 2", len(set.Variations[0].Screens))
	}
	if got := set.Variations[0].Screens[0].Lines[0]; got != "Hey {{receiverName}}" {
		t.Errorf("first line = %q, want raw templated text", got)
	}
	if issues := set.ShapeIssues(); len(issues) != 0 {
		t.Errorf("unexpected shape issues: %v", issues)
	}
}

func TestFSSourceNotFound(t *testing.T) {
	src := NewFSSource(t.TempDir())
	if _, err := src.Load(context.Background(), "male_dad_valentine"); !errors.Is(err, ErrNotFound) {
		t.Errorf("Load error = %v, want ErrNotFound", err)
	}
}

func TestFSSourceRejectsPathTraversal(t *testing.T) {
	src := NewFSSource(t.TempDir())
	if _, err := src.Load(context.Background(), "../etc/passwd"); !errors.Is(err, ErrNotFound) {
		t.Errorf("Load error = %v, want ErrNotFound for hostile key", err)
	}
}

func TestFSSourceStrictParse(t *testing.T) {
	dir := t.TempDir()
	testCases := []struct {
		name string
		body string
	}{
		{name: "unknown field", body: `{"variations": [], "eval": "code"}`},
		{name: "invalid json", body: `{"variations": [`},
		{name: "no variations", body: `{"variations": []}`},
	}

	src := NewFSSource(dir)
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			key := "male_friend_celebration"
			if err := os.WriteFile(filepath.Join(dir, key+".json"), []byte(tc.body), 0644); err != nil {
				t.Fatalf("failed to write fixture: %v", err)
			}
			if _, err := src.Load(context.Background(), key); err == nil {
				t.Error("Load accepted malformed document")
			}
		})
	}
}

func TestFSSourceKeys(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"male_friend_birthday.json", "female_mom_birthday.json", "notes.txt"} {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(sampleSetJSON), 0644); err != nil {
			t.Fatalf("failed to write fixture: %v", err)
		}
	}

	keys, err := NewFSSource(dir).Keys()
	if err != nil {
		t.Fatalf("Keys returned error: %v", err)
	}
	if len(keys) != 2 {
		t.Errorf("Keys() = %v, want 2 json keys only", keys)
	}
}

// TestShippedContentSets guards the authored content that ships in
// data/content: every set must load, pass the shape check, and reference only
// recognized placeholder tokens.
func TestShippedContentSets(t *testing.T) {
	src := NewFSSource(filepath.Join("..", "..", "data", "content"))
	keys, err := src.Keys()
	if err != nil {
		t.Fatalf("failed to list shipped sets: %v", err)
	}
	if len(keys) == 0 {
		t.Fatal("no shipped content sets found")
	}

	tokenPattern := regexp.MustCompile(`\{\{([a-zA-Z]+)\}\}`)
	for _, key := range keys {
		set, err := src.Load(context.Background(), key)
		if err != nil {
			t.Errorf("%s: failed to load: %v", key, err)
			continue
		}
		if issues := set.ShapeIssues(); len(issues) != 0 {
			t.Errorf("%s: shape issues: %v", key, issues)
		}
		for vi, variation := range set.Variations {
			for si, screen := range variation.Screens {
				for _, line := range screen.Lines {
					for _, match := range tokenPattern.FindAllStringSubmatch(line, -1) {
						if !KnownToken(match[1]) {
							t.Errorf("%s: variation %d screen %d: unknown token %s", key, vi, si, match[0])
						}
					}
				}
			}
		}
	}
}
