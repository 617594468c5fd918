package docs

import (
	"errors"
	"strings"
	"testing"

	"github.com/jorge-barreto/notes/internal/catalog"
)

func TestAll_ReturnsTopics(t *testing.T) {
	topics := All()
	if len(topics) == 0 {
		t.Fatal("All() returned no topics")
	}
	if topics[0].Name != "usage" {
		t.Errorf("first topic = %q, want %q", topics[0].Name, "usage")
	}
}

func TestAll_NoDuplicateNames(t *testing.T) {
	seen := make(map[string]bool)
	for _, topic := range All() {
		if seen[topic.Name] {
			t.Errorf("duplicate topic name: %q", topic.Name)
		}
		seen[topic.Name] = true
	}
}

func TestAll_AllFieldsPopulated(t *testing.T) {
	for _, topic := range All() {
		if topic.Name == "" {
			t.Error("topic has empty Name")
		}
		if topic.Title == "" {
			t.Errorf("topic %q has empty Title", topic.Name)
		}
		if topic.Summary == "" {
			t.Errorf("topic %q has empty Summary", topic.Name)
		}
		if topic.Content == "" {
			t.Errorf("topic %q has empty Content", topic.Name)
		}
	}
}

func TestGet_Found(t *testing.T) {
	topic, err := Get("format")
	if err != nil {
		t.Fatalf("Get(format) error: %v", err)
	}
	if topic.Name != "format" {
		t.Errorf("Name = %q, want %q", topic.Name, "format")
	}
}

func TestGet_NotFound(t *testing.T) {
	_, err := Get("nonexistent")
	if !errors.Is(err, ErrUnknownTopic) {
		t.Fatalf("Get(nonexistent) err = %v, want ErrUnknownTopic", err)
	}
	if !strings.Contains(err.Error(), `"nonexistent"`) {
		t.Fatalf("error %q should name the topic", err)
	}
}

// The format article's example must itself be a valid notes file.
func TestFormat_ExampleParses(t *testing.T) {
	topic, _ := Get("format")
	start := strings.Index(topic.Content, "    # Threads\n    A thread")
	end := strings.Index(topic.Content, "An empty fence")
	if start < 0 || end < start {
		t.Fatal("example not found in format article")
	}
	var lines []string
	for _, line := range strings.Split(topic.Content[start:end], "\n") {
		lines = append(lines, strings.TrimPrefix(line, "    "))
	}
	cat, err := catalog.Load([]byte(strings.Join(lines, "\n")))
	if err != nil {
		t.Fatalf("example does not parse: %v", err)
	}
	if cat.Len() != 1 || cat.At(0).Title() != "Threads" {
		t.Fatalf("titles = %v", cat.Titles())
	}
	if _, ok := cat.At(0).Code(); !ok {
		t.Fatal("example should have a code sample")
	}
}
