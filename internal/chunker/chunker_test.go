package chunker

import (
	"strings"
	"testing"
)

func TestSplit(t *testing.T) {
	tests := []struct {
		name string
		text string
		size int
		want []string
	}{
		{
			name: "exact windows with remainder",
			text: "abcdefgh",
			size: 3,
			want: []string{"abc", "def", "gh"},
		},
		{
			name: "text shorter than window",
			text: "ab",
			size: 10,
			want: []string{"ab"},
		},
		{
			name: "text equal to window",
			text: "abcd",
			size: 4,
			want: []string{"abcd"},
		},
		{
			name: "empty text",
			text: "",
			size: 3,
			want: nil,
		},
		{
			name: "zero size",
			text: "abc",
			size: 0,
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Split(tt.text, tt.size)
			if len(got) != len(tt.want) {
				t.Fatalf("Split() = %v, want %v", got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("window %d = %q, want %q", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestSplitCoversInput(t *testing.T) {
	text := strings.Repeat("x", 2500)
	windows := Split(text, 1000)

	if len(windows) != 3 {
		t.Fatalf("got %d windows, want 3", len(windows))
	}
	if joined := strings.Join(windows, ""); joined != text {
		t.Error("concatenated windows do not reproduce the input")
	}
	if len(windows[2]) != 500 {
		t.Errorf("last window length = %d, want 500", len(windows[2]))
	}
}

func TestChunk(t *testing.T) {
	c := New(WithChunkSize(3))
	chunks := c.Chunk("abcdefgh", "resume.pdf")

	if len(chunks) != 3 {
		t.Fatalf("got %d chunks, want 3", len(chunks))
	}

	seen := make(map[string]bool)
	for i, chunk := range chunks {
		if chunk.ID == "" {
			t.Errorf("chunk %d has empty ID", i)
		}
		if seen[chunk.ID] {
			t.Errorf("duplicate chunk ID %s", chunk.ID)
		}
		seen[chunk.ID] = true

		if chunk.Position != i {
			t.Errorf("chunk %d position = %d", i, chunk.Position)
		}
		if chunk.SourcePath != "resume.pdf" {
			t.Errorf("chunk %d source = %q", i, chunk.SourcePath)
		}
		if chunk.Metadata["source"] != "resume.pdf" {
			t.Errorf("chunk %d metadata source = %v", i, chunk.Metadata["source"])
		}
	}
}

func TestChunkEmptyText(t *testing.T) {
	if chunks := New().Chunk("", "resume.pdf"); len(chunks) != 0 {
		t.Errorf("got %d chunks for empty text, want 0", len(chunks))
	}
}

func TestDefaultChunkSize(t *testing.T) {
	c := New()
	chunks := c.Chunk(strings.Repeat("a", 1500), "r.txt")
	if len(chunks) != 2 {
		t.Fatalf("got %d chunks, want 2", len(chunks))
	}
	if len(chunks[0].Content) != DefaultChunkSize {
		t.Errorf("first chunk length = %d, want %d", len(chunks[0].Content), DefaultChunkSize)
	}
}
