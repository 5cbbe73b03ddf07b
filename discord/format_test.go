package discord

import (
	"strings"
	"testing"
)

func TestRender_Chunking(t *testing.T) {
	tests := []struct {
		name       string
		textLen    int
		wantChunks int
	}{
		{
			name:       "short text is one message",
			textLen:    10,
			wantChunks: 1,
		},
		{
			name:       "exactly at the limit is one message",
			textLen:    2000,
			wantChunks: 1,
		},
		{
			name:       "one over the limit splits",
			textLen:    2001,
			wantChunks: 2,
		},
		{
			name:       "long text splits into many",
			textLen:    5000,
			wantChunks: 3,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			text := strings.Repeat("a", tt.textLen)
			got := Render(text)
			if len(got) != tt.wantChunks {
				t.Fatalf("Render() produced %d chunks, want %d", len(got), tt.wantChunks)
			}
			for i, chunk := range got {
				if n := len([]rune(chunk)); n > maxMessageLen {
					t.Errorf("Render() chunk %d has %d runes, over the %d limit", i, n, maxMessageLen)
				}
			}
			// concatenating the chunks gives back the original
			if joined := strings.Join(got, ""); joined != text {
				t.Error("Render() chunks do not concatenate to the original text")
			}
		})
	}
}

func TestRender_SplitChunkSize(t *testing.T) {
	text := strings.Repeat("b", 2001)
	got := Render(text)
	for i, chunk := range got {
		if n := len([]rune(chunk)); n > chunkLen {
			t.Errorf("Render() split chunk %d has %d runes, want <= %d", i, n, chunkLen)
		}
	}
}

func Test_looksLikeCode(t *testing.T) {
	tests := []struct {
		name string
		text string
		want bool
	}{
		{
			name: "plain prose",
			text: "The capital of France is Paris.",
			want: false,
		},
		{
			name: "contains a fence",
			text: "Sure!\n```go\nfmt.Println(\"hi\")\n```",
			want: true,
		},
		{
			name: "starts with a lead-in",
			text: "Here's the code you asked for",
			want: true,
		},
		{
			name: "starts with a declaration",
			text: "def main():\n    pass",
			want: true,
		},
		{
			name: "lead-in mid sentence does not count",
			text: "I think here's the code is a weird phrase.",
			want: false,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := looksLikeCode(tt.text); got != tt.want {
				t.Errorf("looksLikeCode() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestRender_CodeFenceWrapping(t *testing.T) {
	got := Render("func main() {}")
	if len(got) != 1 {
		t.Fatalf("Render() produced %d chunks, want 1", len(got))
	}
	if !strings.HasPrefix(got[0], "```\n") || !strings.HasSuffix(got[0], "\n```") {
		t.Errorf("Render() = %q, want a fenced message", got[0])
	}
}

func TestRender_CodeNearLimitSplits(t *testing.T) {
	// 1995 runes of code fits the platform limit unfenced, but not
	// with a fence around it, so it goes out as two fenced messages
	text := "func main() {" + strings.Repeat("x", 1981) + "}"
	got := Render(text)
	if len(got) != 2 {
		t.Fatalf("Render() produced %d chunks for a near-limit code reply, want 2", len(got))
	}
	for i, chunk := range got {
		if n := len([]rune(chunk)); n > maxMessageLen {
			t.Errorf("Render() chunk %d has %d runes, over the %d limit", i, n, maxMessageLen)
		}
		if !strings.HasPrefix(chunk, "```\n") || !strings.HasSuffix(chunk, "\n```") {
			t.Errorf("Render() chunk %d is not fenced", i)
		}
	}
}

func TestRender_CodeChunksStayUnderLimit(t *testing.T) {
	text := "func main() {" + strings.Repeat("x", 4000) + "}"
	for i, chunk := range Render(text) {
		if n := len([]rune(chunk)); n > maxMessageLen {
			t.Errorf("Render() fenced chunk %d has %d runes, over the %d limit", i, n, maxMessageLen)
		}
	}
}
