package discord

import "strings"

const (
	// maxMessageLen is discord's per-message limit. It doubles as the
	// input policy cap for relayed messages.
	maxMessageLen = 2000
	// chunkLen is the fixed size oversized replies are split into. It
	// sits below maxMessageLen so a code fence around a chunk still
	// fits inside the platform limit.
	chunkLen = 1990
)

// codeLeadIns are reply openers that usually precede a code answer.
// Matching is best-effort; a miss just means plain rendering.
var codeLeadIns = []string{
	"here's the code",
	"here is the code",
	"def ",
	"func ",
	"class ",
	"package ",
	"import ",
	"#include",
}

func looksLikeCode(text string) bool {
	if strings.Contains(text, "```") {
		return true
	}
	lower := strings.ToLower(text)
	for _, lead := range codeLeadIns {
		if strings.HasPrefix(lower, lead) {
			return true
		}
	}
	return false
}

// Render splits a reply into sendable messages, in order, and applies
// the best-effort code-fence wrapping. Text at or under the platform
// limit goes out as a single message; anything longer is cut into
// chunkLen-rune pieces. One exception: code-classified text between
// chunkLen and maxMessageLen runes also splits, because the fence
// added around each piece has to stay inside the platform limit.
func Render(text string) []string {
	code := looksLikeCode(text)
	limit := maxMessageLen
	if code {
		limit = chunkLen
	}

	runes := []rune(text)
	if len(runes) <= limit {
		return []string{wrapFence(text, code)}
	}

	chunks := make([]string, 0, (len(runes)+chunkLen-1)/chunkLen)
	for start := 0; start < len(runes); start += chunkLen {
		end := start + chunkLen
		if end > len(runes) {
			end = len(runes)
		}
		chunks = append(chunks, wrapFence(string(runes[start:end]), code))
	}
	return chunks
}

func wrapFence(chunk string, code bool) string {
	if !code {
		return chunk
	}
	return "```\n" + chunk + "\n```"
}
