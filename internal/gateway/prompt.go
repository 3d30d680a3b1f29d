package gateway

import (
	"fmt"
	"strings"

	"github.com/cloudwego/eino/schema"
)

const analysisSystemPrompt = `You are a Reddit comment sentiment analysis service.

For every post URL you receive, analyze the sentiment of its comment section and answer with a JSON array only, no prose and no markdown fences. The array has exactly one element per URL, in the same order as the URLs were given:

[
  {
    "url": "<the post url>",
    "sentimentBreakdown": {
      "positive": {"count": 12, "percentage": 60, "keywords": ["great", "great", "helpful"], "comments": ["Sample comment"]},
      "neutral":  {"count": 5,  "percentage": 25, "keywords": [], "comments": []},
      "negative": {"count": 3,  "percentage": 15, "keywords": ["broken"], "comments": ["Sample complaint"]}
    }
  }
]

Rules:
- count is the number of comments in the category; percentage is the share of the post's comments rounded to a whole number, and the percentages of one post sum to 100.
- keywords repeat a term once per occurrence, so frequency stays visible; keep them lowercase single words or short phrases.
- comments carries up to 5 representative comment texts, verbatim.
- Include a category only when you observed comments for it. Every included category must carry all four fields, using 0 or [] where empty.`

// buildMessages assembles the chat messages for one URL batch.
func buildMessages(urls []string) []*schema.Message {
	var sb strings.Builder
	sb.WriteString("Analyze the comment sentiment of the following Reddit posts:\n")
	for i, url := range urls {
		sb.WriteString(fmt.Sprintf("%d. %s\n", i+1, url))
	}

	return []*schema.Message{
		schema.SystemMessage(analysisSystemPrompt),
		schema.UserMessage(sb.String()),
	}
}
