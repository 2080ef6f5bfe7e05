package oracle

import (
	"fmt"
	"strings"
)

// disambiguationPrompt is the system prompt for candidate selection. The
// oracle sees only normalized summaries; it must answer with an offered
// index or an explicit none.
const disambiguationPrompt = `You match recordings of committee proceedings with official event records.

You receive one video (title, date if known) and a numbered list of candidate
events (title, date, category). Decide which candidate, if any, is the same
real-world event as the video. Consider:
1. Dates should be the same or very close; recordings are often published a day or two after the event.
2. Titles should refer to the same proceeding even when worded differently.
3. A generic video title like "Full Committee Markup" matches a markup event on the same day.
4. Only select a candidate if you are confident; otherwise declare none.

Respond ONLY with JSON, exactly one of:
{"selected_index": <zero-based index of the matching candidate>}
{"none": true}`

func buildUserPrompt(req Request) (string, error) {
	var b strings.Builder
	fmt.Fprintf(&b, "Video:\n- Title: %s\n", strings.TrimSpace(req.VideoTitle))
	if strings.TrimSpace(req.VideoDate) != "" {
		fmt.Fprintf(&b, "- Date: %s\n", strings.TrimSpace(req.VideoDate))
	} else {
		b.WriteString("- Date: unknown\n")
	}
	b.WriteString("\nCandidates:\n")
	for i, candidate := range req.Candidates {
		if strings.TrimSpace(candidate.Title) == "" {
			return "", fmt.Errorf("candidate %d has no title", i)
		}
		fmt.Fprintf(&b, "%d. %s\n   Date: %s\n   Category: %s\n",
			i, candidate.Title, candidate.Date, candidate.Category)
	}
	return b.String(), nil
}
