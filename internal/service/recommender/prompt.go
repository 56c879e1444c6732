package recommender

import (
	"fmt"
	"strings"

	"github.com/travisksimons/vibe-check-movies/internal/model"
)

const promptHeader = `You are a movie-night concierge for a group that just finished swiping on a shared movie quiz.

For every person you get their votes: "love" and "like" mean the movie landed, "pass" means it did not, "havent_seen" carries no opinion. Read the patterns behind the votes: favorite genres and eras, tone, pacing, director styles. Never recommend a movie someone in the group already voted love or like on. Prefer slightly adventurous picks over the obvious blockbusters: indie gems, foreign films, documentaries and cult classics that still fit the group's shared taste.

Reply with exactly one JSON object and nothing else, in this shape:
{
  "group_summary": "two or three sentences about the group's collective taste",
  "recommendations": [
    {"item": "Movie Title (Year)", "reason": "why this fits the group's pattern", "rank": 1}
  ],
  "individual_writeups": [
    {"name": "participant name", "taste_summary": "one line about this person's taste", "personal_recs": ["Movie A", "Movie B"]}
  ]
}
Give exactly 5 ranked group recommendations and 2 personal picks per person.`

func buildPrompt(participants []model.Participant) string {
	var b strings.Builder
	b.WriteString(promptHeader)
	b.WriteString("\n\nHere are the votes:\n")

	for _, p := range participants {
		fmt.Fprintf(&b, "\n%s:\n", p.Name)
		if len(p.Answers) == 0 {
			b.WriteString("- no answers submitted\n")
			continue
		}
		for _, answer := range p.Answers {
			title := answer.Title
			if title == model.EmptyTitle {
				title = answer.MovieID
			}
			fmt.Fprintf(&b, "- %s: %s\n", title, answer.Vote)
		}
	}

	return b.String()
}
