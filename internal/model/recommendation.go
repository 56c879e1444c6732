package model

import "encoding/json"

type RecommendationResult struct {
	GroupSummary       string       `json:"group_summary"`
	Recommendations    []RankedPick `json:"recommendations"`
	IndividualWriteups []Writeup    `json:"individual_writeups"`
}

type RankedPick struct {
	Item   string `json:"item"`
	Reason string `json:"reason"`
	Rank   int    `json:"rank"`
}

type Writeup struct {
	Name         string   `json:"name"`
	TasteSummary string   `json:"taste_summary"`
	PersonalRecs []string `json:"personal_recs"`
}

// DecodeRecommendation parses a stored results blob. Unreadable blobs count as absent.
func DecodeRecommendation(raw []byte) *RecommendationResult {
	if len(raw) == 0 {
		return nil
	}
	var res RecommendationResult
	if err := json.Unmarshal(raw, &res); err != nil {
		return nil
	}
	return &res
}
