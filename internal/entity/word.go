package entity

import "strings"

// Placeholder marks a field for which no enrichment data was obtained.
const Placeholder = "-"

// WordRecord is one wordlist entry as consumed by the game frontend.
type WordRecord struct {
	Word         string `json:"word"`
	DefinitionZh string `json:"definition_zh"`
	Pos          string `json:"pos"`
}

// WordDetails is the part of a record produced by enrichment.
type WordDetails struct {
	DefinitionZh string `json:"definition_zh"`
	Pos          string `json:"pos"`
}

// PlaceholderDetails returns details with both fields set to Placeholder.
func PlaceholderDetails() WordDetails {
	return WordDetails{DefinitionZh: Placeholder, Pos: Placeholder}
}

// NewWordRecord combines a word with its details, filling blank fields with Placeholder.
func NewWordRecord(word string, details WordDetails) WordRecord {
	return WordRecord{
		Word:         word,
		DefinitionZh: orPlaceholder(details.DefinitionZh),
		Pos:          orPlaceholder(details.Pos),
	}
}

// Enriched reports whether the record carries any value obtained from enrichment.
func (r WordRecord) Enriched() bool {
	return r.DefinitionZh != Placeholder || r.Pos != Placeholder
}

func orPlaceholder(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return Placeholder
	}
	return s
}
