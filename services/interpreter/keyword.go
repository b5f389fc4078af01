package interpreter

import (
	"context"
	"fmt"
	"strings"

	"hireme/models"
)

// categoryKeywords scores free text against each category id.
var categoryKeywords = map[string][]string{
	"plumbing":      {"plumber", "plumbing", "leak", "pipe", "tap", "sink", "water", "drain", "faucet", "flush", "toilet"},
	"electrical":    {"electric", "wiring", "light", "fan", "switch", "ups", "generator", "voltage", "circuit", "power", "bulb"},
	"ac_repair":     {"ac", "air cond", "cooling", "service", "gas", "install", "split", "inverter", "maintenance", "heat", "vent"},
	"cleaning":      {"clean", "dust", "maid", "sweep", "wash", "housekeeping", "janitor", "sofa", "carpet", "deep"},
	"auto_mechanic": {"car", "mechanic", "auto", "repair", "oil", "engine", "brake", "tuning", "tyre", "tire", "vehicle"},
	"home_tutor":    {"tutor", "teach", "study", "math", "science", "school", "grade", "exam", "physics", "chemistry", "english"},
}

// commonAreas is the fallback location list checked when no known city
// appears in the query.
var commonAreas = []string{"gulberg", "clifton", "dha", "bahria", "f-10", "johar"}

var stopWords = map[string]bool{
	"in": true, "at": true, "near": true, "fix": true, "my": true, "i": true,
	"want": true, "need": true, "someone": true, "to": true, "please": true,
}

// KeywordInterpreter is the built-in keyword-scoring implementation of
// QueryInterpreter. It needs no external service and is the degraded-mode
// fallback for the Gemini implementation.
type KeywordInterpreter struct{}

// NewKeywordInterpreter returns the keyword-scoring interpreter.
func NewKeywordInterpreter() *KeywordInterpreter {
	return &KeywordInterpreter{}
}

// Interpret detects a location, scores the query against the category
// keyword table and derives a cleaned search term.
func (k *KeywordInterpreter) Interpret(_ context.Context, freeText string) (Interpretation, error) {
	query := strings.ToLower(freeText)

	location := detectLocation(query)
	categoryID := detectCategory(query)

	reasoning := "No specific category matched"
	if categoryID != "" {
		reasoning = "Matched keywords in query"
	}

	term := cleanTerm(freeText, location)
	if term == "" {
		if cat, ok := models.CategoryByID(categoryID); ok {
			term = cat.Name
		} else {
			term = freeText
		}
	}

	return Interpretation{
		CategoryID:       categoryID,
		Reasoning:        reasoning,
		SuggestedTerm:    term,
		DetectedLocation: location,
	}, nil
}

// EnhanceBio produces the template rewrite used when no language model is
// configured.
func (k *KeywordInterpreter) EnhanceBio(_ context.Context, bio, name, profession string) (string, error) {
	return fmt.Sprintf("Hi, I'm %s, a professional %s. %s I am dedicated to providing high-quality service with a focus on customer satisfaction and timely completion. Verified by HireMe.", name, profession, bio), nil
}

func detectLocation(query string) string {
	for _, city := range models.Cities {
		if strings.Contains(query, strings.ToLower(city)) {
			return city
		}
	}
	for _, area := range commonAreas {
		if strings.Contains(query, area) {
			return strings.ToUpper(area[:1]) + area[1:]
		}
	}
	return ""
}

func detectCategory(query string) string {
	best := ""
	maxScore := 0
	for _, cat := range models.Categories() {
		score := 0
		for _, word := range categoryKeywords[cat.ID] {
			if strings.Contains(query, word) {
				score++
			}
		}
		if score > maxScore {
			maxScore = score
			best = cat.ID
		}
	}
	return best
}

// cleanTerm strips the detected location and common stop words from the
// original query.
func cleanTerm(freeText, location string) string {
	var kept []string
	for _, word := range strings.Fields(freeText) {
		lower := strings.ToLower(strings.Trim(word, ".,!?"))
		if stopWords[lower] {
			continue
		}
		if location != "" && strings.Contains(strings.ToLower(location), lower) {
			continue
		}
		kept = append(kept, word)
	}
	return strings.TrimSpace(strings.Join(kept, " "))
}
