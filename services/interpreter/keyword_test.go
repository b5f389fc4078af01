package interpreter

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInterpretCategoryDetection(t *testing.T) {
	k := NewKeywordInterpreter()

	cases := []struct {
		query    string
		category string
	}{
		{"my tap is leaking", "plumbing"},
		{"need someone to fix my UPS wiring", "electrical"},
		{"split ac gas refill and install", "ac_repair"},
		{"deep cleaning for my sofa and carpet", "cleaning"},
		{"car engine making noise, need a mechanic", "auto_mechanic"},
		{"physics tutor for O level exam", "home_tutor"},
	}
	for _, tc := range cases {
		out, err := k.Interpret(context.Background(), tc.query)
		require.NoError(t, err)
		assert.Equal(t, tc.category, out.CategoryID, "query %q", tc.query)
		assert.Equal(t, "Matched keywords in query", out.Reasoning)
	}
}

func TestInterpretNoCategory(t *testing.T) {
	k := NewKeywordInterpreter()

	out, err := k.Interpret(context.Background(), "hello there")
	require.NoError(t, err)
	assert.Empty(t, out.CategoryID)
	assert.Equal(t, "No specific category matched", out.Reasoning)
}

func TestInterpretLocationDetection(t *testing.T) {
	k := NewKeywordInterpreter()

	out, err := k.Interpret(context.Background(), "plumber in Lahore")
	require.NoError(t, err)
	assert.Equal(t, "Lahore", out.DetectedLocation)

	// Known areas are recognized when no city is named, capitalized.
	out, err = k.Interpret(context.Background(), "ac service near gulberg")
	require.NoError(t, err)
	assert.Equal(t, "Gulberg", out.DetectedLocation)

	out, err = k.Interpret(context.Background(), "car repair")
	require.NoError(t, err)
	assert.Empty(t, out.DetectedLocation)
}

func TestInterpretSuggestedTerm(t *testing.T) {
	k := NewKeywordInterpreter()

	// Stop words and the detected location drop out of the search term.
	out, err := k.Interpret(context.Background(), "I need a plumber in Lahore")
	require.NoError(t, err)
	assert.Equal(t, "a plumber", out.SuggestedTerm)

	out, err = k.Interpret(context.Background(), "fix my ac")
	require.NoError(t, err)
	assert.Equal(t, "ac", out.SuggestedTerm)

	// When filtering leaves nothing and no category matched, the raw query
	// carries through.
	out, err = k.Interpret(context.Background(), "fix at gulberg")
	require.NoError(t, err)
	assert.Equal(t, "fix at gulberg", out.SuggestedTerm)
}

func TestEnhanceBioTemplate(t *testing.T) {
	k := NewKeywordInterpreter()

	out, err := k.EnhanceBio(context.Background(), "10 years on the job.", "Ahmed", "plumber")
	require.NoError(t, err)
	assert.Contains(t, out, "Hi, I'm Ahmed, a professional plumber.")
	assert.Contains(t, out, "10 years on the job.")
	assert.Contains(t, out, "Verified by HireMe.")
}
