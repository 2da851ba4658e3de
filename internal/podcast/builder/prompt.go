package builder

import (
	"fmt"

	"podnest/internal/domain/script"
	"podnest/internal/domain/source"
)

// wordsPerMinute is the spoken-word rate used to turn a target duration
// into a target script length. 150 wpm is a common conversational pace.
const wordsPerMinute = 150

// maxSourceChars bounds the source excerpt included in the prompt.
// Longer sources are truncated from the start.
const maxSourceChars = 8000

var styleInstructions = map[script.Style]string{
	script.StyleConversational: "Create a natural, friendly conversation between two hosts discussing the document. They should build on each other's points, keep their turns roughly balanced, and occasionally ask clarifying questions.",
	script.StyleInterview:      "Create an interview format where Speaker 1 acts as the interviewer asking questions and Speaker 2 provides detailed answers drawn from the document.",
	script.StyleDebate:         "Create a thoughtful debate where the speakers take opposing positions on claims drawn from the document, maintaining respect while exploring both viewpoints.",
	script.StyleEducational:    "Create an educational discussion where Speaker 1 explains concepts from the document and Speaker 2 asks clarifying questions to help listeners follow complex topics.",
}

var durationGuidelines = map[int]string{
	5:  "Keep the conversation concise, focusing on 3-4 main points with brief explanations.",
	10: "Cover the key topics thoroughly with good explanations and examples.",
	15: "Provide comprehensive coverage with detailed discussions and multiple examples.",
	20: "Create an in-depth exploration with extensive analysis and supporting details.",
}

func buildPrompt(src source.Source, style script.Style, minutes int) string {
	excerpt := src.Text
	if len(excerpt) > maxSourceChars {
		excerpt = excerpt[:maxSourceChars]
	}

	targetWords := wordsPerMinute * minutes

	return fmt.Sprintf(`Using the following document, create a podcast script for two speakers: 'Speaker 1' and 'Speaker 2'.

STYLE GUIDELINES:
%s

DURATION GUIDELINES:
%s
Aim for roughly %d words of dialogue in total (a %d minute episode).

CONVERSATION RULES:
1. Each speaker should speak for 2-4 sentences maximum before alternating
2. The conversation should flow naturally with smooth transitions
3. Use engaging, conversational language that's easy to understand
4. Include brief introductions at the start and wrap-up at the end
5. Break down complex concepts into digestible explanations
6. Maintain professional grammar and punctuation throughout
7. Make it engaging for listeners who haven't read the document

RESPONSE FORMAT:
Respond with a valid JSON object containing a 'script' array. Each array element should be an object with either 'Speaker 1' or 'Speaker 2' as the key and their dialogue as the value.

Example format:
{
  "script": [
    {"Speaker 1": "Welcome everyone to our podcast! Today we're diving into some fascinating insights from this document..."},
    {"Speaker 2": "Thanks for having me! I'm really excited to discuss this topic. The first thing that caught my attention was..."}
  ]
}

DOCUMENT CONTENT:
%s

Generate an engaging %d minute podcast script now:`,
		styleInstructions[style], durationGuidelines[minutes], targetWords, minutes, excerpt, minutes)
}
