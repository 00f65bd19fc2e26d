package domain

import "strings"

// ResponseType categorizes the puzzle site's reply to a submission.
type ResponseType string

const (
	ResponseCorrect    ResponseType = "correct"
	ResponseTooHigh    ResponseType = "incorrect_too_high"
	ResponseTooLow     ResponseType = "incorrect_too_low"
	ResponseWrongLevel ResponseType = "wrong_level"
	ResponseTooSoon    ResponseType = "too_soon"
	ResponseIncorrect  ResponseType = "incorrect"
	ResponseOther      ResponseType = "other"
)

// classifierRules are checked in order; the first matching substring wins.
// "too high"/"too low" come before the generic "not the right answer"
// because the site embeds all three in the same sentence.
var classifierRules = []struct {
	phrase string
	rtype  ResponseType
}{
	{"That's the right answer", ResponseCorrect},
	{"answer is too high", ResponseTooHigh},
	{"answer is too low", ResponseTooLow},
	// Matched without the leading "You" so capitalization at sentence
	// start doesn't matter.
	{"don't seem to be solving the right level", ResponseWrongLevel},
	{"You gave an answer too recently", ResponseTooSoon},
	{"That's not the right answer", ResponseIncorrect},
}

// Classify maps a submission response body to a ResponseType. Pure over the
// body; deciding what "correct" means is the ledger's job.
func Classify(body string) ResponseType {
	for _, rule := range classifierRules {
		if strings.Contains(body, rule.phrase) {
			return rule.rtype
		}
	}
	return ResponseOther
}
