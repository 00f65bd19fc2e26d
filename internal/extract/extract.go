// Package extract turns a raw puzzle page into the structured fields the
// store persists. It is a pure mapping: no network, no filesystem, identical
// input gives identical output.
package extract

import (
	"strings"

	"github.com/PuerkitoBio/goquery"

	"aocbench/internal/domain"
)

// Fixed phrases the site renders once a part is solved. These change only if
// the site itself changes.
const (
	sentinelBothSolved    = "Both parts of this puzzle are complete!"
	sentinelPartOneSolved = "The first half of this puzzle is complete!"
	answerPhrase          = "Your puzzle answer was"
)

// Result is the partial puzzle record an HTML document yields. Input text is
// not part of it; the site serves input on a separate endpoint.
type Result struct {
	Title            string
	Part1Description string
	Part2Description string
	ExampleText      string
	Part1Solved      bool
	Part2Solved      bool
	Part1Answer      string
	Part2Answer      string
}

// Parse extracts a Result from a full puzzle HTML document.
func Parse(html string) (*Result, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, err
	}

	res := &Result{}

	heading := doc.Find("h2").First()
	if heading.Length() == 0 {
		return nil, &domain.MissingElementError{Element: "h2"}
	}
	res.Title = strings.TrimSpace(heading.Text())

	articles := doc.Find("article")
	if articles.Length() > 0 {
		res.Part1Description = strings.TrimSpace(articles.Eq(0).Text())
	}
	if articles.Length() > 1 {
		res.Part2Description = strings.TrimSpace(articles.Eq(1).Text())
	}

	example := doc.Find("pre").First()
	if example.Length() == 0 {
		return nil, &domain.MissingElementError{Element: "pre"}
	}
	res.ExampleText = example.Text()

	body := doc.Text()
	switch {
	case strings.Contains(body, sentinelBothSolved):
		res.Part1Solved = true
		res.Part2Solved = true
	case strings.Contains(body, sentinelPartOneSolved):
		res.Part1Solved = true
	}

	res.Part1Answer, res.Part2Answer = revealedAnswers(doc)
	return res, nil
}

// revealedAnswers scans paragraphs in document order for the answer phrase
// and takes the first code span of each. Zero, one, or two answers map to
// ("", ""), (a, ""), (a, b).
func revealedAnswers(doc *goquery.Document) (string, string) {
	var answers []string
	doc.Find("p").EachWithBreak(func(_ int, p *goquery.Selection) bool {
		if !strings.Contains(p.Text(), answerPhrase) {
			return true
		}
		answers = append(answers, strings.TrimSpace(p.Find("code").First().Text()))
		return len(answers) < 2
	})

	switch len(answers) {
	case 0:
		return "", ""
	case 1:
		return answers[0], ""
	default:
		return answers[0], answers[1]
	}
}
