// Package fuzzy computes similarity features between a full name and an
// email local-part. Extraction is pure and total: malformed input degrades
// to zero scores, never to an error.
package fuzzy

import (
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/agnivade/levenshtein"

	"github.com/inancsarica/cv-name-email-verification/internal/constants"
	"github.com/inancsarica/cv-name-email-verification/internal/domain"
	"github.com/inancsarica/cv-name-email-verification/internal/normalize"
	"github.com/inancsarica/cv-name-email-verification/internal/util"
)

type Extractor struct{}

func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract tokenizes both inputs, scores every (local token, name token) pair,
// averages the two best scores, adds a whole-string score, and combines them
// with fixed weights.
func (e *Extractor) Extract(fullName, email string) domain.FuzzyFeatures {
	local := normalize.ExtractLocalPart(email)
	localTokens := normalize.TokenizeLocalPart(local)
	nameTokens := normalize.TokenizeFullName(fullName)

	tokenScoreTop2Avg := topTwoAverage(pairScores(localTokens, nameTokens))

	stringScore := Ratio(
		normalize.NormalizeText(local),
		normalize.NormalizeText(strings.Join(nameTokens, " ")),
	)

	combined := constants.FuzzyWeights.TokenScore*tokenScoreTop2Avg +
		constants.FuzzyWeights.StringScore*stringScore

	return domain.FuzzyFeatures{
		TokenScoreTop2Avg:  util.Round2(tokenScoreTop2Avg),
		StringScore:        util.Round2(stringScore),
		FuzzyCombinedScore: util.Round2(combined),
		GenericEmail:       normalize.IsGenericEmail(localTokens),
		LocalTokens:        localTokens,
		NameTokens:         nameTokens,
	}
}

// Ratio is a 0-100 similarity based on Levenshtein distance normalized by the
// longer input. Two empty strings are treated as identical.
func Ratio(a, b string) float64 {
	longest := utf8.RuneCountInString(a)
	if n := utf8.RuneCountInString(b); n > longest {
		longest = n
	}
	if longest == 0 {
		return 100
	}
	distance := levenshtein.ComputeDistance(a, b)
	return 100 * (1 - float64(distance)/float64(longest))
}

// pairScores scores the full cross-product of local and name tokens. An empty
// cross-product yields the degenerate score set {0}.
func pairScores(localTokens, nameTokens []string) []float64 {
	if len(localTokens) == 0 || len(nameTokens) == 0 {
		return []float64{0}
	}

	scores := make([]float64, 0, len(localTokens)*len(nameTokens))
	for _, lt := range localTokens {
		for _, nt := range nameTokens {
			scores = append(scores, Ratio(lt, nt))
		}
	}
	return scores
}

func topTwoAverage(scores []float64) float64 {
	sort.Sort(sort.Reverse(sort.Float64Slice(scores)))
	top := scores
	if len(top) > 2 {
		top = top[:2]
	}
	sum := 0.0
	for _, s := range top {
		sum += s
	}
	return sum / float64(len(top))
}
