package similarity

import (
	"context"
	"math"
	"regexp"
	"strings"
)

// tokenRe keeps word tokens of at least two word characters, matching the
// tokenization the scoring heuristics were tuned against.
var tokenRe = regexp.MustCompile(`\b\w\w+\b`)

// TFIDFProvider computes pairwise cosine similarity over smoothed TF-IDF
// vectors built from just the two input documents. It needs no network or
// credentials and is the fallback when no embedding backend is configured.
type TFIDFProvider struct{}

// Name identifies the provider in reports.
func (TFIDFProvider) Name() string { return "tfidf" }

// Similarity returns the cosine similarity of the two texts in [0, 1].
// Either input being empty yields 0 without error.
func (TFIDFProvider) Similarity(_ context.Context, a, b string) (float64, error) {
	ta := tokenize(a)
	tb := tokenize(b)
	if len(ta) == 0 || len(tb) == 0 {
		return 0, nil
	}

	vocab := make(map[string]int)
	for _, t := range ta {
		if _, ok := vocab[t]; !ok {
			vocab[t] = len(vocab)
		}
	}
	for _, t := range tb {
		if _, ok := vocab[t]; !ok {
			vocab[t] = len(vocab)
		}
	}

	va := termCounts(ta, vocab)
	vb := termCounts(tb, vocab)

	// smoothed inverse document frequency over the two-document corpus
	for _, idx := range vocab {
		df := 0
		if va[idx] > 0 {
			df++
		}
		if vb[idx] > 0 {
			df++
		}
		idf := math.Log(float64(1+2)/float64(1+df)) + 1
		va[idx] *= idf
		vb[idx] *= idf
	}

	normalize(va)
	normalize(vb)

	return clamp01(dot(va, vb)), nil
}

func tokenize(s string) []string {
	return tokenRe.FindAllString(strings.ToLower(s), -1)
}

func termCounts(tokens []string, vocab map[string]int) []float64 {
	v := make([]float64, len(vocab))
	for _, t := range tokens {
		v[vocab[t]]++
	}
	return v
}

func normalize(v []float64) {
	var sum float64
	for _, x := range v {
		sum += x * x
	}
	if sum == 0 {
		return
	}
	n := math.Sqrt(sum)
	for i := range v {
		v[i] /= n
	}
}

func dot(a, b []float64) float64 {
	var s float64
	for i := range a {
		s += a[i] * b[i]
	}
	return s
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
