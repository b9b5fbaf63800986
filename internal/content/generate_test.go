package content

import (
	"math/rand"
	"strings"
	"testing"
)

func baseQuestions(n int) []Question {
	qs := make([]Question, n)
	for i := range qs {
		qs[i] = Question{
			LectureID:    "1",
			Prompt:       "base",
			Category:     "c",
			Difficulty:   DifficultyMedium,
			Options:      []string{"a", "b", "c"},
			CorrectIndex: 1,
		}
	}
	return qs
}

func TestGenerateQuestionSetPadsToTarget(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	got := GenerateQuestionSet(rng, baseQuestions(3), 10)

	if len(got) != 10 {
		t.Fatalf("got %d questions, want 10", len(got))
	}

	variants := 0
	for _, q := range got {
		if strings.Contains(q.Prompt, "(Variant") {
			variants++
		}
		// Variants never touch options or the correct index.
		if len(q.Options) != 3 || q.CorrectIndex != 1 {
			t.Errorf("variant altered options/correct: %+v", q)
		}
	}
	if variants != 7 {
		t.Errorf("got %d variants, want 7", variants)
	}
}

func TestGenerateQuestionSetTruncates(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	got := GenerateQuestionSet(rng, baseQuestions(20), 5)

	if len(got) != 5 {
		t.Errorf("got %d questions, want 5", len(got))
	}
	for _, q := range got {
		if strings.Contains(q.Prompt, "(Variant") {
			t.Error("no variants expected when base covers the target")
		}
	}
}

func TestGenerateQuestionSetDeterministic(t *testing.T) {
	a := GenerateQuestionSet(rand.New(rand.NewSource(42)), baseQuestions(4), 12)
	b := GenerateQuestionSet(rand.New(rand.NewSource(42)), baseQuestions(4), 12)

	if len(a) != len(b) {
		t.Fatalf("lengths differ: %d vs %d", len(a), len(b))
	}
	for i := range a {
		if a[i].Prompt != b[i].Prompt || a[i].LectureID != b[i].LectureID || a[i].Difficulty != b[i].Difficulty {
			t.Errorf("index %d differs for equal seeds: %+v vs %+v", i, a[i], b[i])
		}
	}
}

func TestGenerateQuestionSetEmptyBase(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	if got := GenerateQuestionSet(rng, nil, 10); got != nil {
		t.Errorf("got %v for empty base, want nil", got)
	}
	if got := GenerateQuestionSet(rng, baseQuestions(2), 0); got != nil {
		t.Errorf("got %v for zero target, want nil", got)
	}
}

func TestGenerateQuestionSetDoesNotMutateBase(t *testing.T) {
	base := baseQuestions(2)
	rng := rand.New(rand.NewSource(7))
	GenerateQuestionSet(rng, base, 8)

	for i, q := range base {
		if q.Prompt != "base" || q.LectureID != "1" {
			t.Errorf("base[%d] mutated: %+v", i, q)
		}
	}
}
