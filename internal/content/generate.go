package content

import (
	"fmt"
	"math/rand"
)

// variantLectureCount is the lecture id range assigned to synthesized
// variants, matching the base catalog's smallest subject.
const variantLectureCount = 5

// GenerateQuestionSet pads base questions up to targetCount by cloning with
// randomized metadata, then shuffles. This is a deliberate low-fidelity
// filler for subjects whose content files are thin; variants keep the base
// question's options and correct index untouched and only randomize the
// lecture tag and difficulty, with a variant marker appended to the prompt.
// The rng parameter makes the output deterministic for a fixed seed.
func GenerateQuestionSet(rng *rand.Rand, base []Question, targetCount int) []Question {
	if len(base) == 0 || targetCount <= 0 {
		return nil
	}

	questions := make([]Question, len(base))
	copy(questions, base)

	for len(questions) < targetCount {
		src := base[len(questions)%len(base)]
		variant := src
		variant.LectureID = fmt.Sprintf("%d", rng.Intn(variantLectureCount)+1)
		variant.Prompt = fmt.Sprintf("%s (Variant %d)", src.Prompt, len(questions)/len(base)+1)
		variant.Difficulty = Difficulties[rng.Intn(len(Difficulties))]
		questions = append(questions, variant)
	}

	questions = questions[:targetCount]
	Shuffle(rng, questions)
	return questions
}

// Shuffle permutes questions in place using rng.
func Shuffle(rng *rand.Rand, questions []Question) {
	rng.Shuffle(len(questions), func(i, j int) {
		questions[i], questions[j] = questions[j], questions[i]
	})
}
