package quizrules

import (
	"math/rand"
	"time"

	"campus_lms_backend/internal/model"
)

func defaultRand() *rand.Rand {
	return rand.New(rand.NewSource(time.Now().UnixNano()))
}

// ShuffleInPlace permutes items uniformly with a Fisher-Yates walk.
// A nil rng falls back to a time-seeded source; tests pass a seeded one.
func ShuffleInPlace[T any](items []T, rng *rand.Rand) {
	if rng == nil {
		rng = defaultRand()
	}
	for i := len(items) - 1; i > 0; i-- {
		j := rng.Intn(i + 1)
		items[i], items[j] = items[j], items[i]
	}
}

// Shuffle returns a uniformly shuffled copy, leaving the input untouched.
func Shuffle[T any](items []T, rng *rand.Rand) []T {
	out := make([]T, len(items))
	copy(out, items)
	ShuffleInPlace(out, rng)
	return out
}

// ShuffleQuestions randomizes question order for presentation. Option
// order inside each question is preserved: submitted answers reference
// options by stored position, so those must stay canonical.
func ShuffleQuestions(questions []model.QuizQuestion, rng *rand.Rand) []model.QuizQuestion {
	return Shuffle(questions, rng)
}

// ShuffleOptions randomizes a question's option order and rewrites the
// positions to match, with correctness flags travelling with each
// option. Callers that serve a shuffled order must also grade against
// it; answers indexed into the stored order would no longer line up.
func ShuffleOptions(options []model.QuizOption, rng *rand.Rand) []model.QuizOption {
	out := Shuffle(options, rng)
	for p := range out {
		out[p].Position = p
	}
	return out
}
