package catalog

import "slices"

// Muscle is an internal muscle group tag, e.g. chest, legs, upperback.
type Muscle string

const (
	MuscleChest     Muscle = "chest"
	MuscleBack      Muscle = "back"
	MuscleShoulders Muscle = "shoulders"
	MuscleBiceps    Muscle = "biceps"
	MuscleTriceps   Muscle = "triceps"
	MuscleLegs      Muscle = "legs"
	MuscleGlutes    Muscle = "glutes"
	MuscleCore      Muscle = "core"
	MuscleArms      Muscle = "arms"
	MuscleForearms  Muscle = "forearms"
	MuscleUpperBack Muscle = "upperback"
)

func (m Muscle) String() string {
	return string(m)
}

// Difficulty is the exercise tier, ordered beginner < intermediate < advanced.
type Difficulty string

const (
	DifficultyBeginner     Difficulty = "beginner"
	DifficultyIntermediate Difficulty = "intermediate"
	DifficultyAdvanced     Difficulty = "advanced"
)

// Rank maps the tier onto {0,1,2}. Unknown tiers rank as beginner.
func (d Difficulty) Rank() int {
	switch d {
	case DifficultyIntermediate:
		return 1
	case DifficultyAdvanced:
		return 2
	default:
		return 0
	}
}

func (d Difficulty) IsValid() bool {
	switch d {
	case DifficultyBeginner, DifficultyIntermediate, DifficultyAdvanced:
		return true
	default:
		return false
	}
}

type Exercise struct {
	ID                string     `json:"id" toml:"id"`
	Name              string     `json:"name" toml:"name"`
	PrimaryMuscle     Muscle     `json:"primaryMuscle" toml:"primary_muscle"`
	SecondaryMuscles  []Muscle   `json:"secondaryMuscles" toml:"secondary_muscles"`
	Difficulty        Difficulty `json:"difficulty" toml:"difficulty"`
	Equipment         []string   `json:"equipment" toml:"equipment"`
	GifURL            string     `json:"gifUrl" toml:"gif_url"`
	Description       string     `json:"description" toml:"description"`
	CommonMistakes    []string   `json:"commonMistakes" toml:"common_mistakes"`
	SafetyTips        []string   `json:"safetyTips" toml:"safety_tips"`
	Contraindications []string   `json:"contraindications" toml:"contraindications"`
}

// Targets reports whether the exercise works the muscle, either as primary or secondary.
func (e Exercise) Targets(m Muscle) bool {
	return e.PrimaryMuscle == m || slices.Contains(e.SecondaryMuscles, m)
}

// ContraindicatedFor reports whether any of the given injury tags is listed
// in the exercise contraindications.
func (e Exercise) ContraindicatedFor(injuries []string) bool {
	for _, injury := range injuries {
		if slices.Contains(e.Contraindications, injury) {
			return true
		}
	}
	return false
}

// Clone returns a copy that shares no slices with e.
func (e Exercise) Clone() Exercise {
	c := e
	c.SecondaryMuscles = slices.Clone(e.SecondaryMuscles)
	c.Equipment = slices.Clone(e.Equipment)
	c.CommonMistakes = slices.Clone(e.CommonMistakes)
	c.SafetyTips = slices.Clone(e.SafetyTips)
	c.Contraindications = slices.Clone(e.Contraindications)
	return c
}
