package profile

import (
	"math"

	"github.com/2beens/gymroutines/internal/catalog"
)

const (
	lbToKg = 0.453592
	// inches to meters; applied to heights given in feet as well, see DESIGN.md
	heightFtToM = 0.0254

	// loads are rounded to the smallest common plate increment
	LoadStep = 2.5
)

type Range struct {
	Min int `json:"min"`
	Max int `json:"max"`
}

// RepRange is the recommended reps per set for the goal.
// Unknown goals get the hypertrophy row.
func RepRange(goal Goal) Range {
	switch goal {
	case GoalStrength:
		return Range{Min: 4, Max: 6}
	case GoalEndurance:
		return Range{Min: 15, Max: 20}
	case GoalToning, GoalWeightLoss:
		return Range{Min: 12, Max: 15}
	default:
		return Range{Min: 8, Max: 12}
	}
}

func SetRange(goal Goal) Range {
	switch goal {
	case GoalStrength:
		return Range{Min: 3, Max: 5}
	case GoalEndurance:
		return Range{Min: 2, Max: 3}
	case GoalWeightLoss:
		return Range{Min: 3, Max: 5}
	default:
		return Range{Min: 3, Max: 4}
	}
}

// RestRange is the recommended rest between sets, in seconds.
func RestRange(goal Goal) Range {
	switch goal {
	case GoalStrength:
		return Range{Min: 120, Max: 180}
	case GoalEndurance:
		return Range{Min: 30, Max: 45}
	case GoalToning:
		return Range{Min: 45, Max: 60}
	case GoalWeightLoss:
		return Range{Min: 30, Max: 60}
	default:
		return Range{Min: 60, Max: 90}
	}
}

// BMI returns the body mass index rounded to one decimal,
// or 0 when weight or height are not set.
func BMI(p UserProfile) float64 {
	if p.Weight <= 0 || p.Height <= 0 {
		return 0
	}

	weightKg := p.WeightKg()
	heightM := p.Height / 100
	if p.HeightUnit == HeightUnitFt {
		heightM = p.Height * heightFtToM
	}

	return roundTo(weightKg/(heightM*heightM), 1)
}

type BMICategory string

const (
	BMIUnderweight BMICategory = "Bajo peso"
	BMINormal      BMICategory = "Peso normal"
	BMIOverweight  BMICategory = "Sobrepeso"
	BMIObese1      BMICategory = "Obesidad grado 1"
	BMIObese2      BMICategory = "Obesidad grado 2"
	BMIObese3      BMICategory = "Obesidad grado 3"
)

func CategoryForBMI(bmi float64) BMICategory {
	switch {
	case bmi < 18.5:
		return BMIUnderweight
	case bmi < 25:
		return BMINormal
	case bmi < 30:
		return BMIOverweight
	case bmi < 35:
		return BMIObese1
	case bmi < 40:
		return BMIObese2
	default:
		return BMIObese3
	}
}

var levelLoadMultiplier = map[Level]float64{
	LevelBeginner:     0.7,
	LevelIntermediate: 0.85,
	LevelAdvanced:     1.0,
}

var difficultyLoadMultiplier = map[catalog.Difficulty]float64{
	catalog.DifficultyBeginner:     0.9,
	catalog.DifficultyIntermediate: 1.0,
	catalog.DifficultyAdvanced:     1.2,
}

// StartingWeight estimates the first working load for the exercise, in the
// profile's weight unit scale (kg based). The formula is a fixed heuristic.
func StartingWeight(p UserProfile, ex catalog.Exercise) float64 {
	bodyWeight := p.Weight
	if p.WeightUnit != WeightUnitKg {
		bodyWeight = p.Weight * lbToKg
	}

	baseMultiplier := 0.10
	minWeight := 2.5
	if p.Gender == GenderMale {
		baseMultiplier = 0.15
		minWeight = 5
	}

	levelValue, ok := levelLoadMultiplier[p.Level]
	if !ok {
		levelValue = levelLoadMultiplier[LevelBeginner]
	}
	difficultyValue, ok := difficultyLoadMultiplier[ex.Difficulty]
	if !ok {
		difficultyValue = 1.0
	}
	muscleValue := 1.0
	if ex.PrimaryMuscle == catalog.MuscleLegs {
		muscleValue = 1.5
	}

	weight := bodyWeight * baseMultiplier * levelValue * difficultyValue * muscleValue
	return math.Max(RoundToStep(weight, LoadStep), minWeight)
}

// RoundToStep rounds v to the nearest multiple of step, halves going up.
func RoundToStep(v, step float64) float64 {
	return math.Floor(v/step+0.5) * step
}

func roundTo(v float64, decimals int) float64 {
	pow := math.Pow(10, float64(decimals))
	return math.Round(v*pow) / pow
}
