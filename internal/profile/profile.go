package profile

import (
	"maps"
	"sort"
)

type WeightUnit string

const (
	WeightUnitKg WeightUnit = "kg"
	WeightUnitLb WeightUnit = "lb"
)

type HeightUnit string

const (
	HeightUnitCm HeightUnit = "cm"
	HeightUnitFt HeightUnit = "ft"
)

type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
)

type Level string

const (
	LevelBeginner     Level = "beginner"
	LevelIntermediate Level = "intermediate"
	LevelAdvanced     Level = "advanced"
)

// Rank maps the level onto {0,1,2}, the same scale as exercise difficulty.
func (l Level) Rank() int {
	switch l {
	case LevelIntermediate:
		return 1
	case LevelAdvanced:
		return 2
	default:
		return 0
	}
}

type Goal string

const (
	GoalHypertrophy Goal = "hypertrophy"
	GoalStrength    Goal = "strength"
	GoalEndurance   Goal = "endurance"
	GoalWeightLoss  Goal = "weightloss"
	GoalToning      Goal = "toning"
)

// DisplayName is the label used when naming generated routines.
func (g Goal) DisplayName() string {
	switch g {
	case GoalHypertrophy:
		return "Hipertrofia"
	case GoalStrength:
		return "Fuerza"
	case GoalEndurance:
		return "Resistencia"
	case GoalWeightLoss:
		return "Pérdida de Peso"
	default:
		return "Tonificación"
	}
}

// Body-region injury tags. Exercise contraindications use the same tags.
const (
	InjuryShoulder = "shoulder"
	InjuryElbow    = "elbow"
	InjuryWrist    = "wrist"
	InjuryBack     = "back"
	InjuryKnee     = "knee"
	InjuryAnkle    = "ankle"
)

type UserProfile struct {
	ID         string          `json:"id"`
	Name       string          `json:"name"`
	Weight     float64         `json:"weight"`
	WeightUnit WeightUnit      `json:"weightUnit"`
	Height     float64         `json:"height"`
	HeightUnit HeightUnit      `json:"heightUnit"`
	Age        int             `json:"age"`
	Gender     Gender          `json:"gender"`
	Level      Level           `json:"level"`
	Goal       Goal            `json:"goal"`
	Injuries   map[string]bool `json:"injuries"`
}

// Default is the profile a fresh installation starts with.
func Default() UserProfile {
	return UserProfile{
		WeightUnit: WeightUnitKg,
		HeightUnit: HeightUnitCm,
		Gender:     GenderMale,
		Level:      LevelBeginner,
		Goal:       GoalHypertrophy,
		Injuries: map[string]bool{
			InjuryShoulder: false,
			InjuryElbow:    false,
			InjuryWrist:    false,
			InjuryBack:     false,
			InjuryKnee:     false,
			InjuryAnkle:    false,
		},
	}
}

// ActiveInjuries returns the flagged body regions, sorted.
func (p UserProfile) ActiveInjuries() []string {
	var active []string
	for region, injured := range p.Injuries {
		if injured {
			active = append(active, region)
		}
	}
	sort.Strings(active)
	return active
}

func (p UserProfile) IsComplete() bool {
	return p.Name != "" && p.Weight > 0 && p.Height > 0 && p.Age > 0
}

// WeightKg converts the body weight to kilograms.
func (p UserProfile) WeightKg() float64 {
	if p.WeightUnit == WeightUnitLb {
		return p.Weight * lbToKg
	}
	return p.Weight
}

func (p UserProfile) Clone() UserProfile {
	c := p
	c.Injuries = maps.Clone(p.Injuries)
	return c
}
