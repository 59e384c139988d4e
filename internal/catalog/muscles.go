package catalog

var muscleLabels = map[Muscle]string{
	MuscleChest:     "Pecho",
	MuscleBack:      "Espalda",
	MuscleShoulders: "Hombros",
	MuscleBiceps:    "Bíceps",
	MuscleTriceps:   "Tríceps",
	MuscleLegs:      "Piernas",
	MuscleGlutes:    "Glúteos",
	MuscleCore:      "Core",
	MuscleArms:      "Brazos",
	MuscleForearms:  "Antebrazos",
	MuscleUpperBack: "Espalda Alta",
}

// TranslateMuscle returns the display label of a muscle tag.
// Unknown tags are returned as they are.
func TranslateMuscle(m Muscle) string {
	if label, ok := muscleLabels[m]; ok {
		return label
	}
	return string(m)
}

type MuscleGroup struct {
	ID   Muscle `json:"id"`
	Name string `json:"name"`
}

// MuscleGroups lists the groups a user can browse the library by.
func MuscleGroups() []MuscleGroup {
	ids := []Muscle{
		MuscleChest,
		MuscleBack,
		MuscleShoulders,
		MuscleBiceps,
		MuscleTriceps,
		MuscleLegs,
		MuscleGlutes,
		MuscleCore,
	}
	groups := make([]MuscleGroup, 0, len(ids))
	for _, id := range ids {
		groups = append(groups, MuscleGroup{ID: id, Name: TranslateMuscle(id)})
	}
	return groups
}
