package routines

import (
	"slices"

	"github.com/2beens/gymroutines/internal/catalog"
)

var muscleGroupSplits = map[int][][]catalog.Muscle{
	3: {
		{catalog.MuscleChest, catalog.MuscleTriceps},
		{catalog.MuscleBack, catalog.MuscleBiceps},
		{catalog.MuscleLegs, catalog.MuscleShoulders},
	},
	4: {
		{catalog.MuscleChest},
		{catalog.MuscleBack},
		{catalog.MuscleLegs},
		{catalog.MuscleShoulders, catalog.MuscleArms},
	},
	5: {
		{catalog.MuscleChest},
		{catalog.MuscleBack},
		{catalog.MuscleLegs},
		{catalog.MuscleShoulders},
		{catalog.MuscleArms, catalog.MuscleCore},
	},
	6: {
		{catalog.MuscleChest},
		{catalog.MuscleBack},
		{catalog.MuscleLegs},
		{catalog.MuscleShoulders},
		{catalog.MuscleArms},
		{catalog.MuscleCore, catalog.MuscleGlutes},
	},
}

const defaultSplitDays = 3

// MuscleGroupSplit returns the muscles trained on each day for the given
// weekly frequency. Unsupported frequencies get the 3 day split.
func MuscleGroupSplit(daysPerWeek int) [][]catalog.Muscle {
	split, ok := muscleGroupSplits[daysPerWeek]
	if !ok {
		split = muscleGroupSplits[defaultSplitDays]
	}

	res := make([][]catalog.Muscle, len(split))
	for i, day := range split {
		res[i] = slices.Clone(day)
	}
	return res
}

// ExercisesPerSession is the exercise budget of a session, one per 10 minutes.
func ExercisesPerSession(minutesPerSession int) int {
	return minutesPerSession / 10
}
