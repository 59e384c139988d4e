package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	c, err := Default()
	require.NoError(t, err)
	assert.Equal(t, 13, c.Len())

	press, err := c.Lookup("db-bench-press")
	require.NoError(t, err)
	assert.Equal(t, MuscleChest, press.PrimaryMuscle)
	assert.Equal(t, DifficultyIntermediate, press.Difficulty)
	assert.Equal(t, []Muscle{MuscleTriceps, MuscleShoulders}, press.SecondaryMuscles)
	assert.NotEmpty(t, press.GifURL)

	// every built-in exercise uses known tags
	for _, ex := range c.All() {
		assert.True(t, ex.Difficulty.IsValid(), ex.ID)
		assert.NotEqual(t, string(ex.PrimaryMuscle), TranslateMuscle(ex.PrimaryMuscle), ex.ID)
	}

	assert.NotEmpty(t, c.FilterSafe([]string{"shoulder", "knee", "back"}))
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.toml")
	data := `
[[exercise]]
id = "a"
name = "A"
primary_muscle = "core"
difficulty = "beginner"

[[exercise]]
id = "b"
name = "B"
primary_muscle = "legs"
secondary_muscles = ["glutes"]
difficulty = "advanced"
contraindications = ["knee"]
`
	require.NoError(t, os.WriteFile(path, []byte(data), 0o600))

	c, err := LoadFile(path)
	require.NoError(t, err)
	require.Equal(t, 2, c.Len())
	assert.Equal(t, []string{"a"}, ids(c.FilterSafe([]string{"knee"})))

	_, err = LoadFile(filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(t, err)
}

func TestParse_Invalid(t *testing.T) {
	_, err := Parse([]byte(`[[exercise]]
id = "a"
difficulty = "godlike"`))
	assert.ErrorContains(t, err, "invalid difficulty")

	_, err = Parse([]byte(`not toml = = =`))
	assert.ErrorContains(t, err, "decode catalog")

	_, err = Parse([]byte(`[[exercise]]
id = "a"
difficulty = "beginner"
[[exercise]]
id = "a"
difficulty = "beginner"`))
	assert.ErrorIs(t, err, ErrDuplicateExercise)
}
