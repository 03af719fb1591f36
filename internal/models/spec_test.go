package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseSetsSpec(t *testing.T) {
	tests := []struct {
		name      string
		spec      string
		wantSets  int
		wantRange string
	}{
		{"standard", "3 x 8-12", 3, "8-12"},
		{"no spaces", "4x6", 4, "6"},
		{"uppercase x", "5 X 5", 5, "5"},
		{"single set", "1 x 5", 1, "5"},
		{"amrap range", "2 x AMRAP", 2, "AMRAP"},
		{"missing count", "x 10", DefaultSets, "x 10"},
		{"no separator", "until failure", DefaultSets, "until failure"},
		{"non numeric count", "a few x 10", DefaultSets, "a few x 10"},
		{"zero sets", "0 x 10", DefaultSets, "0 x 10"},
		{"empty", "", DefaultSets, ""},
		{"whitespace", "  3 x 8-12  ", 3, "8-12"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sets, repRange := ParseSetsSpec(tt.spec)
			assert.Equal(t, tt.wantSets, sets)
			assert.Equal(t, tt.wantRange, repRange)
		})
	}
}

func TestParseRestSpec(t *testing.T) {
	tests := []struct {
		name string
		spec string
		want int
	}{
		{"seconds", "90 sec", 90},
		{"seconds long", "45 seconds", 45},
		{"minutes", "2 min", 120},
		{"minutes long", "3 minutes", 180},
		{"none", "N/A", 0},
		{"none lowercase", "n/a", 0},
		{"unparseable", "a while", DefaultRestSeconds},
		{"bare number", "90", DefaultRestSeconds},
		{"unknown unit", "2 parsecs", DefaultRestSeconds},
		{"negative", "-5 sec", DefaultRestSeconds},
		{"empty", "", DefaultRestSeconds},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseRestSpec(tt.spec))
		})
	}
}

func TestPlanExercisesPreservesOrder(t *testing.T) {
	specs := []ExerciseSpec{
		{ID: "a", Name: "Squat", SetsSpec: "3 x 5", RestSpec: "2 min"},
		{ID: "b", Name: "Plank", SetsSpec: "3 x 30s hold", RestSpec: "N/A"},
		{ID: "c", Name: "Curl", SetsSpec: "??", RestSpec: "??"},
	}

	plans := PlanExercises(specs)

	assert.Len(t, plans, 3)
	assert.Equal(t, "a", plans[0].Spec.ID)
	assert.Equal(t, 3, plans[0].TotalSets)
	assert.Equal(t, 120, plans[0].RestSeconds)
	assert.Equal(t, 0, plans[1].RestSeconds)
	assert.Equal(t, DefaultSets, plans[2].TotalSets)
	assert.Equal(t, DefaultRestSeconds, plans[2].RestSeconds)
}
