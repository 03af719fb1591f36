package models

import (
	"strconv"
	"strings"
)

const (
	// DefaultSets is used whenever a sets spec cannot be parsed.
	DefaultSets = 3
	// DefaultRestSeconds is used whenever a rest spec cannot be parsed.
	DefaultRestSeconds = 90
)

// ParseSetsSpec resolves a free-form sets spec like "3 x 8-12" into a set
// count and a target rep range. The leading integer before the "x" is the set
// count; anything after it is the rep range. Malformed input falls back to
// DefaultSets with the whole string kept as the rep range.
func ParseSetsSpec(spec string) (totalSets int, targetRepRange string) {
	trimmed := strings.TrimSpace(spec)

	before, after, found := cutAnyFold(trimmed, "x")
	if !found {
		return DefaultSets, trimmed
	}

	n, err := strconv.Atoi(strings.TrimSpace(before))
	if err != nil || n < 1 {
		return DefaultSets, trimmed
	}

	return n, strings.TrimSpace(after)
}

// ParseRestSpec resolves a free-form rest spec into seconds:
// "N/A" means no rest at all (0), "<n> min" means n×60, "<n> sec" means n.
// Anything unparseable falls back to DefaultRestSeconds.
func ParseRestSpec(spec string) int {
	trimmed := strings.TrimSpace(spec)
	if strings.EqualFold(trimmed, "n/a") {
		return 0
	}

	fields := strings.Fields(trimmed)
	if len(fields) < 2 {
		return DefaultRestSeconds
	}

	n, err := strconv.Atoi(fields[0])
	if err != nil || n < 0 {
		return DefaultRestSeconds
	}

	unit := strings.ToLower(fields[1])
	switch {
	case strings.HasPrefix(unit, "min"):
		return n * 60
	case strings.HasPrefix(unit, "sec"):
		return n
	}

	return DefaultRestSeconds
}

// PlanExercise resolves a single spec into a plan.
func PlanExercise(spec ExerciseSpec) ExercisePlan {
	sets, repRange := ParseSetsSpec(spec.SetsSpec)
	return ExercisePlan{
		Spec:           spec,
		TotalSets:      sets,
		TargetRepRange: repRange,
		RestSeconds:    ParseRestSpec(spec.RestSpec),
	}
}

// PlanExercises resolves every spec of a workout, preserving order.
func PlanExercises(specs []ExerciseSpec) []ExercisePlan {
	plans := make([]ExercisePlan, len(specs))
	for i, spec := range specs {
		plans[i] = PlanExercise(spec)
	}
	return plans
}

// cutAnyFold is strings.Cut with a case-insensitive separator.
func cutAnyFold(s, sep string) (before, after string, found bool) {
	idx := strings.IndexAny(s, sep+strings.ToUpper(sep))
	if idx < 0 {
		return s, "", false
	}
	return s[:idx], s[idx+len(sep):], true
}
