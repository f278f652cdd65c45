package decision

import "sort"

// BuildPlan instantiates the initial roadmap from the reference table. The
// intake only gates the call; its answers do not change which steps appear
// or their order.
func BuildPlan(intake Intake) Roadmap {
	return BuildPlanFrom(referenceDefinitions, intake)
}

// BuildPlanFrom builds a roadmap from an arbitrary definition table. The
// lowest-order definition becomes active and every other one pending. An
// empty table yields an empty roadmap.
func BuildPlanFrom(defs []StepDefinition, _ Intake) Roadmap {
	ordered := make([]StepDefinition, len(defs))
	copy(ordered, defs)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].Order < ordered[j].Order
	})
	plan := make(Roadmap, 0, len(ordered))
	for idx, def := range ordered {
		state := StatePending
		if idx == 0 {
			state = StateActive
		}
		plan = append(plan, StepRecord{StepDefinition: def.Clone(), State: state})
	}
	return plan
}
