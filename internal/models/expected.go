package models

// ExpectedDrawingCount is the static house -> expected-drawing-count map
// the scheduler's skip-planner consults to decide "this house is done
// for today" (spec.md §3/§2's Scheduler + skip-planner row).
type ExpectedDrawingCount struct {
	House string `bson:"house" json:"house"`
	Count int    `bson:"count" json:"count"`
}
