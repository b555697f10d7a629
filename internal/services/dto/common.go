package dto

// UpsertOutcome tags whether find-inactive-or-create made a new row or
// revived a deactivated one.
type UpsertOutcome string

const (
	OutcomeCreated     UpsertOutcome = "created"
	OutcomeReactivated UpsertOutcome = "reactivated"
)
