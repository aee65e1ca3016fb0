package generator

import "github.com/dmitrijs2005/homeseed/internal/seeder/models"

type OutcomeKind int

const (
	OutcomeInserted OutcomeKind = iota + 1
	OutcomeUpdated
	OutcomeDropped
)

func (k OutcomeKind) String() string {
	switch k {
	case OutcomeInserted:
		return "inserted"
	case OutcomeUpdated:
		return "updated"
	case OutcomeDropped:
		return "dropped"
	default:
		return "unknown"
	}
}

// Outcome is the result of writing one object. Object carries the stored
// state for Inserted and Updated; Reason explains a Dropped write.
type Outcome struct {
	Kind   OutcomeKind
	Object *models.Object
	Reason string
}

func (o Outcome) Resolved() bool {
	return o.Kind == OutcomeInserted || o.Kind == OutcomeUpdated
}
