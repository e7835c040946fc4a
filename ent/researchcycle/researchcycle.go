// Code generated by ent, DO NOT EDIT.

package researchcycle

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the researchcycle type in the database.
	Label = "research_cycle"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "cycle_id"
	// FieldTitle holds the string denoting the title field in the database.
	FieldTitle = "title"
	// FieldOwner holds the string denoting the owner field in the database.
	FieldOwner = "owner"
	// FieldState holds the string denoting the state field in the database.
	FieldState = "state"
	// FieldRejections holds the string denoting the rejections field in the database.
	FieldRejections = "rejections"
	// FieldHistory holds the string denoting the history field in the database.
	FieldHistory = "history"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// Table holds the table name of the researchcycle in the database.
	Table = "research_cycles"
)

// Columns holds all SQL columns for researchcycle fields.
var Columns = []string{
	FieldID,
	FieldTitle,
	FieldOwner,
	FieldState,
	FieldRejections,
	FieldHistory,
	FieldCreatedAt,
	FieldUpdatedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultRejections holds the default value on creation for the "rejections" field.
	DefaultRejections int
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
)

// State defines the type for the "state" enum field.
type State string

// StateIDEA_INTAKE is the default value of the State enum.
const DefaultState = StateIDEA_INTAKE

// State values.
const (
	StateIDEA_INTAKE       State = "IDEA_INTAKE"
	StateDATA_GATE         State = "DATA_GATE"
	StateBACKTEST_GATE     State = "BACKTEST_GATE"
	StateROBUSTNESS_GATE   State = "ROBUSTNESS_GATE"
	StateRISK_SKEPTIC_GATE State = "RISK_SKEPTIC_GATE"
	StateIC_REVIEW         State = "IC_REVIEW"
	StateBOARD_PACK        State = "BOARD_PACK"
	StateBOARD_DECISION    State = "BOARD_DECISION"
	StateARCHIVE           State = "ARCHIVE"
)

func (s State) String() string {
	return string(s)
}

// StateValidator is a validator for the "state" field enum values. It is called by the builders before save.
func StateValidator(s State) error {
	switch s {
	case StateIDEA_INTAKE, StateDATA_GATE, StateBACKTEST_GATE, StateROBUSTNESS_GATE, StateRISK_SKEPTIC_GATE, StateIC_REVIEW, StateBOARD_PACK, StateBOARD_DECISION, StateARCHIVE:
		return nil
	default:
		return fmt.Errorf("researchcycle: invalid enum value for state field: %q", s)
	}
}

// OrderOption defines the ordering options for the ResearchCycle queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByTitle orders the results by the title field.
func ByTitle(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTitle, opts...).ToFunc()
}

// ByOwner orders the results by the owner field.
func ByOwner(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOwner, opts...).ToFunc()
}

// ByState orders the results by the state field.
func ByState(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldState, opts...).ToFunc()
}

// ByRejections orders the results by the rejections field.
func ByRejections(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRejections, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}
