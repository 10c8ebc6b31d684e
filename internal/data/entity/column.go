package entity

// Column is a music_halls column that may be changed by a partial update.
// The set is closed: SQL identifiers only ever come from Identifier.
type Column int

const (
	ColumnCity Column = iota + 1
	ColumnHallName
	ColumnEmail
	ColumnStage
	ColumnPipeHeight
	ColumnStageType
)

var updatableColumns = [...]Column{
	ColumnCity,
	ColumnHallName,
	ColumnEmail,
	ColumnStage,
	ColumnPipeHeight,
	ColumnStageType,
}

func (c Column) Identifier() string {
	switch c {
	case ColumnCity:
		return "city"
	case ColumnHallName:
		return "hall_name"
	case ColumnEmail:
		return "email"
	case ColumnStage:
		return "stage"
	case ColumnPipeHeight:
		return "pipe_height"
	case ColumnStageType:
		return "stage_type"
	default:
		return ""
	}
}

func (c Column) String() string { return c.Identifier() }

// UpdatableColumns lists the whitelist in table order.
func UpdatableColumns() []Column {
	out := make([]Column, len(updatableColumns))
	copy(out, updatableColumns[:])
	return out
}

// LookupColumn resolves a client-supplied field name against the whitelist.
func LookupColumn(name string) (Column, bool) {
	for _, c := range updatableColumns {
		if c.Identifier() == name {
			return c, true
		}
	}
	return 0, false
}
