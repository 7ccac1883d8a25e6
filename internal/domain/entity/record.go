package entity

// Field is the wire form of one column: the declared type always, the value
// only when the column is not NULL.
type Field struct {
	Type ColumnType `json:"type"`
	Data *string    `json:"data,omitempty"`
}

// Record is a serialized row keyed by column name.
type Record map[string]Field

// Serialize turns columns into a Record. Each column appears exactly once.
func Serialize(cols []Column) Record {
	out := make(Record, len(cols))
	for _, c := range cols {
		f := Field{Type: c.Type}
		if c.Valid {
			v := c.Value
			f.Data = &v
		}
		out[c.Name] = f
	}
	return out
}

// Value returns the column value and whether it was present.
func (r Record) Value(name string) (string, bool) {
	f, ok := r[name]
	if !ok || f.Data == nil {
		return "", false
	}
	return *f.Data, true
}
