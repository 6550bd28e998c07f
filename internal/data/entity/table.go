package entity

// TableBookingMaxGuests caps a table party regardless of table capacity.
const TableBookingMaxGuests = 10

// Table is a restaurant table in the catalog, keyed by its public number.
type Table struct {
	BaseSimple
	TableNumber int  `db:"table_number"`
	Capacity    int  `db:"capacity"`
	IsActive    bool `db:"is_active"`
}

// MaxGuests returns the effective guest ceiling for this table.
func (t *Table) MaxGuests() int {
	if t.Capacity < TableBookingMaxGuests {
		return t.Capacity
	}
	return TableBookingMaxGuests
}
