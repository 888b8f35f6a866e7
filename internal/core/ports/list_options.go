package ports

// ListOptions is the generic search/sort surface shared by every list
// operation. Keyword is a case-insensitive substring match over the
// entity's text fields; SortField names an entity field, empty meaning
// storage order.
type ListOptions struct {
	Keyword   string
	SortField string
	SortDesc  bool
}
