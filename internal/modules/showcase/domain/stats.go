package domain

type Count struct {
	Value string
	N     int
}

// Stats summarises an indexed collection.
type Stats struct {
	Page       string
	Total      int
	Categories []Count
	Tags       []Count
}
