package domain

// Squad is a national squad identified by its country.
type Squad struct {
	ID      int64
	Country string
}
