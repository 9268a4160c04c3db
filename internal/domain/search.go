package domain

// SearchResults groups matches by entity. The API ranks within each slice.
type SearchResults struct {
	Posts []Post    `json:"posts"`
	Users []Profile `json:"users"`
	Total int       `json:"total"`
}
