package dto

type SearchResponse struct {
	Entity string  `json:"entity"`
	Query  string  `json:"query"`
	Page   int     `json:"page"`
	Limit  int     `json:"limit"`
	Tier   int     `json:"tier"`
	IDs    []int64 `json:"ids"`
	Total  int     `json:"total"`
}
