package models

type PaginationQuery struct {
	Page  int `query:"page"`
	Limit int `query:"limit"`
}

type MemberQuery struct {
	Page   int    `query:"page"`
	Limit  int    `query:"limit"`
	Search string `query:"search"`
	Role   string `query:"role"`
	Branch string `query:"branch"`
	Year   string `query:"year"`
}

func (q MemberQuery) Pagination() PaginationQuery {
	return PaginationQuery{Page: q.Page, Limit: q.Limit}
}

type EventQuery struct {
	Page     int    `query:"page"`
	Limit    int    `query:"limit"`
	Search   string `query:"search"`
	Category string `query:"category"`
	Status   string `query:"status"`
}

func (q EventQuery) Pagination() PaginationQuery {
	return PaginationQuery{Page: q.Page, Limit: q.Limit}
}

type PaginationMeta struct {
	CurrentPage int `json:"currentPage"`
	TotalPage   int `json:"totalPage"`
	TotalData   int `json:"totalData"`
	Limit       int `json:"limit"`
}

type PaginatedResponse struct {
	Data interface{}    `json:"data"`
	Meta PaginationMeta `json:"meta"`
}

type EventListResponse struct {
	Data       []Event         `json:"data"`
	Meta       PaginationMeta  `json:"meta"`
	Statistics EventStatistics `json:"statistics"`
}

type StudentListResponse struct {
	Data        []StudentRanking  `json:"data"`
	Count       int               `json:"count"`
	Query       string            `json:"query,omitempty"`
	Statistics  StudentStatistics `json:"statistics"`
	Suggestions []string          `json:"suggestions"`
}

type BranchListResponse struct {
	Data       []BranchRanking `json:"data"`
	Statistics GroupStatistics `json:"statistics"`
}

type YearListResponse struct {
	Data       []YearRanking   `json:"data"`
	Statistics GroupStatistics `json:"statistics"`
}
