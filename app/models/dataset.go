package models

// Dataset holds every record set the portal serves. It is built once by a
// data source and never mutated afterwards.
type Dataset struct {
	Members         []Member         `json:"members"`
	Events          []Event          `json:"events"`
	StudentRankings []StudentRanking `json:"studentRankings"`
	BranchRankings  []BranchRanking  `json:"branchRankings"`
	YearRankings    []YearRanking    `json:"yearRankings"`
	Highlights      Highlights       `json:"highlights"`
	Features        []Feature        `json:"features"`
}
