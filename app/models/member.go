package models

// Member is a club member as shown in the members directory.
type Member struct {
	ID       int      `json:"id" bson:"id"`
	Name     string   `json:"name" bson:"name"`
	Role     string   `json:"role" bson:"role"`
	Branch   string   `json:"branch" bson:"branch"`
	Year     int      `json:"year" bson:"year"`
	Email    string   `json:"email" bson:"email"`
	Skills   []string `json:"skills" bson:"skills"`
	JoinDate string   `json:"joinDate" bson:"join_date"`
	Bio      string   `json:"bio" bson:"bio"`
	Image    *string  `json:"image" bson:"image,omitempty"`
}

// MemberFilters lists the values a client can pick from in the directory.
type MemberFilters struct {
	Roles       []string `json:"roles"`
	Branches    []string `json:"branches"`
	Years       []int    `json:"years"`
	Suggestions []string `json:"suggestions"`
}
