package query

import (
	"sort"
	"strconv"
	"strings"
	"unicode"

	"devclub-portal/app/models"
)

// MemberCriteria narrows the members directory. Zero values are ignored.
// A negative Year matches no member.
type MemberCriteria struct {
	Search string
	Role   string
	Branch string
	Year   int
}

// FilterMembers returns the members matching every supplied criterion in
// their original order. Search matches name, role, branch or any skill.
func FilterMembers(members []models.Member, c MemberCriteria) []models.Member {
	q := needle(c.Search)
	out := make([]models.Member, 0, len(members))
	for _, m := range members {
		if c.Role != "" && m.Role != c.Role {
			continue
		}
		if c.Branch != "" && m.Branch != c.Branch {
			continue
		}
		if c.Year != 0 && m.Year != c.Year {
			continue
		}
		if q != "" && !memberMatches(m, q) {
			continue
		}
		out = append(out, m)
	}
	return out
}

func memberMatches(m models.Member, q string) bool {
	return containsFolded(m.Name, q) ||
		containsFolded(m.Role, q) ||
		containsFolded(m.Branch, q) ||
		anyContainsFolded(m.Skills, q)
}

// UnmatchableYear is what ParseYear gives for a year criterion that was
// supplied but names no year, so that FilterMembers returns no members.
const UnmatchableYear = -1

// ParseYear reads the leading integer of s, so "3" and "3rd" both give 3.
// An empty s gives 0, which FilterMembers ignores. Any other input with no
// usable year, such as "all", "0" or an overflowing number, gives
// UnmatchableYear.
func ParseYear(s string) int {
	if s == "" {
		return 0
	}
	s = strings.TrimLeftFunc(s, unicode.IsSpace)
	end := 0
	if end < len(s) && (s[end] == '+' || s[end] == '-') {
		end++
	}
	digits := end
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == digits {
		return UnmatchableYear
	}
	n, err := strconv.Atoi(s[:end])
	if err != nil || n <= 0 {
		return UnmatchableYear
	}
	return n
}

func MemberByID(members []models.Member, id int) (models.Member, bool) {
	for _, m := range members {
		if m.ID == id {
			return m, true
		}
	}
	return models.Member{}, false
}

// Roles returns the distinct member roles in lexicographic order.
func Roles(members []models.Member) []string {
	return uniqueStrings(members, func(m models.Member) string { return m.Role })
}

// Branches returns the distinct member branches in lexicographic order.
func Branches(members []models.Member) []string {
	return uniqueStrings(members, func(m models.Member) string { return m.Branch })
}

// Years returns the distinct member years in ascending order.
func Years(members []models.Member) []int {
	seen := make(map[int]struct{}, len(members))
	out := make([]int, 0, 4)
	for _, m := range members {
		if _, ok := seen[m.Year]; ok {
			continue
		}
		seen[m.Year] = struct{}{}
		out = append(out, m.Year)
	}
	sort.Ints(out)
	return out
}

// MemberNames returns member names in directory order.
func MemberNames(members []models.Member) []string {
	out := make([]string, 0, len(members))
	for _, m := range members {
		out = append(out, m.Name)
	}
	return out
}

func uniqueStrings[T any](records []T, key func(T) string) []string {
	seen := make(map[string]struct{}, len(records))
	out := make([]string, 0)
	for _, r := range records {
		k := key(r)
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
