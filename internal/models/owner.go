package models

import "strings"

// Owner labels the household member a transaction belongs to
type Owner string

const (
	OwnerMe     Owner = "Me"
	OwnerFather Owner = "Father"
	OwnerMother Owner = "Mother"
	OwnerFamily Owner = "Family"
	OwnerOther  Owner = "Other"
)

// Owners lists every owner in dropdown order. OwnerOther is last.
var Owners = []Owner{OwnerMe, OwnerFather, OwnerMother, OwnerFamily, OwnerOther}

// AllOwnersLabel is what reports print when no owner filter is applied.
const AllOwnersLabel = "All"

// allOwnerSentinels are the filter values that mean "every owner".
// "Semua" is accepted for old clients of the Indonesian UI.
var allOwnerSentinels = []string{"", "all", "semua", "*"}

// LookupOwner maps user input onto an Owner, ignoring case and surrounding
// whitespace.
func LookupOwner(s string) (Owner, bool) {
	s = strings.TrimSpace(s)
	for _, o := range Owners {
		if strings.EqualFold(string(o), s) {
			return o, true
		}
	}
	return "", false
}

// ParseOwner resolves the owner of a record. Empty input means the record
// has no owner; unknown labels fall back to OwnerOther.
func ParseOwner(s string) *Owner {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	o, ok := LookupOwner(s)
	if !ok {
		o = OwnerOther
	}
	return &o
}

// IsAllOwners reports whether s is one of the sentinels that disable the
// owner filter.
func IsAllOwners(s string) bool {
	s = strings.ToLower(strings.TrimSpace(s))
	for _, sentinel := range allOwnerSentinels {
		if s == sentinel {
			return true
		}
	}
	return false
}

// OwnerLabel returns the printable label for an optional owner.
func OwnerLabel(o *Owner) string {
	if o == nil {
		return AllOwnersLabel
	}
	return string(*o)
}
