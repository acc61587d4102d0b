// Package comparator models the legal shapes of a version requirement.
//
// A requirement is either a single bare wildcard "*" or a comma separated list
// of comparators, none of which is a bare wildcard. Wildcards may still appear
// embedded in a comparator's trailing positions ("^1.*.*", "~1.2.*").
//
// Both shapes are closed sum types:
//
//	FullComparator: Plain | WildcardMinor | WildcardPatch | Wildcard
//	ComparatorVec:  List | WildcardVec
//
// Every variant renders to the exact text the requirement parser accepts.
package comparator
