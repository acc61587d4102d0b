// Package oracle is the narrow adapter between the generators and the
// authoritative SemVer parser/matcher, github.com/Masterminds/semver/v3.
//
// # Overview
//
// Generators never interpret versions themselves. They hand strings to this
// package and rely on its verdict:
//
//   - ParseVersion: strict SemVer 2.0.0 parsing
//   - ParseComparator: a single requirement comparator
//   - ParseVersionReq: a comma separated requirement, capped at 32 comparators
//   - Requirement.Matches: does a version satisfy a requirement
//
// It also provides the structural constructors the struct-path generators use:
// NewVersion, NewPrerelease, NewBuildMetadata, Comparator and VersionReq.
//
// # Error Handling
//
// All failures are *errors.StructuredError values:
//
//   - ErrCodeOverflow: a numeric component does not fit in a uint64
//   - ErrCodeLimitExceeded: more than 32 comparators in one requirement
//   - ErrCodeInvalidRequest: anything else the grammar rejects
//
// Overflow is the one rejection generators are expected to tolerate:
//
//	v, err := oracle.ParseVersion(s)
//	if oracle.IsOverflow(err) {
//	    // legal per the grammar, out of range for the parser
//	}
package oracle
