// Package scope computes which students and hostels an approving faculty
// member has authority over.
package scope

import (
	"errors"
	"fmt"
	"regexp"
)

// Roll numbers look like 2022BCS0041: intake year, the literal B, the
// department code, then a four digit sequence. Students carry no
// department column, so department membership is derived from this
// pattern.
const intakeYearPattern = "202[0-9]"

// departmentCodes maps a faculty department name to the code embedded in
// student roll numbers.
var departmentCodes = map[string]string{
	"CSE": "CS",
	"ECE": "EC",
	"CSY": "CY",
	"CD":  "CD",
}

var ErrUnknownDepartment = errors.New("unknown department")

var reAnyRoll = regexp.MustCompile(`^` + intakeYearPattern + `B[A-Z]{2}[0-9]{4}$`)

// ValidRollNo reports whether s is a well-formed roll number, whatever
// the department. Shares the intake-year window with RollPattern so
// creation-time validation and HOD scoping cannot drift apart.
func ValidRollNo(s string) bool {
	return reAnyRoll.MatchString(s)
}

// RollPattern builds the anchored regular expression matching every roll
// number of the given department. A department missing from the code
// table is an error, not an empty match.
func RollPattern(department string) (string, error) {
	code, ok := departmentCodes[department]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownDepartment, department)
	}
	return fmt.Sprintf("^%sB%s[0-9]{4}$", intakeYearPattern, code), nil
}

// MatchesDepartment reports whether rollNo belongs to the department.
func MatchesDepartment(rollNo, department string) (bool, error) {
	pattern, err := RollPattern(department)
	if err != nil {
		return false, err
	}
	re, err := regexp.Compile(pattern)
	if err != nil {
		return false, err
	}
	return re.MatchString(rollNo), nil
}
