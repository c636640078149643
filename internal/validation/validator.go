// =============================================================================
// PlyCast Playlist Converter - Validation Engine
// =============================================================================
//
// This module checks a converted PlyList before it is written.
//
// VALIDATION RULES:
//   - guid_shape       (warning): GUID groups are not 8-4-4-4-rest. Keep mode
//                                 reuses legacy ids as-is, so short or odd ids
//                                 produce visibly malformed GUIDs.
//   - guid_empty       (warning): GUID has no characters besides dashes.
//   - original_tc_out  (error)  : ORIGINAL_TC_OUT differs from TC_OUT.
//   - category_guid    (error)  : CategoryGuid is not empty.
//   - fix_state        (error)  : FixState is not "False".
//
// ERROR HANDLING:
//   Warnings are logged and never stop a run. Errors indicate a converter
//   bug; the caller treats them as fatal.
//
// =============================================================================

package validation

import (
	"fmt"
	"strings"

	"github.com/Tillihusky/plycast-plyt-converter/internal/types"
)

// =============================================================================
// VALIDATION ERROR TYPES
// =============================================================================

const (
	SeverityWarning = "warning"
	SeverityError   = "error"
)

// ValidationError represents a single finding.
type ValidationError struct {
	// Severity is SeverityWarning or SeverityError.
	Severity string

	// Field is the PlyItem attribute that failed the rule.
	Field string

	// Value is the offending value.
	Value string

	// Rule names the check that fired.
	Rule string

	// Message is a human-readable description.
	Message string

	// ItemIndex is the 1-based position of the item in the playlist.
	ItemIndex int
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("[%s] Item %d, Field '%s': %s (value: '%s')",
		strings.ToUpper(e.Severity),
		e.ItemIndex,
		e.Field,
		e.Message,
		e.Value,
	)
}

// =============================================================================
// VALIDATION RESULT
// =============================================================================

// ValidationResult contains the results of validation.
type ValidationResult struct {
	// IsValid is true if there are no errors. Warnings do not count.
	IsValid bool

	// Errors contains all findings, warnings included, in item order.
	Errors []*ValidationError

	ErrorCount   int
	WarningCount int

	// ItemsValidated is the number of items checked.
	ItemsValidated int
}

// Warnings returns only the warning-level findings.
func (r *ValidationResult) Warnings() []*ValidationError {
	var out []*ValidationError
	for _, e := range r.Errors {
		if e.Severity == SeverityWarning {
			out = append(out, e)
		}
	}
	return out
}

// FirstError returns the first error-level finding, or nil.
func (r *ValidationResult) FirstError() *ValidationError {
	for _, e := range r.Errors {
		if e.Severity == SeverityError {
			return e
		}
	}
	return nil
}

// =============================================================================
// VALIDATOR
// =============================================================================

// Validate runs every rule against every item of list.
func Validate(list *types.PlyList) *ValidationResult {
	result := &ValidationResult{IsValid: true}
	if list == nil {
		return result
	}

	for i, item := range list.Items {
		for _, finding := range validateItem(item) {
			finding.ItemIndex = i + 1
			result.add(finding)
		}
		result.ItemsValidated++
	}

	return result
}

func (r *ValidationResult) add(e *ValidationError) {
	r.Errors = append(r.Errors, e)
	switch e.Severity {
	case SeverityError:
		r.ErrorCount++
		r.IsValid = false
	default:
		r.WarningCount++
	}
}

func validateItem(item types.PlyItem) []*ValidationError {
	var findings []*ValidationError

	if e := checkGUID(item.GUID); e != nil {
		findings = append(findings, e)
	}

	if item.OriginalTCOut != item.TCOut {
		findings = append(findings, &ValidationError{
			Severity: SeverityError,
			Field:    "ORIGINAL_TC_OUT",
			Value:    item.OriginalTCOut,
			Rule:     "original_tc_out",
			Message:  fmt.Sprintf("must equal TC_OUT %q", item.TCOut),
		})
	}

	if item.CategoryGuid != "" {
		findings = append(findings, &ValidationError{
			Severity: SeverityError,
			Field:    "CategoryGuid",
			Value:    item.CategoryGuid,
			Rule:     "category_guid",
			Message:  "must be empty",
		})
	}

	if item.FixState != "False" {
		findings = append(findings, &ValidationError{
			Severity: SeverityError,
			Field:    "FixState",
			Value:    item.FixState,
			Rule:     "fix_state",
			Message:  `must be "False"`,
		})
	}

	return findings
}

// checkGUID flags GUIDs whose leading groups are not 8-4-4-4 characters.
// The remainder group is unconstrained.
func checkGUID(guid string) *ValidationError {
	if strings.Trim(guid, "-") == "" {
		return &ValidationError{
			Severity: SeverityWarning,
			Field:    "GUID",
			Value:    guid,
			Rule:     "guid_empty",
			Message:  "legacy id was empty",
		}
	}

	groups := strings.SplitN(guid, "-", 5)
	want := []int{8, 4, 4, 4}
	malformed := len(groups) != 5
	for i := 0; !malformed && i < len(want); i++ {
		malformed = len([]rune(groups[i])) != want[i]
	}
	if malformed {
		return &ValidationError{
			Severity: SeverityWarning,
			Field:    "GUID",
			Value:    guid,
			Rule:     "guid_shape",
			Message:  "not in 8-4-4-4-rest form",
		}
	}

	return nil
}
