package domain

// keywords maps element type tags to their textual notation keyword.
// The map doubles as the allow-list of displayable types: a type with no
// entry is dropped from trees and rendered as a comment placeholder in
// textual output. Adding a new element type is a data change here.
var keywords = map[string]string{
	"Package":                    "package",
	"LibraryPackage":             "library package",
	"PartDefinition":             "part def",
	"PartUsage":                  "part",
	"ItemDefinition":             "item def",
	"ItemUsage":                  "item",
	"AttributeDefinition":        "attribute def",
	"AttributeUsage":             "attribute",
	"PortDefinition":             "port def",
	"PortUsage":                  "port",
	"InterfaceDefinition":        "interface def",
	"InterfaceUsage":             "interface",
	"ConnectionDefinition":       "connection def",
	"ConnectionUsage":            "connection",
	"ActionDefinition":           "action def",
	"ActionUsage":                "action",
	"StateDefinition":            "state def",
	"StateUsage":                 "state",
	"ConstraintDefinition":       "constraint def",
	"ConstraintUsage":            "constraint",
	"RequirementDefinition":      "requirement def",
	"RequirementUsage":           "requirement",
	"ConcernDefinition":          "concern def",
	"ConcernUsage":               "concern",
	"CalculationDefinition":      "calc def",
	"CalculationUsage":           "calc",
	"CaseDefinition":             "case def",
	"CaseUsage":                  "case",
	"AnalysisCaseDefinition":     "analysis def",
	"AnalysisCaseUsage":          "analysis",
	"VerificationCaseDefinition": "verification def",
	"VerificationCaseUsage":      "verification",
	"UseCaseDefinition":          "use case def",
	"UseCaseUsage":               "use case",
	"AllocationDefinition":       "allocation def",
	"AllocationUsage":            "allocate",
	"EnumerationDefinition":      "enum def",
	"EnumerationUsage":           "enum",
	"OccurrenceDefinition":       "occurrence def",
	"OccurrenceUsage":            "occurrence",
	"ViewDefinition":             "view def",
	"ViewUsage":                  "view",
	"ViewpointDefinition":        "viewpoint def",
	"ViewpointUsage":             "viewpoint",
	"FlowDefinition":             "flow def",
	"FlowUsage":                  "flow",
}

// Keyword returns the textual notation keyword for a type tag.
// The second return is false for types outside the displayable set.
func Keyword(typeTag string) (string, bool) {
	kw, ok := keywords[typeTag]
	return kw, ok
}

// Displayable reports whether elements of the given type tag are
// eligible for tree and text rendering.
func Displayable(typeTag string) bool {
	_, ok := keywords[typeTag]
	return ok
}

// RequirementType reports whether the type tag is a requirement
// definition or usage, used by the report's traceability section.
func RequirementType(typeTag string) bool {
	return typeTag == "RequirementDefinition" || typeTag == "RequirementUsage"
}
