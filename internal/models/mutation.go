package models

// Field - поле обращения, которое адресует Mutation
type Field string

const (
	FieldID                 Field = "id"
	FieldReference          Field = "reference"
	FieldTitle              Field = "title"
	FieldDescription        Field = "description"
	FieldCategory           Field = "category"
	FieldSeverity           Field = "severity"
	FieldLocation           Field = "location"
	FieldReportedAt         Field = "reported_at"
	FieldReportedBy         Field = "reported_by"
	FieldPriority           Field = "priority"
	FieldStatus             Field = "status"
	FieldTimeline           Field = "timeline"
	FieldAssignedDepartment Field = "assigned_department"
	FieldViews              Field = "views"
	FieldSupports           Field = "supports"
	FieldShares             Field = "shares"
)

// Mutation - изменение одного поля. Value используется строковыми полями,
// Count - счетчиками (для views это новое значение, для supports/shares - прирост).
type Mutation struct {
	Field Field
	Value string
	Count int
}
