package designation

// Kind selects the subtype record a designation requires.
type Kind string

const (
	KindOther      Kind = "other"
	KindDriver     Kind = "driver"
	KindAccountant Kind = "accountant"
	KindSupervisor Kind = "supervisor"
)

// Field describes the one extra input a special kind needs.
type Field struct {
	Name  string `json:"name"`
	Label string `json:"label"`
}

type variant struct {
	designation string
	field       Field
	collection  string
}

var variants = map[Kind]variant{
	KindDriver:     {designation: "Driver", field: Field{Name: "licenseNo", Label: "License Number"}, collection: "drivers"},
	KindAccountant: {designation: "Accountant", field: Field{Name: "domain", Label: "Domain"}, collection: "accountants"},
	KindSupervisor: {designation: "Supervisor", field: Field{Name: "officeNo", Label: "Office Number"}, collection: "supervisors"},
}

// KindOf maps a designation to its kind. Matching is exact: "Delivery Supervisor" is Other.
func KindOf(designation string) Kind {
	for k, v := range variants {
		if v.designation == designation {
			return k
		}
	}
	return KindOther
}

// ParseKind accepts the string form of a special kind.
func ParseKind(s string) (Kind, bool) {
	k := Kind(s)
	_, ok := variants[k]
	return k, ok
}

func (k Kind) IsSpecial() bool {
	_, ok := variants[k]
	return ok
}

// Field returns the extra field for special kinds.
func (k Kind) Field() (Field, bool) {
	v, ok := variants[k]
	return v.field, ok
}

// Collection is the backend collection the subtype record is created in.
func (k Kind) Collection() string {
	return variants[k].collection
}
