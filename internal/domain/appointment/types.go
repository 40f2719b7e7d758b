package appointment

type Status string

const (
	StatusPending Status = "pending"
	StatusDone    Status = "done"
	StatusCancel  Status = "cancel"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusDone, StatusCancel:
		return true
	default:
		return false
	}
}

type Field string

const (
	FieldName    Field = "name"
	FieldEmail   Field = "email"
	FieldService Field = "service"
	FieldDate    Field = "date"
)

// Fields is the order fields are collected and reported in.
var Fields = []Field{FieldName, FieldEmail, FieldService, FieldDate}

func (f Field) Label() string {
	switch f {
	case FieldName:
		return "Name"
	case FieldEmail:
		return "Email"
	case FieldService:
		return "Service"
	case FieldDate:
		return "Date"
	default:
		return string(f)
	}
}

type State string

const (
	StateEmpty      State = "empty"
	StateCollecting State = "collecting"
	StateComplete   State = "complete"
)
