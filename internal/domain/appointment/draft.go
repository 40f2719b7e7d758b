package appointment

// Draft is the partially collected booking for one conversation. Empty strings mean "not yet provided".
type Draft struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Service string `json:"service"`
	Date    string `json:"date"`
}

func (d Draft) Get(f Field) string {
	switch f {
	case FieldName:
		return d.Name
	case FieldEmail:
		return d.Email
	case FieldService:
		return d.Service
	case FieldDate:
		return d.Date
	default:
		return ""
	}
}

// Set ignores empty values so a field is never cleared by accident.
func (d *Draft) Set(f Field, v string) {
	if v == "" {
		return
	}
	switch f {
	case FieldName:
		d.Name = v
	case FieldEmail:
		d.Email = v
	case FieldService:
		d.Service = v
	case FieldDate:
		d.Date = v
	}
}

func (d *Draft) Clear(f Field) {
	switch f {
	case FieldName:
		d.Name = ""
	case FieldEmail:
		d.Email = ""
	case FieldService:
		d.Service = ""
	case FieldDate:
		d.Date = ""
	}
}

func (d Draft) Filled() []Field {
	var out []Field
	for _, f := range Fields {
		if d.Get(f) != "" {
			out = append(out, f)
		}
	}
	return out
}

func (d Draft) Missing() []Field {
	var out []Field
	for _, f := range Fields {
		if d.Get(f) == "" {
			out = append(out, f)
		}
	}
	return out
}

func (d Draft) IsComplete() bool {
	return len(d.Missing()) == 0
}

func (d Draft) IsEmpty() bool {
	return len(d.Filled()) == 0
}

func (d Draft) State() State {
	switch {
	case d.IsEmpty():
		return StateEmpty
	case d.IsComplete():
		return StateComplete
	default:
		return StateCollecting
	}
}
