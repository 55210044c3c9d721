package feedback

// FieldName identifies one of the form inputs.
type FieldName string

const (
	FieldFirstName   FieldName = "name"
	FieldSurname     FieldName = "surname"
	FieldEmail       FieldName = "email"
	FieldPhone       FieldName = "phone"
	FieldAddress     FieldName = "address"
	FieldDesign      FieldName = "design-score"
	FieldContent     FieldName = "content-score"
	FieldConvenience FieldName = "convenience-score"
)

// Fields lists every form input in display order.
var Fields = []FieldName{
	FieldFirstName,
	FieldSurname,
	FieldEmail,
	FieldPhone,
	FieldAddress,
	FieldDesign,
	FieldContent,
	FieldConvenience,
}

var ratingFields = []FieldName{FieldDesign, FieldContent, FieldConvenience}

func (n FieldName) Known() bool {
	for _, f := range Fields {
		if f == n {
			return true
		}
	}
	return false
}

func (n FieldName) isRating() bool {
	for _, f := range ratingFields {
		if f == n {
			return true
		}
	}
	return false
}

// Field is the current state of one input. Error is empty while the field
// is valid or has not been shown an error yet.
type Field struct {
	Name  FieldName `json:"name"`
	Value string    `json:"value"`
	Valid bool      `json:"valid"`
	Error string    `json:"error,omitempty"`
}
