package feedback

import (
	"bytes"
	_ "embed"
	"fmt"
	"html/template"
	"io"
	"math"
	"time"

	"github.com/google/uuid"
)

//go:embed summary.gohtml
var summarySource string

var summaryTemplate = template.Must(template.New("summary").Parse(summarySource))

// Snapshot is the record of one accepted submission.
type Snapshot struct {
	ID          string               `json:"id"`
	Values      map[FieldName]string `json:"values"`
	Average     string               `json:"average"`
	SubmittedAt time.Time            `json:"submittedAt"`
}

func newSnapshot(values map[FieldName]string, now time.Time) *Snapshot {
	return &Snapshot{
		ID:          uuid.NewString(),
		Values:      values,
		Average:     Average(values[FieldDesign], values[FieldContent], values[FieldConvenience]),
		SubmittedAt: now.UTC(),
	}
}

// Average returns the mean of three ratings rounded to one decimal place,
// for example "9.0". Values that do not parse count as zero.
func Average(a, b, c string) string {
	var sum float64
	for _, v := range []string{a, b, c} {
		n, _ := parseRating(v)
		sum += n
	}
	return fmt.Sprintf("%.1f", math.Round(sum/3*10)/10)
}

type summaryView struct {
	FirstName   string
	Surname     string
	Email       string
	Phone       string
	Address     string
	Design      string
	Content     string
	Convenience string
	Average     string
}

// RenderSummary writes the HTML summary fragment for s. All submitted values
// are escaped by the template.
func RenderSummary(w io.Writer, s *Snapshot) error {
	return summaryTemplate.Execute(w, summaryView{
		FirstName:   s.Values[FieldFirstName],
		Surname:     s.Values[FieldSurname],
		Email:       s.Values[FieldEmail],
		Phone:       s.Values[FieldPhone],
		Address:     s.Values[FieldAddress],
		Design:      s.Values[FieldDesign],
		Content:     s.Values[FieldContent],
		Convenience: s.Values[FieldConvenience],
		Average:     s.Average,
	})
}

// Summary renders the fragment to a string-backed template.HTML.
func (s *Snapshot) Summary() (template.HTML, error) {
	var buf bytes.Buffer
	if err := RenderSummary(&buf, s); err != nil {
		return "", err
	}
	return template.HTML(buf.String()), nil
}
