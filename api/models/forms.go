package models

import (
	"github.com/alex-pricope/feedback-arcade/feedback"
)

type FieldInputRequest struct {
	Value string `json:"value"`
}

type FormResponse struct {
	ID            string           `json:"id"`
	Fields        []feedback.Field `json:"fields"`
	SubmitEnabled bool             `json:"submitEnabled"`
	PopupVisible  bool             `json:"popupVisible"`
}

type FieldInputResponse struct {
	Field         feedback.Field `json:"field"`
	SubmitEnabled bool           `json:"submitEnabled"`
}

type SubmitResponse struct {
	Submission *feedback.Snapshot `json:"submission"`
	Summary    string             `json:"summaryHtml"`
}

type InvalidFormResponse struct {
	Error  string                        `json:"error"`
	Fields map[feedback.FieldName]string `json:"fields"`
}

func TransformForm(id string, f *feedback.Form) FormResponse {
	state := f.State()
	return FormResponse{
		ID:            id,
		Fields:        state.Fields,
		SubmitEnabled: state.SubmitEnabled,
		PopupVisible:  state.PopupVisible,
	}
}
