package controllers

import (
	"net/http"
	"strings"
	"testing"
	"time"

	testutils "github.com/alex-pricope/feedback-arcade/api/controllers/testing"
	"github.com/alex-pricope/feedback-arcade/api/models"
	"github.com/alex-pricope/feedback-arcade/feedback"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var validForm = map[feedback.FieldName]string{
	feedback.FieldFirstName:   "Jonas",
	feedback.FieldSurname:     "Jonaitis",
	feedback.FieldEmail:       "jonas@example.lt",
	feedback.FieldPhone:       "61234567",
	feedback.FieldAddress:     "Gedimino pr. 1",
	feedback.FieldDesign:      "8",
	feedback.FieldContent:     "9",
	feedback.FieldConvenience: "10",
}

func openForm(t *testing.T, env *testEnv) string {
	t.Helper()
	res := testutils.PerformRequest(env.router, http.MethodPost, "/api/forms", nil, nil)
	require.Equal(t, http.StatusCreated, res.Code)

	form, err := testutils.Decode[models.FormResponse](res)
	require.NoError(t, err)
	require.NotEmpty(t, form.ID)
	return form.ID
}

func typeField(t *testing.T, env *testEnv, id string, name feedback.FieldName, value string) models.FieldInputResponse {
	t.Helper()
	res := testutils.PerformRequest(env.router, http.MethodPut, "/api/forms/"+id+"/fields/"+string(name),
		models.FieldInputRequest{Value: value}, nil)
	require.Equal(t, http.StatusOK, res.Code, res.Body.String())

	out, err := testutils.Decode[models.FieldInputResponse](res)
	require.NoError(t, err)
	return out
}

func TestCreateForm(t *testing.T) {
	env := setupTestRouter(t)

	res := testutils.PerformRequest(env.router, http.MethodPost, "/api/forms", nil, nil)
	assert.Equal(t, http.StatusCreated, res.Code)

	form, err := testutils.Decode[models.FormResponse](res)
	require.NoError(t, err)
	assert.Len(t, form.Fields, 8, "Form should expose all eight fields")
	assert.False(t, form.SubmitEnabled, "Empty form should not be submittable")
	assert.False(t, form.PopupVisible)

	res = testutils.PerformRequest(env.router, http.MethodGet, "/api/forms/"+form.ID, nil, nil)
	assert.Equal(t, http.StatusOK, res.Code)
}

func TestFormFieldInput(t *testing.T) {
	env := setupTestRouter(t)
	id := openForm(t, env)

	t.Run("Happy path - phone is formatted", func(t *testing.T) {
		out := typeField(t, env, id, feedback.FieldPhone, "861234567")
		assert.Equal(t, "+37061234567", out.Field.Value)
		assert.True(t, out.Field.Valid)
		assert.False(t, out.SubmitEnabled)
	})

	t.Run("Unhappy path - invalid email shows message", func(t *testing.T) {
		out := typeField(t, env, id, feedback.FieldEmail, "a@b")
		assert.False(t, out.Field.Valid)
		assert.Equal(t, feedback.MsgInvalidEmail, out.Field.Error)
	})

	t.Run("Unhappy path - unknown field", func(t *testing.T) {
		res := testutils.PerformRequest(env.router, http.MethodPut, "/api/forms/"+id+"/fields/nickname",
			models.FieldInputRequest{Value: "x"}, nil)
		assert.Equal(t, http.StatusNotFound, res.Code)
	})

	t.Run("Unhappy path - unknown form", func(t *testing.T) {
		res := testutils.PerformRequest(env.router, http.MethodPut, "/api/forms/missing/fields/email",
			models.FieldInputRequest{Value: "a@b.co"}, nil)
		assert.Equal(t, http.StatusNotFound, res.Code)
	})

	t.Run("Unhappy path - malformed body", func(t *testing.T) {
		res := testutils.PerformRequest(env.router, http.MethodPut, "/api/forms/"+id+"/fields/email", "not an object", nil)
		assert.Equal(t, http.StatusBadRequest, res.Code)
	})
}

func TestSubmitForm(t *testing.T) {
	t.Run("Happy path - submit, summary and popup", func(t *testing.T) {
		env := setupTestRouter(t)
		id := openForm(t, env)

		var last models.FieldInputResponse
		for _, name := range feedback.Fields {
			last = typeField(t, env, id, name, validForm[name])
		}
		assert.True(t, last.SubmitEnabled, "All fields valid enables submit")

		res := testutils.PerformRequest(env.router, http.MethodPost, "/api/forms/"+id+"/submit", nil, nil)
		require.Equal(t, http.StatusOK, res.Code, res.Body.String())

		out, err := testutils.Decode[models.SubmitResponse](res)
		require.NoError(t, err)
		assert.Equal(t, "9.0", out.Submission.Average)
		assert.Equal(t, "+37061234567", out.Submission.Values[feedback.FieldPhone])
		assert.Contains(t, out.Summary, "<strong>Jonas</strong>")

		form, _ := testutils.Decode[models.FormResponse](
			testutils.PerformRequest(env.router, http.MethodGet, "/api/forms/"+id, nil, nil))
		assert.True(t, form.PopupVisible)

		env.clock.Advance(2500 * time.Millisecond)
		form, _ = testutils.Decode[models.FormResponse](
			testutils.PerformRequest(env.router, http.MethodGet, "/api/forms/"+id, nil, nil))
		assert.False(t, form.PopupVisible, "Popup hides after 2.5s")

		summary := testutils.PerformRequest(env.router, http.MethodGet, "/api/forms/"+id+"/summary", nil, nil)
		assert.Equal(t, http.StatusOK, summary.Code)
		assert.True(t, strings.HasPrefix(summary.Header().Get("Content-Type"), "text/html"))
		assert.Contains(t, summary.Body.String(), "9.0")
	})

	t.Run("Happy path - user input is escaped in the summary", func(t *testing.T) {
		env := setupTestRouter(t)
		id := openForm(t, env)
		for _, name := range feedback.Fields {
			value := validForm[name]
			if name == feedback.FieldAddress {
				value = "<img src=x onerror=alert(1)>"
			}
			typeField(t, env, id, name, value)
		}

		res := testutils.PerformRequest(env.router, http.MethodPost, "/api/forms/"+id+"/submit", nil, nil)
		require.Equal(t, http.StatusOK, res.Code)

		summary := testutils.PerformRequest(env.router, http.MethodGet, "/api/forms/"+id+"/summary", nil, nil)
		assert.NotContains(t, summary.Body.String(), "<img")
		assert.Contains(t, summary.Body.String(), "&lt;img")
	})

	t.Run("Unhappy path - invalid form is rejected", func(t *testing.T) {
		env := setupTestRouter(t)
		id := openForm(t, env)
		typeField(t, env, id, feedback.FieldFirstName, "Jonas123")

		res := testutils.PerformRequest(env.router, http.MethodPost, "/api/forms/"+id+"/submit", nil, nil)
		assert.Equal(t, http.StatusUnprocessableEntity, res.Code)

		out, err := testutils.Decode[models.InvalidFormResponse](res)
		require.NoError(t, err)
		assert.Equal(t, feedback.MsgLettersOnly, out.Fields[feedback.FieldFirstName])
		assert.Equal(t, feedback.MsgRequired, out.Fields[feedback.FieldEmail])
		assert.Len(t, out.Fields, 8)

		summary := testutils.PerformRequest(env.router, http.MethodGet, "/api/forms/"+id+"/summary", nil, nil)
		assert.Equal(t, http.StatusNotFound, summary.Code, "Nothing was submitted")
	})
}

func TestDeleteForm(t *testing.T) {
	env := setupTestRouter(t)
	id := openForm(t, env)

	res := testutils.PerformRequest(env.router, http.MethodDelete, "/api/forms/"+id, nil, nil)
	assert.Equal(t, http.StatusNoContent, res.Code)

	res = testutils.PerformRequest(env.router, http.MethodGet, "/api/forms/"+id, nil, nil)
	assert.Equal(t, http.StatusNotFound, res.Code)

	res = testutils.PerformRequest(env.router, http.MethodDelete, "/api/forms/"+id, nil, nil)
	assert.Equal(t, http.StatusNotFound, res.Code)
}

func TestEvictIdleForms(t *testing.T) {
	env := setupTestRouter(t)
	env.forms.EvictIdle(env.clock, 5*time.Minute, time.Minute)
	id := openForm(t, env)

	env.clock.Advance(4 * time.Minute)
	typeField(t, env, id, feedback.FieldEmail, "a@b.co")

	env.clock.Advance(4 * time.Minute)
	res := testutils.PerformRequest(env.router, http.MethodGet, "/api/forms/"+id, nil, nil)
	require.Equal(t, http.StatusOK, res.Code, "Input keeps the form alive")

	env.clock.Advance(5 * time.Minute)
	res = testutils.PerformRequest(env.router, http.MethodGet, "/api/forms/"+id, nil, nil)
	assert.Equal(t, http.StatusNotFound, res.Code)
}
