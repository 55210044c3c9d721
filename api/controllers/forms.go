package controllers

import (
	"errors"
	"net/http"
	"time"

	"github.com/alex-pricope/feedback-arcade/api/models"
	"github.com/alex-pricope/feedback-arcade/feedback"
	"github.com/alex-pricope/feedback-arcade/logging"
	"github.com/alex-pricope/feedback-arcade/scheduler"
	"github.com/gin-gonic/gin"
)

type FormController struct {
	forms *registry[*feedback.Form]
	opts  []feedback.Option
}

func NewFormController(opts ...feedback.Option) *FormController {
	return &FormController{
		forms: newRegistry[*feedback.Form]("FORM"),
		opts:  opts,
	}
}

func (c *FormController) RegisterRoutes(engine *gin.Engine) {
	group := engine.Group("/api/forms")

	group.POST("", c.create)
	group.GET("/:id", c.get)
	group.PUT("/:id/fields/:field", c.input)
	group.POST("/:id/submit", c.submit)
	group.GET("/:id/summary", c.summary)
	group.DELETE("/:id", c.delete)
}

// Close releases every live form.
func (c *FormController) Close() {
	c.forms.closeAll()
}

// EvictIdle drops forms that were not used for ttl, checking every interval.
func (c *FormController) EvictIdle(sched scheduler.Scheduler, ttl, interval time.Duration) {
	c.forms.evictIdle(sched, ttl, interval)
}

// @Summary Open a feedback form
// @Tags forms
// @Produce json
// @Success 201 {object} models.FormResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /api/forms [post]
func (c *FormController) create(g *gin.Context) {
	form := feedback.NewForm(c.opts...)
	id, err := c.forms.add(form)
	if err != nil {
		g.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "could not open form"})
		return
	}
	logging.Log.Infof("FORM: opened form %s", id)
	g.JSON(http.StatusCreated, models.TransformForm(id, form))
}

// @Summary Get a feedback form
// @Tags forms
// @Produce json
// @Param id path string true "Form ID"
// @Success 200 {object} models.FormResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /api/forms/{id} [get]
func (c *FormController) get(g *gin.Context) {
	id := g.Param("id")
	form, ok := c.forms.get(id)
	if !ok {
		g.JSON(http.StatusNotFound, models.ErrorResponse{Error: "form not found"})
		return
	}
	g.JSON(http.StatusOK, models.TransformForm(id, form))
}

// @Summary Type into a form field
// @Description Stores the value, formats phone numbers and validates the field
// @Tags forms
// @Accept json
// @Produce json
// @Param id path string true "Form ID"
// @Param field path string true "Field name"
// @Param input body models.FieldInputRequest true "Field value"
// @Success 200 {object} models.FieldInputResponse
// @Failure 400 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /api/forms/{id}/fields/{field} [put]
func (c *FormController) input(g *gin.Context) {
	form, ok := c.forms.get(g.Param("id"))
	if !ok {
		g.JSON(http.StatusNotFound, models.ErrorResponse{Error: "form not found"})
		return
	}

	var req models.FieldInputRequest
	if err := g.ShouldBindJSON(&req); err != nil {
		g.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid request format"})
		return
	}

	field, submitEnabled, err := form.Input(feedback.FieldName(g.Param("field")), req.Value)
	if errors.Is(err, feedback.ErrUnknownField) {
		g.JSON(http.StatusNotFound, models.ErrorResponse{Error: "unknown field: " + g.Param("field")})
		return
	}

	g.JSON(http.StatusOK, models.FieldInputResponse{
		Field:         field,
		SubmitEnabled: submitEnabled,
	})
}

// @Summary Submit a feedback form
// @Tags forms
// @Produce json
// @Param id path string true "Form ID"
// @Success 200 {object} models.SubmitResponse
// @Failure 404 {object} models.ErrorResponse
// @Failure 422 {object} models.InvalidFormResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /api/forms/{id}/submit [post]
func (c *FormController) submit(g *gin.Context) {
	id := g.Param("id")
	form, ok := c.forms.get(id)
	if !ok {
		g.JSON(http.StatusNotFound, models.ErrorResponse{Error: "form not found"})
		return
	}

	snap, err := form.Submit()
	if errors.Is(err, feedback.ErrFormInvalid) {
		g.JSON(http.StatusUnprocessableEntity, models.InvalidFormResponse{
			Error:  err.Error(),
			Fields: form.Problems(),
		})
		return
	}
	if err != nil {
		logging.Log.Errorf("FORM: submit of %s failed: %v", id, err)
		g.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "could not render summary"})
		return
	}

	_, summary, _ := form.Last()
	g.JSON(http.StatusOK, models.SubmitResponse{Submission: snap, Summary: string(summary)})
}

// @Summary Get the summary of the last submission
// @Tags forms
// @Produce html
// @Param id path string true "Form ID"
// @Success 200 {string} string "summary fragment"
// @Failure 404 {object} models.ErrorResponse
// @Router /api/forms/{id}/summary [get]
func (c *FormController) summary(g *gin.Context) {
	form, ok := c.forms.get(g.Param("id"))
	if !ok {
		g.JSON(http.StatusNotFound, models.ErrorResponse{Error: "form not found"})
		return
	}
	_, summary, ok := form.Last()
	if !ok {
		g.JSON(http.StatusNotFound, models.ErrorResponse{Error: "form has not been submitted"})
		return
	}
	g.Data(http.StatusOK, "text/html; charset=utf-8", []byte(summary))
}

// @Summary Discard a feedback form
// @Tags forms
// @Param id path string true "Form ID"
// @Success 204
// @Failure 404 {object} models.ErrorResponse
// @Router /api/forms/{id} [delete]
func (c *FormController) delete(g *gin.Context) {
	id := g.Param("id")
	if !c.forms.remove(id) {
		g.JSON(http.StatusNotFound, models.ErrorResponse{Error: "form not found"})
		return
	}
	logging.Log.Infof("FORM: closed form %s", id)
	g.Status(http.StatusNoContent)
}
