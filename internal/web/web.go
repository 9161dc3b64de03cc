// Package web serves the single-page employee form. Every submission goes through client.Client,
// so the page shows exactly the validation and feedback the API client produces.
package web

import (
	"context"
	"embed"
	"errors"
	"html/template"
	"log/slog"
	"net/http"

	"github.com/geocoder89/employeehub/internal/client"
	"github.com/geocoder89/employeehub/internal/form"
	"github.com/geocoder89/employeehub/internal/http/middlewares"
	"github.com/gin-gonic/gin"
)

//go:embed templates/*.html
var templatesFS embed.FS

const pageCSP = "default-src 'self'; style-src 'self' 'unsafe-inline'; form-action 'self'; frame-ancestors 'none'"

type Submitter interface {
	Submit(ctx context.Context, f form.Form) (client.Feedback, form.Errors, error)
}

type page struct {
	Form        form.Form
	Errors      form.Errors
	Feedback    client.Feedback
	Departments []string
}

type Handler struct {
	submitter Submitter
	log       *slog.Logger
}

func NewHandler(submitter Submitter, log *slog.Logger) *Handler {
	if log == nil {
		log = slog.Default()
	}
	return &Handler{submitter: submitter, log: log}
}

func NewRouter(log *slog.Logger, submitter Submitter) *gin.Engine {
	r := gin.New()

	r.Use(gin.Recovery())
	r.Use(middlewares.RequestID())
	r.Use(middlewares.RequestLogger(log))
	r.Use(func(ctx *gin.Context) {
		ctx.Header("Content-Security-Policy", pageCSP)
		ctx.Header("X-Content-Type-Options", "nosniff")
		ctx.Next()
	})

	r.SetHTMLTemplate(template.Must(template.ParseFS(templatesFS, "templates/*.html")))

	h := NewHandler(submitter, log)
	r.GET("/", h.Show)
	r.POST("/", h.Submit)
	r.POST("/reset", h.Reset)

	return r
}

func (h *Handler) render(ctx *gin.Context, status int, p page) {
	if p.Errors == nil {
		p.Errors = form.Errors{}
	}
	p.Departments = form.Departments()
	ctx.HTML(status, "form.html", p)
}

func (h *Handler) Show(ctx *gin.Context) {
	h.render(ctx, http.StatusOK, page{})
}

// Submit blocks on any invalid field and re-renders with inline errors. Otherwise it sends once; on
// success the form is cleared, on failure the values stay so the user can fix them.
func (h *Handler) Submit(ctx *gin.Context) {
	var f form.Form

	if err := ctx.ShouldBind(&f); err != nil {
		h.render(ctx, http.StatusBadRequest, page{
			Feedback: client.Feedback{Type: client.FeedbackError, Message: "Could not read the submitted form."},
		})
		return
	}

	feedback, errs, err := h.submitter.Submit(ctx.Request.Context(), f)
	switch {
	case errors.Is(err, client.ErrInvalidForm):
		h.render(ctx, http.StatusUnprocessableEntity, page{Form: f, Errors: errs})
		return
	case err != nil:
		h.log.ErrorContext(ctx.Request.Context(), "submit failed", "err", err)
		h.render(ctx, http.StatusOK, page{
			Form:     f,
			Feedback: client.Feedback{Type: client.FeedbackError, Message: client.MsgUnreachable},
		})
		return
	}

	if feedback.OK() {
		f.Reset()
	}

	h.render(ctx, http.StatusOK, page{Form: f, Feedback: feedback})
}

// Reset clears every field and error without submitting.
func (h *Handler) Reset(ctx *gin.Context) {
	h.render(ctx, http.StatusOK, page{})
}
