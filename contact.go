package portfolio

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/mdalaminab17/portfolio/views"
)

// ContactSink receives accepted contact form submissions.
type ContactSink interface {
	Deliver(ctx context.Context, m ContactMessage) error
}

type contactRequest struct {
	Name    string `form:"name" validate:"required,max=100"`
	Email   string `form:"email" validate:"required,email,max=254"`
	Subject string `form:"subject" validate:"max=200"`
	Message string `form:"message" validate:"required,min=10,max=5000"`
}

func (r *contactRequest) trim() {
	r.Name = strings.TrimSpace(r.Name)
	r.Email = strings.TrimSpace(r.Email)
	r.Subject = strings.TrimSpace(r.Subject)
	r.Message = strings.TrimSpace(r.Message)
}

func (r contactRequest) form() views.ContactForm {
	return views.ContactForm{Name: r.Name, Email: r.Email, Subject: r.Subject, Message: r.Message}
}

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// Report fields by their form names.
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("form"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// fieldErrors maps validation failures to one message per form field.
func fieldErrors(err error) map[string]string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return map[string]string{"form": "Please check the form and try again."}
	}
	out := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		if _, seen := out[fe.Field()]; seen {
			continue
		}
		switch fe.Tag() {
		case "required":
			out[fe.Field()] = "This field is required."
		case "email":
			out[fe.Field()] = "Enter a valid email address."
		case "min":
			out[fe.Field()] = fmt.Sprintf("Must be at least %s characters.", fe.Param())
		case "max":
			out[fe.Field()] = fmt.Sprintf("Must be at most %s characters.", fe.Param())
		default:
			out[fe.Field()] = "Invalid value."
		}
	}
	return out
}

// handleContact validates a submission, stores it, and forwards it to any
// extra sinks. Validation errors re-render the form; htmx only swaps 2xx
// responses, so those are 200 for htmx and 422 otherwise.
func (a *App) handleContact(c echo.Context) error {
	ip := c.RealIP()
	if IsBot(c.Request().UserAgent()) {
		return echo.NewHTTPError(http.StatusForbidden, "Forbidden")
	}
	if !a.contactLimiter.Allow(ip) {
		return c.String(http.StatusTooManyRequests, "Too many messages. Try again later.")
	}

	var req contactRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid form")
	}
	req.trim()
	if err := a.validate.Struct(req); err != nil {
		form := req.form()
		form.Errors = fieldErrors(err)
		code := http.StatusUnprocessableEntity
		if isHTMX(c) {
			code = http.StatusOK
		}
		return RenderStatus(c, code, views.ContactFormPartial(form))
	}

	msg := ContactMessage{
		Name:      req.Name,
		Email:     req.Email,
		Subject:   req.Subject,
		Message:   req.Message,
		IPHash:    HashIP(a.ipSalt, ip),
		CreatedAt: time.Now().UTC().Format(time.RFC3339),
	}
	ctx := c.Request().Context()
	if err := a.Store.Deliver(ctx, msg); err != nil {
		a.Log.Error("contact message not stored", zap.Error(err))
		form := req.form()
		form.Failed = true
		return Render(c, views.ContactFormPartial(form))
	}
	for _, s := range a.sinks {
		if err := s.Deliver(ctx, msg); err != nil {
			a.Log.Warn("contact message not forwarded",
				zap.String("sink", fmt.Sprintf("%T", s)), zap.Error(err))
		}
	}
	a.Log.Info("contact message received", zap.String("ip_hash", msg.IPHash))
	return Render(c, views.ContactSent(req.Name))
}
