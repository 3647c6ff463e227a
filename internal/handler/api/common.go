package api

import (
	"fmt"
	"net/http"

	"guidely/internal/domain/user"
	resdto "guidely/internal/handler/dto/response"
	"guidely/internal/handler/httperr"
	"guidely/internal/handler/middleware"
	"guidely/internal/pkg/errs"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

var (
	errNoActor   = errs.New("no authenticated actor on request")
	errInvalidID = errs.Validation("invalid id")
)

type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func requireActor(c *gin.Context) (user.Actor, bool) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errNoActor, "Unauthorized", nil)
	}
	return actor, ok
}

func pathUUID(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, errs.Wrap(errInvalidID, name), "Invalid "+name, nil)
		return uuid.Nil, false
	}
	return id, true
}

// abortBinding reports binding failures with one entry per invalid field.
func abortBinding(c *gin.Context, err error) {
	var verrs validator.ValidationErrors
	if !errs.As(err, &verrs) {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	fields := make([]FieldError, 0, len(verrs))
	for _, fe := range verrs {
		fields = append(fields, FieldError{Field: fe.Field(), Message: fieldMessage(fe)})
	}
	httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", fields)
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", fe.Field())
	case "min":
		return fmt.Sprintf("%s must be at least %s", fe.Field(), fe.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s", fe.Field(), fe.Param())
	case "hhmm":
		return fmt.Sprintf("%s must be HH:MM between 00:00 and 24:00", fe.Field())
	case "isodate":
		return fmt.Sprintf("%s must be a YYYY-MM-DD date", fe.Field())
	case "timezone":
		return fmt.Sprintf("%s must be an IANA time zone", fe.Field())
	default:
		return fmt.Sprintf("%s failed %s", fe.Field(), fe.Tag())
	}
}

// render maps a view to its response and writes it, or aborts on mapping
// failure.
func render[V, R any](c *gin.Context, status int, view V, mapFn func(V) (R, error)) {
	res, err := mapFn(view)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(status, res)
}

// renderData is render with the {success, data} envelope.
func renderData[V, R any](c *gin.Context, status int, view V, mapFn func(V) (R, error)) {
	render(c, status, view, func(v V) (resdto.Envelope[R], error) {
		r, err := mapFn(v)
		if err != nil {
			return resdto.Envelope[R]{}, err
		}
		return resdto.OK(r), nil
	})
}
