package httperr

import (
	"net/http"

	"savor-sync/internal/domain/reservation"
	"savor-sync/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

type Response struct {
	Status int `json:"-"`
	Error  struct {
		Message string `json:"message"`
	} `json:"error"`
	Detail any `json:"detail,omitempty"`
}

// preserves original error for future monitoring
func AbortWithError(c *gin.Context, status int, err error, msg string, detail any) {
	if err == nil {
		err = errs.New(msg)
	}

	resp := Response{Status: status}
	resp.Error.Message = msg
	resp.Detail = detail

	_ = c.Error(&gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(status, resp)
}

type mapping struct {
	target error
	status int
	msg    string
}

// checked in order; the first match wins
var mappings = []mapping{
	{errs.ErrInvalidContactInfo, http.StatusBadRequest, "Invalid contact info"},
	{errs.ErrInvalidRequest, http.StatusBadRequest, "Invalid request"},
	{errs.ErrUnauthenticated, http.StatusUnauthorized, "Sign-in required"},
	{errs.ErrOwnerModeRequired, http.StatusForbidden, "Owner mode required"},
	{reservation.ErrIllegalTransition, http.StatusConflict, "Status transition not allowed"},
	{errs.ErrLocalOnlyReservation, http.StatusConflict, "Reservation has not reached the server yet"},
	{errs.ErrStatusUpdateFailed, http.StatusBadGateway, "Status update did not take effect"},
	{errs.ErrRemoteWriteFailed, http.StatusBadGateway, "Backend rejected the request"},
	{errs.ErrStorageFailure, http.StatusInternalServerError, "Local storage unavailable"},
}

// StatusFor maps a usecase error to an HTTP status and a public message.
func StatusFor(err error) (int, string) {
	for _, m := range mappings {
		if errs.Is(err, m.target) {
			return m.status, m.msg
		}
	}
	return http.StatusInternalServerError, "Internal server error"
}

// AbortWithUsecaseError aborts with the status mapped from err. Field-level
// validation causes are exposed as detail.
func AbortWithUsecaseError(c *gin.Context, err error) {
	status, msg := StatusFor(err)
	var detail any
	if status == http.StatusBadRequest {
		detail = validationDetail(err)
	}
	AbortWithError(c, status, err, msg, detail)
}

func validationDetail(err error) any {
	for _, cause := range []error{
		reservation.ErrInvalidName,
		reservation.ErrInvalidPhone,
		reservation.ErrInvalidQuantity,
		reservation.ErrNegativePrice,
	} {
		if errs.Is(err, cause) {
			return gin.H{"reason": cause.Error()}
		}
	}
	return nil
}
