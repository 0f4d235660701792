package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/oksasatya/go-blog-api/internal/domain/errs"
	"github.com/oksasatya/go-blog-api/pkg/response"
)

// respondErr maps domain errors onto HTTP statuses:
// validation 400, not found 404, conflict 409, anything else 500.
func respondErr(c *gin.Context, err error) {
	var ve *errs.ValidationError
	var nf *errs.NotFoundError
	var cf *errs.ConflictError

	switch {
	case errors.As(err, &ve):
		response.Error[any](c, http.StatusBadRequest, ve.Message, map[string]string{ve.Field: ve.Message})
	case errors.As(err, &nf):
		response.Error[any](c, http.StatusNotFound, nf.Error(), nil)
	case errors.As(err, &cf):
		response.Error[any](c, http.StatusConflict, cf.Message, nil)
	default:
		response.Error[any](c, http.StatusInternalServerError, "internal server error", nil)
	}
}
