package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

const httpStatusCodeInternalError = 600

// Controller handles a request and returns the `data` of the response envelope.
type Controller func(c *gin.Context) (interface{}, error)

// Wrap adapts a Controller to gin, rendering the result or error as a BusinessError envelope.
func Wrap(controller Controller) gin.HandlerFunc {
	return func(c *gin.Context) {
		result, err := controller(c)
		if err != nil {
			c.JSON(errorResponse(c, err))
		} else if result == nil {
			c.JSON(http.StatusOK, ErrNil)
		} else {
			c.JSON(http.StatusOK, ErrNil.WithData(result))
		}
	}
}

func errorResponse(c *gin.Context, err error) (int, *BusinessError) {
	var businessErr *BusinessError
	if errors.As(err, &businessErr) {
		return http.StatusOK, businessErr
	}

	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		return http.StatusOK, ErrValidation.WithData(validationErrs.Error())
	}

	logrus.WithError(err).WithFields(logrus.Fields{
		"method": c.Request.Method,
		"path":   c.FullPath(),
	}).Warn("Failed to handle API request")

	return httpStatusCodeInternalError, ErrInternal.WithData(err.Error())
}
