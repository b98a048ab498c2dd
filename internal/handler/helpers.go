package handler

import (
	"errors"
	"net/http"
	"reflect"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"

	"github.com/NDAYIZEYE-Vincent/Gestion-de-Stock-et-Ventes/internal/apierror"
	"github.com/NDAYIZEYE-Vincent/Gestion-de-Stock-et-Ventes/internal/ledger"
)

var validate = validator.New()

func init() {
	// Register decimal.Decimal as a numeric type so that validator tags like
	// min=0, oneof work without panicking ("Bad field type decimal.Decimal").
	validate.RegisterCustomTypeFunc(func(field reflect.Value) interface{} {
		if v, ok := field.Interface().(decimal.Decimal); ok {
			f, _ := v.Float64()
			return f
		}
		return nil
	}, decimal.Decimal{})
}

// bindAndValidate binds the JSON body and runs validator tags. Returns false
// and writes the error response if either step fails — the caller must
// return immediately.
func bindAndValidate(c *gin.Context, req interface{}) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("JSON invalide: "+err.Error()))
		return false
	}
	return runValidation(c, req)
}

// bindQueryAndValidate is the query-string counterpart of bindAndValidate.
func bindQueryAndValidate(c *gin.Context, req interface{}) bool {
	if err := c.ShouldBindQuery(req); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return false
	}
	return runValidation(c, req)
}

func runValidation(c *gin.Context, req interface{}) bool {
	if err := validate.Struct(req); err != nil {
		fields := make(map[string]string)
		for _, fe := range err.(validator.ValidationErrors) {
			fields[fe.Field()] = fe.Tag()
		}
		c.JSON(http.StatusUnprocessableEntity, apierror.NewValidation(fields))
		return false
	}
	return true
}

// indexParam parses the positional :index path parameter.
func indexParam(c *gin.Context) (int, bool) {
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("Index invalide"))
		return 0, false
	}
	return index, true
}

// writeDomainError maps ledger errors onto HTTP statuses. Anything not in
// the taxonomy is attached to the context for ErrorHandler to log as a 500.
func writeDomainError(c *gin.Context, err error) {
	var insufficient *ledger.InsufficientStockError
	switch {
	case errors.As(err, &insufficient):
		c.JSON(http.StatusConflict, apierror.New(insufficient.Error()))
	case errors.Is(err, ledger.ErrProductNotFound), errors.Is(err, ledger.ErrIndexOutOfRange):
		c.JSON(http.StatusNotFound, apierror.New(err.Error()))
	case errors.Is(err, ledger.ErrMissingField),
		errors.Is(err, ledger.ErrMissingSelection),
		errors.Is(err, ledger.ErrNegativeValue),
		errors.Is(err, ledger.ErrNonPositiveQuantity):
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
	default:
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
	}
}

// setFlushWarning exposes a persistence warning on an otherwise successful
// response. The mutation applied; only the CSV write is behind.
func setFlushWarning(c *gin.Context, warning string) {
	if warning != "" {
		c.Header("X-Flush-Warning", warning)
	}
}
