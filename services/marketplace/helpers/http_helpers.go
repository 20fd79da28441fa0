package helpers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"reflect"
	"strconv"
	"strings"
	"sync"

	"auction-marketplace/internal/auth"
	marketplace "auction-marketplace/internal/marketplaceService"
	"auction-marketplace/internal/marketplaceerrors"
	model "auction-marketplace/internal/models"
	"auction-marketplace/utils"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var registerOnce sync.Once

// RegisterValidation makes gin's validator report fields by their JSON names.
func RegisterValidation() {
	registerOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}
		_ = v.RegisterValidation("rating", func(fl validator.FieldLevel) bool {
			value := fl.Field().Int()
			return value >= marketplace.RatingMin && value <= marketplace.RatingMax
		})
		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			if name == "" {
				return fld.Name
			}
			return name
		})
	})
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "This field is required."
	case "max":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("Ensure this field has no more than %s characters.", fe.Param())
		}
		return fmt.Sprintf("Ensure this value is less than or equal to %s.", fe.Param())
	case "min", "gte":
		return fmt.Sprintf("Ensure this value is greater than or equal to %s.", fe.Param())
	case "gt":
		return fmt.Sprintf("Ensure this value is greater than %s.", fe.Param())
	case "url":
		return "Enter a valid URL."
	case "rating":
		return marketplace.RatingRangeMessage
	default:
		return "Invalid value."
	}
}

// BindErrorFields turns a binding failure into a field -> message map
func BindErrorFields(err error) map[string]string {
	fields := make(map[string]string)

	var verrs validator.ValidationErrors
	var typeErr *json.UnmarshalTypeError
	switch {
	case errors.As(err, &verrs):
		for _, fe := range verrs {
			if _, exists := fields[fe.Field()]; !exists {
				fields[fe.Field()] = fieldMessage(fe)
			}
		}
	case errors.As(err, &typeErr) && typeErr.Field != "":
		fields[typeErr.Field] = fmt.Sprintf("Expected a value of type %s.", typeErr.Type.String())
	default:
		fields["non_field_errors"] = "Invalid JSON body."
	}
	return fields
}

// HandleBindError sends a standardized JSON error for binding failures
func HandleBindError(c *gin.Context, handlerName string, err error) {
	wrappedErr := fmt.Errorf("invalid request payload: %w", err)
	utils.JSONValidationError(c, http.StatusBadRequest, wrappedErr, "invalid request payload", BindErrorFields(err))
	utils.Warn(handlerName+": binding error", map[string]any{"error": err.Error()})
}

// MapErrorToHTTP maps domain/service errors to HTTP status code and message
func MapErrorToHTTP(err error) (int, string) {
	if _, ok := marketplaceerrors.AsValidation(err); ok {
		return http.StatusBadRequest, "validation failed"
	}
	switch {
	case errors.Is(err, marketplaceerrors.ErrCategoryNotFound):
		return http.StatusNotFound, "category not found"
	case errors.Is(err, marketplaceerrors.ErrAuctionNotFound):
		return http.StatusNotFound, "auction not found"
	case errors.Is(err, marketplaceerrors.ErrBidNotFound):
		return http.StatusNotFound, "bid not found"
	case errors.Is(err, marketplaceerrors.ErrCommentNotFound):
		return http.StatusNotFound, "comment not found"
	case errors.Is(err, marketplaceerrors.ErrRatingNotFound):
		return http.StatusNotFound, "No rating found"
	case errors.Is(err, marketplaceerrors.ErrDuplicateName):
		return http.StatusBadRequest, "category with this name already exists"
	case errors.Is(err, marketplaceerrors.ErrUnauthenticated):
		return http.StatusUnauthorized, "authentication credentials were not provided"
	case errors.Is(err, marketplaceerrors.ErrForbidden):
		return http.StatusForbidden, "you do not have permission to perform this action"
	default:
		return http.StatusInternalServerError, "internal server error"
	}
}

// HandleServiceError writes the error envelope for a failed service call and logs it.
// Validation failures carry their field messages under "errors".
func HandleServiceError(c *gin.Context, handlerName string, err error, ctx map[string]any) {
	status, message := MapErrorToHTTP(err)
	wrapped := fmt.Errorf("%s: %w", message, err)

	if verr, ok := marketplaceerrors.AsValidation(err); ok {
		utils.JSONValidationError(c, status, wrapped, message, verr.Fields)
	} else if errors.Is(err, marketplaceerrors.ErrDuplicateName) {
		utils.JSONValidationError(c, status, wrapped, message, map[string]string{"name": "category with this name already exists."})
	} else {
		utils.JSONError(c, status, wrapped, message)
	}

	fields := map[string]any{"handler": handlerName, "status": status, "error": err.Error()}
	for k, v := range ctx {
		fields[k] = v
	}
	if status >= http.StatusInternalServerError {
		utils.Error(handlerName+": request failed", fields)
		return
	}
	utils.Warn(handlerName+": request rejected", fields)
}

// ParseID reads a positive numeric path parameter. Anything else is answered
// with 404, as no resource can live at that path.
func ParseID(c *gin.Context, handlerName, param string) (uint, bool) {
	raw := c.Param(param)
	id, err := strconv.ParseUint(raw, 10, 0)
	if err != nil || id == 0 {
		utils.JSONError(c, http.StatusNotFound, fmt.Errorf("invalid %s %q", param, raw), "not found")
		utils.Warn(handlerName+": invalid path parameter", map[string]any{"param": param, "value": raw})
		return 0, false
	}
	return uint(id), true
}

// Principal returns the authenticated principal of the request, nil when anonymous
func Principal(c *gin.Context) *model.Principal {
	return auth.PrincipalFromContext(c.Request.Context())
}

// LogSuccess is a small helper to standardize logging of successful operations
func LogSuccess(handlerName, message string, ctx map[string]any) {
	utils.Info(handlerName+": "+message, ctx)
}
