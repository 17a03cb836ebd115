package handlers

import (
	"errors"
	"reflect"
	"strconv"
	"strings"
	"sync"

	"teacher-rating-api/internal/apperr"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

const missingFieldsMessage = "Fields not filled"

type credentialsForm struct {
	Username string `form:"username" binding:"required,notblank"`
	Password string `form:"password" binding:"required"`
}

type teacherForm struct {
	Name   string `form:"name" binding:"required,notblank"`
	School string `form:"school" binding:"required,notblank"`
}

type ratingForm struct {
	TeacherID string `form:"uuid" binding:"required,notblank"`
	Rating    string `form:"rating" binding:"required,notblank"`
}

// Value parses the submitted rating. Any integer is accepted.
func (f ratingForm) Value() (int, error) {
	v, err := strconv.Atoi(strings.TrimSpace(f.Rating))
	if err != nil {
		return 0, apperr.Validation("Rating must be a whole number", "rating")
	}
	return v, nil
}

var setupValidator sync.Once

// registerValidations reports form field names instead of struct field names
// and adds the notblank rule.
func registerValidations() {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return
	}
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		if name := fld.Tag.Get("form"); name != "" && name != "-" {
			return name
		}
		return fld.Name
	})
	_ = v.RegisterValidation("notblank", func(fl validator.FieldLevel) bool {
		return strings.TrimSpace(fl.Field().String()) != ""
	})
}

// bindForm binds the posted form into dst and returns a validation error
// naming every missing or invalid field.
func bindForm(c *gin.Context, dst any) error {
	setupValidator.Do(registerValidations)

	err := c.ShouldBind(dst)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		fields := make([]string, 0, len(verrs))
		for _, fe := range verrs {
			fields = append(fields, fe.Field())
		}
		return apperr.Validation(missingFieldsMessage, fields...)
	}
	return apperr.Validation(missingFieldsMessage)
}
