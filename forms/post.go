package forms

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"gorm.io/gorm"

	"postboard/models"
)

// Field error codes; the templates own the presentation.
const (
	ErrRequired         = "required"
	ErrInvalidReference = "invalid_reference"
)

var validate = validator.New()

// PostForm carries the submitted create/edit fields. Validation and
// persistence are separate steps: Validate produces field errors without
// writing anything, Apply copies the checked fields onto a draft and the
// handler commits it.
type PostForm struct {
	Text  string `form:"text" validate:"required"`
	Group string `form:"group"`

	groupID *uint64
}

// FromPost pre-populates the form from an existing post (edit mode).
func FromPost(post *models.Post) PostForm {
	form := PostForm{Text: post.Text}
	if post.GroupID != nil {
		form.Group = strconv.FormatUint(*post.GroupID, 10)
	}
	return form
}

func (f *PostForm) Bind(c *gin.Context) error {
	return c.ShouldBindWith(f, binding.Form)
}

// Validate checks the submitted fields and returns per-field error codes.
// The group, when given, must be the id of an existing group. The returned
// error is a store failure, not a validation outcome.
func (f *PostForm) Validate() (map[string]string, error) {
	fieldErrors := map[string]string{}
	if err := validate.Struct(f); err != nil {
		var validationErrors validator.ValidationErrors
		if !errors.As(err, &validationErrors) {
			return nil, err
		}
		for _, fieldError := range validationErrors {
			if fieldError.Field() == "Text" {
				fieldErrors["text"] = ErrRequired
			}
		}
	}
	f.groupID = nil
	if f.Group != "" {
		id, err := strconv.ParseUint(f.Group, 10, 64)
		if err != nil {
			fieldErrors["group"] = ErrInvalidReference
		} else if _, err := models.GroupByID(id); err != nil {
			if !errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, err
			}
			fieldErrors["group"] = ErrInvalidReference
		} else {
			f.groupID = &id
		}
	}
	return fieldErrors, nil
}

// Apply copies the validated fields onto the draft. The author is never
// touched here.
func (f *PostForm) Apply(post *models.Post) {
	post.Text = f.Text
	post.GroupID = f.groupID
}
