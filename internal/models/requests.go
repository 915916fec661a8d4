package models

import (
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

var notBlank = validation.NewStringRule(func(s string) bool {
	return strings.TrimSpace(s) != ""
}, "must not be blank")

func (r CreateQuestionRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Title,
			validation.Required.Error("title is required"),
			notBlank,
		),
	)
}

func (r CreateAnswerRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Content, validation.Required.Error("content is required"), notBlank),
	)
}

func (r CreateCommentRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Text, validation.Required.Error("text is required"), notBlank),
	)
}

func (v Vote) Validate() error {
	return validation.ValidateStruct(&v,
		validation.Field(&v.Direction, validation.In(-1, 0, 1).Error(ErrInvalidDirection.Error())),
	)
}

func (r SyncUserRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Email, validation.Required.Error("email is required"), notBlank),
	)
}
