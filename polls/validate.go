// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package polls

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/danielhkuo/pollboard/models"
)

const (
	MaxQuestionLen = 500
	MaxOptionLen   = 200
	MaxOptions     = 20
)

const msgQuestionAndOptions = "Please provide a question and at least two options."

type pollInput struct {
	Question string   `validate:"required,max=500"`
	Options  []string `validate:"min=2,max=20,dive,required,max=200"`
}

var validate = validator.New()

// normalizePoll trims the question and options, drops empty options, and
// checks the result. Option order is preserved.
func normalizePoll(question string, options []string) (pollInput, error) {
	in := pollInput{Question: strings.TrimSpace(question)}
	for _, opt := range options {
		if opt = strings.TrimSpace(opt); opt != "" {
			in.Options = append(in.Options, opt)
		}
	}

	if err := validate.Struct(in); err != nil {
		var verrs validator.ValidationErrors
		if !errors.As(err, &verrs) || len(verrs) == 0 {
			return pollInput{}, invalid(msgQuestionAndOptions)
		}
		return pollInput{}, invalid(pollMessage(verrs[0]))
	}

	if len(in.Options) < models.MinOptions {
		return pollInput{}, invalid(msgQuestionAndOptions)
	}
	return in, nil
}

func pollMessage(fe validator.FieldError) string {
	switch {
	case fe.Tag() == "required" && fe.Field() == "Question", fe.Tag() == "min":
		return msgQuestionAndOptions
	case fe.Field() == "Question" && fe.Tag() == "max":
		return fmt.Sprintf("Question must be at most %d characters.", MaxQuestionLen)
	case fe.Field() == "Options" && fe.Tag() == "max":
		return fmt.Sprintf("A poll can have at most %d options.", MaxOptions)
	case strings.HasPrefix(fe.Field(), "Options[") && fe.Tag() == "max":
		return fmt.Sprintf("Options must be at most %d characters.", MaxOptionLen)
	default:
		return msgQuestionAndOptions
	}
}
