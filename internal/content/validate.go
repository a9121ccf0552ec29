package content

import (
	"regexp"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate

	classTokensPattern = regexp.MustCompile(`^[A-Za-z][A-Za-z0-9_-]*(?: [A-Za-z][A-Za-z0-9_-]*)*$`)
	screenArtKinds     = map[string]struct{}{"front-page": {}, "thread": {}, "search": {}, "themes": {}}
)

func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()

		_ = v.RegisterValidation("class_tokens", func(fl validator.FieldLevel) bool {
			return classTokensPattern.MatchString(fl.Field().String())
		})

		_ = v.RegisterValidation("screen_art", func(fl validator.FieldLevel) bool {
			_, ok := screenArtKinds[fl.Field().String()]
			return ok
		})

		validateInst = v
	})

	return validateInst
}

// Validate performs schema validation on a parsed site document.
func Validate(s *Site) error {
	if s == nil {
		return errInvalid("site", "content is nil")
	}

	if err := validatorInstance().Struct(s); err != nil {
		return convertValidationError(err)
	}

	return nil
}

func convertValidationError(err error) error {
	if err == nil {
		return nil
	}

	if ves, ok := err.(validator.ValidationErrors); ok && len(ves) > 0 {
		ve := ves[0]
		return errInvalid(yamlishFieldName(ve), "failed validation for tag '%s'", ve.Tag())
	}

	return errInvalid("content", "%s", err.Error())
}

func yamlishFieldName(fe validator.FieldError) string {
	parts := strings.Split(fe.StructNamespace(), ".")
	lowered := make([]string, 0, len(parts))
	for _, part := range parts {
		lowered = append(lowered, strings.ToLower(part))
	}
	return strings.Join(lowered, ".")
}
