package utils

import (
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// InitValidator registers custom rules on gin's binding engine.
func InitValidator() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterValidation("sitelang", ValidateSiteLanguageRule)
	}
}

func ValidateSiteLanguageRule(fl validator.FieldLevel) bool {
	return ValidateSiteLanguage(fl.Field().String())
}

// ValidateSiteLanguage accepts the two languages the site is published in.
func ValidateSiteLanguage(language string) bool {
	switch language {
	case "en", "ne":
		return true
	}
	return false
}
