package validatorx

import (
	"strings"
	"sync"

	gpvalidator "github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

var (
	v   *gpvalidator.Validate
	mut sync.Mutex
)

// Init initializes the validator singleton (idempotent)
func Init() {
	mut.Lock()
	defer mut.Unlock()
	if v != nil {
		return
	}
	v = gpvalidator.New()
	_ = v.RegisterValidation("notblank", notBlank)
	_ = v.RegisterValidation("uuid_any", isUUID)
}

// ValidateStruct validates a struct using go-playground/validator
func ValidateStruct(s interface{}) error {
	if v == nil {
		Init()
	}
	return v.Struct(s)
}

// ValidateVar validates a single value against a tag, e.g. "required,uuid_any"
func ValidateVar(field interface{}, tag string) error {
	if v == nil {
		Init()
	}
	return v.Var(field, tag)
}

func notBlank(fl gpvalidator.FieldLevel) bool {
	return strings.TrimSpace(fl.Field().String()) != ""
}

func isUUID(fl gpvalidator.FieldLevel) bool {
	_, err := uuid.Parse(fl.Field().String())
	return err == nil
}
