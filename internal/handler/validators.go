package handler

import (
	"errors"
	"sync"

	"frontdesk/internal/datemath"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var registerOnce sync.Once

// RegisterValidators adds the `ymd` (CalendarDate) binding tag to gin's
// validator. Stay times are checked by ValidateStay so their errors come back
// per field.
func RegisterValidators() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return errors.New("unexpected binding validator engine")
	}

	var err error
	registerOnce.Do(func() {
		err = v.RegisterValidation("ymd", validateYMD)
	})
	return err
}

func validateYMD(fl validator.FieldLevel) bool {
	_, err := datemath.ParseStrict(fl.Field().String())
	return err == nil
}
