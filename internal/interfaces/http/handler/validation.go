package handler

import (
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// deliveryDays are the accepted values for a subscription's preferred
// delivery day. "Any Day" opts the customer out of scheduled deliveries.
var deliveryDays = map[string]struct{}{
	"Any Day":   {},
	"Monday":    {},
	"Tuesday":   {},
	"Wednesday": {},
	"Thursday":  {},
	"Friday":    {},
	"Saturday":  {},
	"Sunday":    {},
}

// RegisterValidators installs custom binding validators. Call once at
// startup before routes are served.
func RegisterValidators() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("deliveryday", func(fl validator.FieldLevel) bool {
			_, ok := deliveryDays[fl.Field().String()]
			return ok
		})
	}
}
