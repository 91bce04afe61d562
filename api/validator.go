package api

import (
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/reliefworks/reliefnet/util"
)

// registerCustomValidators wires domain validators into gin's binding engine
func registerCustomValidators() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterValidation("priority", validPriority)
		v.RegisterValidation("role", validRole)
		v.RegisterValidation("warehouse_status", validWarehouseStatus)
	}
}

// validPriority accepts the request priority classes
var validPriority validator.Func = func(fl validator.FieldLevel) bool {
	priority, ok := fl.Field().Interface().(string)
	if !ok {
		return false
	}
	return priority == "general" || priority == "emergency"
}

var validRole validator.Func = func(fl validator.FieldLevel) bool {
	role, ok := fl.Field().Interface().(string)
	if !ok {
		return false
	}
	return util.IsSupportedRole(role)
}

var validWarehouseStatus validator.Func = func(fl validator.FieldLevel) bool {
	status, ok := fl.Field().Interface().(string)
	if !ok {
		return false
	}
	return status == "Operational" || status == "Closed" || status == "Maintenance"
}
