// Package validator provides the rule and error types shared by the password
// checks in this module.
//
// A Rule couples a boolean Check function with translation-friendly error
// metadata. Apply evaluates every rule and aggregates the failures into a
// ValidationErrors slice that satisfies the error interface; First stops at the
// first failure for forms that display a single message per field.
//
// # Usage
//
//	err := validator.Apply(password.ValidatorRules("password", value)...)
//	if verrs := validator.ExtractValidationErrors(err); verrs != nil {
//	    for _, e := range verrs {
//	        fmt.Println(e.Rule, e.TranslationKey)
//	    }
//	}
//
// # Error Handling
//
// ValidationErrors matches ErrValidationFailed through errors.Is, and can be
// recovered from wrapped errors with ExtractValidationErrors.
package validator
