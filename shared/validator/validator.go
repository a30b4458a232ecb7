package validator

import (
	"cyclebook/shared/failure"
	"encoding/json"
	"fmt"
	"io"
	"reflect"
	"regexp"
	"strings"
	"sync"

	val "github.com/go-playground/validator/v10"
)

const (
	TagInstitutionEmail = "institution_email"
	TagNotBlank         = "notblank"

	DefaultInstitutionDomain = "sastra.ac.in"
	maxBodyBytes             = 1 << 20
)

var (
	validate *val.Validate

	domainMu     sync.RWMutex
	emailPattern = compileEmailPattern(DefaultInstitutionDomain)
)

func compileEmailPattern(domain string) *regexp.Regexp {
	return regexp.MustCompile(`(?i)^\d{9}@` + regexp.QuoteMeta(domain) + `$`)
}

// SetInstitutionDomain changes the domain accepted by the institution_email rule.
func SetInstitutionDomain(domain string) {
	if domain == "" {
		domain = DefaultInstitutionDomain
	}

	domainMu.Lock()
	emailPattern = compileEmailPattern(domain)
	domainMu.Unlock()
}

// IsInstitutionEmail reports whether email is nine digits at the institution domain, ignoring case.
func IsInstitutionEmail(email string) bool {
	domainMu.RLock()
	defer domainMu.RUnlock()

	return emailPattern.MatchString(email)
}

func init() {
	validate = val.New(val.WithRequiredStructEnabled())

	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return fld.Name
		}

		return name
	})

	err := validate.RegisterValidation(TagInstitutionEmail, func(fl val.FieldLevel) bool {
		return IsInstitutionEmail(fl.Field().String())
	})
	if err != nil {
		panic(err)
	}

	err = validate.RegisterValidation(TagNotBlank, func(fl val.FieldLevel) bool {
		return strings.TrimSpace(fl.Field().String()) != ""
	})
	if err != nil {
		panic(err)
	}
}

// Validate decodes JSON from r into data and validates the result.
// Decoding and validation problems are returned as 400 failures.
func Validate[T any](r io.Reader, data *T) error {
	decoder := json.NewDecoder(io.LimitReader(r, maxBodyBytes))

	if err := decoder.Decode(data); err != nil {
		return failure.BadRequest(fmt.Errorf("failed to decode request body: %w", err)) //nolint:wrapcheck
	}

	return ValidateStruct(data)
}

func ValidateStruct[T any](data *T) error {
	if err := validate.Struct(data); err != nil {
		return failure.BadRequestFromString(message(err)) //nolint:wrapcheck
	}

	return nil
}

func ValidateVar(field any, tag string) error {
	if err := validate.Var(field, tag); err != nil {
		return failure.BadRequestFromString(message(err)) //nolint:wrapcheck
	}

	return nil
}
