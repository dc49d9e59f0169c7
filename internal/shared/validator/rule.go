package validator

import (
	"context"
	"fmt"
	"net/url"
	"regexp"
	"strings"

	sharedError "github.com/uiseong-market/form-server/internal/shared/error"
)

// Check reports whether a rule holds. An error means the rule could not be decided
// (e.g. the document store is unreachable) and is never treated as pass or fail.
type Check func(ctx context.Context) (bool, error)

// Rule is one (field, check, error) entry of an ordered rule list
type Rule struct {
	Field string
	Check Check
	Err   error // 실패 시 반환되는 도메인 에러
}

// Evaluate runs rules in order and stops at the first failure.
//
// Usage:
//
//	err := validator.Evaluate(ctx,
//	    validator.Rule{Field: "password", Check: validator.Equal(pw, pwCheck), Err: ErrPasswordMismatch},
//	    validator.Rule{Field: "nickname", Check: validator.Absent(lookup), Err: ErrDuplicateNickname},
//	)
func Evaluate(ctx context.Context, rules ...Rule) error {
	for _, rule := range rules {
		if err := ctx.Err(); err != nil {
			return err
		}

		ok, err := rule.Check(ctx)
		if err != nil {
			return fmt.Errorf("%s 검사 실패: %w", rule.Field, err)
		}
		if !ok {
			return NewFieldError(rule.Field, rule.Err)
		}
	}
	return nil
}

// NewFieldError builds a FieldError whose message is the registered client message of err
func NewFieldError(field string, err error) *FieldError {
	message := err.Error()
	if resp, ok := sharedError.ResolveDomainError(err); ok {
		message = resp.Message
	}
	return &FieldError{Field: field, Message: message, Err: err}
}

// Match passes when re matches value
func Match(re *regexp.Regexp, value string) Check {
	return func(context.Context) (bool, error) {
		return re.MatchString(value), nil
	}
}

// Equal passes when a and b are exactly equal
func Equal(a, b string) Check {
	return func(context.Context) (bool, error) {
		return a == b, nil
	}
}

// HostContains passes when the host of rawURL contains one of needles (case-insensitive)
func HostContains(rawURL string, needles ...string) Check {
	return func(context.Context) (bool, error) {
		u, err := url.Parse(rawURL)
		if err != nil {
			return false, nil
		}
		host := strings.ToLower(u.Hostname())
		for _, needle := range needles {
			if strings.Contains(host, needle) {
				return true, nil
			}
		}
		return false, nil
	}
}

// Absent passes when exists reports false. Lookup errors are propagated.
func Absent(exists func(ctx context.Context) (bool, error)) Check {
	return func(ctx context.Context) (bool, error) {
		found, err := exists(ctx)
		if err != nil {
			return false, err
		}
		return !found, nil
	}
}
