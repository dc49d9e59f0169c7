package signup

import (
	"context"

	sharedError "github.com/uiseong-market/form-server/internal/shared/error"
	"github.com/uiseong-market/form-server/internal/shared/hash"
	"github.com/uiseong-market/form-server/internal/shared/validator"
)

const birthdayMask = "******"

// UniquenessChecker reports whether a stored record already has field == value
type UniquenessChecker interface {
	ExistsWithField(ctx context.Context, collection, field, value string) (bool, error)
}

type Validator struct {
	engine *validator.Engine
	hasher hash.Hasher
}

func NewValidator(engine *validator.Engine, hasher hash.Hasher) *Validator {
	return &Validator{
		engine: engine,
		hasher: hasher,
	}
}

// Validate checks form in a fixed order and stops at the first failure:
// required fields, password confirmation, birthday, phone number, nickname and id uniqueness.
// Uniqueness is only queried once every local rule has passed.
func (v *Validator) Validate(ctx context.Context, form *Form, checker UniquenessChecker) (Record, error) {
	if err := v.engine.Struct(ctx, form); err != nil {
		return Record{}, err
	}

	err := validator.Evaluate(ctx,
		validator.Rule{Field: "password", Check: validator.Equal(form.Password, form.PasswordCheck), Err: ErrPasswordMismatch},
		validator.Rule{Field: "birthday", Check: v.engine.Tag(form.Birthday, "birthday"), Err: ErrInvalidBirthday},
		validator.Rule{Field: "phone_number", Check: v.engine.Tag(form.PhoneNumber, "phone"), Err: ErrInvalidPhone},
		validator.Rule{Field: "nickname", Check: validator.Absent(exists(checker, "nickname", form.Nickname)), Err: ErrDuplicateNickname},
		validator.Rule{Field: "id", Check: validator.Absent(exists(checker, "id", form.ID)), Err: ErrDuplicateID},
	)
	if err != nil {
		return Record{}, err
	}

	hashed, err := v.hasher.Hash(form.Password)
	if err != nil {
		return Record{}, err
	}

	return Record{
		Name:         form.Name,
		Nickname:     form.Nickname,
		ID:           form.ID,
		PasswordHash: hashed,
		Birthday:     maskBirthday(form.Birthday),
		PhoneNumber:  form.PhoneNumber,
	}, nil
}

// exists looks up field in the users collection. A failed read is a persistence error, never "not found".
func exists(checker UniquenessChecker, field, value string) func(ctx context.Context) (bool, error) {
	return func(ctx context.Context) (bool, error) {
		found, err := checker.ExistsWithField(ctx, collection, field, value)
		if err != nil {
			return false, sharedError.NewPersistenceError(err)
		}
		return found, nil
	}
}

// maskBirthday keeps the six birth digits: 990101-1 -> 990101******
func maskBirthday(birthday string) string {
	return birthday[:6] + birthdayMask
}
