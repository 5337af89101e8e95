package validators

import (
	"context"
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/jaychenthinkfast/OneTabCloud/models"
)

// Field name constants restrict validation of a models.TabGroup to a subset
// of its fields. They are the Go field names understood by
// validator.StructPartial.
const (
	FieldID           = "ID"
	FieldName         = "Name"
	FieldLastModified = "LastModified"
)

// tagTimestamp is the custom tag checking an ISO-8601 timestamp.
const tagTimestamp = "timestamp"

// SyncDataValidator implements the Validator interface for the models that
// cross a trust boundary: tab groups and tab entries imported from files,
// and container requests received by the server.
//
// Both value and pointer forms of each model are accepted.
type SyncDataValidator struct {
	validate *validator.Validate
}

// NewSyncDataValidator constructs a SyncDataValidator with the custom
// "timestamp" tag registered.
func NewSyncDataValidator() Validator {
	v := validator.New(validator.WithRequiredStructEnabled())
	// registration fails only for an empty tag or a nil function
	_ = v.RegisterValidation(tagTimestamp, isTimestamp)

	return &SyncDataValidator{validate: v}
}

// Validate dispatches on the dynamic type of obj.
//
// Supported types:
//   - models.TabGroup / *models.TabGroup / []models.TabGroup
//   - models.TabEntry / *models.TabEntry / []models.TabEntry
//   - models.CreateContainerRequest / *models.CreateContainerRequest
//   - models.UpdateContainerRequest / *models.UpdateContainerRequest
//
// fields is honoured for a single models.TabGroup only. Returns
// ErrUnsupportedType for any other type, including nil pointers.
func (v *SyncDataValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.TabGroup:
		return v.check(ctx, ErrInvalidTabGroup, value, fields...)
	case *models.TabGroup:
		if value == nil {
			return ErrUnsupportedType
		}
		return v.check(ctx, ErrInvalidTabGroup, *value, fields...)
	case []models.TabGroup:
		for i, group := range value {
			if err := v.check(ctx, ErrInvalidTabGroup, group); err != nil {
				return fmt.Errorf("group %d: %w", i, err)
			}
		}
		return nil

	case models.TabEntry:
		return v.check(ctx, ErrInvalidTabEntry, value)
	case *models.TabEntry:
		if value == nil {
			return ErrUnsupportedType
		}
		return v.check(ctx, ErrInvalidTabEntry, *value)
	case []models.TabEntry:
		for i, entry := range value {
			if err := v.check(ctx, ErrInvalidTabEntry, entry); err != nil {
				return fmt.Errorf("tab %d: %w", i, err)
			}
		}
		return nil

	case models.CreateContainerRequest:
		return v.check(ctx, ErrInvalidContainerRequest, value)
	case *models.CreateContainerRequest:
		if value == nil {
			return ErrUnsupportedType
		}
		return v.check(ctx, ErrInvalidContainerRequest, *value)

	case models.UpdateContainerRequest:
		return v.check(ctx, ErrInvalidContainerRequest, value)
	case *models.UpdateContainerRequest:
		if value == nil {
			return ErrUnsupportedType
		}
		return v.check(ctx, ErrInvalidContainerRequest, *value)

	default:
		return ErrUnsupportedType
	}
}

func (v *SyncDataValidator) check(ctx context.Context, sentinel error, obj any, fields ...string) error {
	var err error
	if len(fields) > 0 {
		err = v.validate.StructPartialCtx(ctx, obj, fields...)
	} else {
		err = v.validate.StructCtx(ctx, obj)
	}
	if err != nil {
		return fmt.Errorf("%w: %w", sentinel, err)
	}
	return nil
}

func isTimestamp(fl validator.FieldLevel) bool {
	return !models.ParseTime(fl.Field().String()).IsZero()
}
