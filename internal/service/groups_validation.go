package service

import (
	"context"
	"fmt"

	"github.com/jaychenthinkfast/OneTabCloud/internal/validators"
	"github.com/jaychenthinkfast/OneTabCloud/models"
)

// GroupServiceWrapper defines middleware composition for GroupService.
// Implementations wrap an existing GroupService to add behavior such as
// validating.
type GroupServiceWrapper interface {
	Wrap(GroupService) GroupService // returns a decorated GroupService applying additional behavior
}

// GroupValidationService checks input that comes from outside the process
// (tab lists and import files) before it reaches the wrapped service.
type GroupValidationService struct {
	GroupService

	validator validators.Validator
}

func NewGroupValidationService() GroupServiceWrapper {
	return &GroupValidationService{
		validator: validators.NewSyncDataValidator(),
	}
}

func (v *GroupValidationService) Wrap(inner GroupService) GroupService {
	v.GroupService = inner
	return v
}

func (v *GroupValidationService) Create(ctx context.Context, name string, tabs []models.TabEntry) (models.TabGroup, error) {
	if err := v.validator.Validate(ctx, tabs); err != nil {
		return models.TabGroup{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}
	return v.GroupService.Create(ctx, name, tabs)
}

func (v *GroupValidationService) Import(ctx context.Context, data []byte) (int, error) {
	groups, err := parseImport(data)
	if err != nil {
		return 0, err
	}
	if err = v.validator.Validate(ctx, groups); err != nil {
		return 0, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}
	return v.GroupService.Import(ctx, data)
}
