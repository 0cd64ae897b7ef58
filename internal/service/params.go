package service

import (
	"fmt"
	"math"

	"github.com/Taichi-iskw/videominer/internal/errors"
	"github.com/Taichi-iskw/videominer/internal/repository"
)

const DefaultPageSize = 10

// ListParams are the list query options shared by every resource.
// Name, Order and Containing apply to channels and videos only.
type ListParams struct {
	Page       int
	Size       int
	Name       string
	Order      string
	Containing string
}

// DefaultListParams returns the first page with the default size
func DefaultListParams() ListParams {
	return ListParams{Page: 0, Size: DefaultPageSize}
}

// Validate rejects pages that cannot be addressed
func (p ListParams) Validate() error {
	if p.Page < 0 || p.Page > math.MaxInt32 {
		return errors.New(errors.CodeInvalidArg, fmt.Sprintf("page must be between 0 and %d", math.MaxInt32))
	}
	if p.Size < 1 || p.Size > math.MaxInt32 {
		return errors.New(errors.CodeInvalidArg, fmt.Sprintf("size must be between 1 and %d", math.MaxInt32))
	}
	return nil
}

func (p ListParams) pageRequest() repository.PageRequest {
	return repository.PageRequest{
		Page: p.Page,
		Size: p.Size,
		Sort: repository.ParseSort(p.Order),
	}
}

func requireID(id string) error {
	if id == "" {
		return errors.New(errors.CodeInvalidArg, "id is required")
	}
	return nil
}
