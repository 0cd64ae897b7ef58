package repository

import (
	"fmt"
	"strings"

	apperrors "github.com/Taichi-iskw/videominer/internal/errors"
)

// PageRequest selects one page of an ordered result set
type PageRequest struct {
	Page int
	Size int
	Sort *Sort
}

// Sort orders a result set by a single field
type Sort struct {
	Field string
	Desc  bool
}

// ParseSort reads an order expression such as "name" or "-name".
// An empty expression yields nil.
func ParseSort(order string) *Sort {
	if order == "" {
		return nil
	}
	if strings.HasPrefix(order, "-") {
		return &Sort{Field: order[1:], Desc: true}
	}
	return &Sort{Field: order}
}

func (s *Sort) String() string {
	if s == nil {
		return ""
	}
	if s.Desc {
		return "-" + s.Field
	}
	return s.Field
}

// Offset returns the number of rows skipped before the page
func (p PageRequest) Offset() int {
	return p.Page * p.Size
}

// sortColumns maps JSON field names to the columns they sort on
type sortColumns map[string]string

var (
	channelSortColumns = sortColumns{
		"id":          "id",
		"name":        "name",
		"description": "description",
		"createdTime": "created_time",
	}
	videoSortColumns = sortColumns{
		"id":          "id",
		"name":        "name",
		"description": "description",
		"releaseTime": "release_time",
	}
)

// orderBy builds the ORDER BY clause for s; id breaks ties so pages are stable
func (cols sortColumns) orderBy(s *Sort) (string, error) {
	if s == nil {
		return "ORDER BY id", nil
	}

	column, ok := cols[s.Field]
	if !ok {
		return "", apperrors.New(apperrors.CodeInvalidArg, fmt.Sprintf("cannot sort by %q", s.Field))
	}

	direction := "ASC"
	if s.Desc {
		direction = "DESC"
	}
	// byte order keeps name sorting independent of the cluster locale
	if column == "id" {
		return `ORDER BY id COLLATE "C" ` + direction, nil
	}
	return fmt.Sprintf(`ORDER BY %s COLLATE "C" %s, id`, column, direction), nil
}
