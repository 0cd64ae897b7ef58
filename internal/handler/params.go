package handler

import (
	"fmt"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/Taichi-iskw/videominer/internal/errors"
	"github.com/Taichi-iskw/videominer/internal/service"
)

// listParams reads page, size, name, order and containing from the query string
func listParams(c *gin.Context) (service.ListParams, error) {
	params := service.DefaultListParams()

	var err error
	if params.Page, err = intQuery(c, "page", params.Page); err != nil {
		return params, err
	}
	if params.Size, err = intQuery(c, "size", params.Size); err != nil {
		return params, err
	}
	params.Name = c.Query("name")
	params.Order = c.Query("order")
	params.Containing = c.Query("containing")

	return params, params.Validate()
}

func intQuery(c *gin.Context, key string, fallback int) (int, error) {
	raw := c.Query(key)
	if raw == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, errors.Wrap(err, errors.CodeInvalidArg, fmt.Sprintf("%s must be an integer", key))
	}
	return n, nil
}
