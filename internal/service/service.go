// internal/service/service.go
package service

import (
	"context"
	"errors"
	"log/slog"

	"medadmin/internal/client"
	"medadmin/internal/model"
)

// ErrBulkMismatch is returned when a bulk_create response does not echo one
// created record per submitted record. Choice attachment correlates child
// rows to parents by array position, so a shorter or reordered response
// cannot be trusted.
var ErrBulkMismatch = errors.New("bulk create response length does not match submission")

// list fetches a list endpoint and normalizes whichever envelope shape the
// backend chose for it.
func list[T any](ctx context.Context, api *client.Client, path string, logger *slog.Logger) (model.ListPage[T], error) {
	raw, err := api.GetRaw(ctx, path)
	if err != nil {
		return model.ListPage[T]{Items: []T{}}, err
	}
	return model.UnwrapList[T](raw, logger), nil
}
