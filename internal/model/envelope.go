// internal/model/envelope.go
package model

import (
	"bytes"
	"encoding/json"
	"log/slog"
)

// ListPage is the uniform result of normalizing a list endpoint response.
// Count carries the backend total when the endpoint paginates; for the other
// shapes it is simply len(Items). Next/Previous are only set in page mode.
type ListPage[T any] struct {
	Items    []T
	Count    int
	Next     *string
	Previous *string
}

// listEnvelope probes the two known object shapes without committing to an
// item type yet.
type listEnvelope struct {
	Count    int             `json:"count"`
	Next     *string         `json:"next"`
	Previous *string         `json:"previous"`
	Results  json.RawMessage `json:"results"`
	Data     json.RawMessage `json:"data"`
}

// UnwrapList normalizes the three list shapes the backend is known to return:
// a bare array, a {count,next,previous,results} pagination envelope, and a
// nested {data:[...]} wrapper. Anything else degrades to an empty page with a
// warning; shape mismatch is never an error.
func UnwrapList[T any](raw json.RawMessage, logger *slog.Logger) ListPage[T] {
	if logger == nil {
		logger = slog.Default()
	}

	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 {
		return ListPage[T]{Items: []T{}}
	}

	if trimmed[0] == '[' {
		var items []T
		if err := json.Unmarshal(trimmed, &items); err != nil {
			logger.Warn("list response is an array of an unexpected item shape", slog.Any("error", err))
			return ListPage[T]{Items: []T{}}
		}
		return ListPage[T]{Items: items, Count: len(items)}
	}

	var env listEnvelope
	if err := json.Unmarshal(trimmed, &env); err != nil {
		logger.Warn("list response has an unknown shape", slog.Any("error", err))
		return ListPage[T]{Items: []T{}}
	}

	if isJSONArray(env.Results) {
		var items []T
		if err := json.Unmarshal(env.Results, &items); err != nil {
			logger.Warn("pagination envelope carries unexpected results", slog.Any("error", err))
			return ListPage[T]{Items: []T{}}
		}
		return ListPage[T]{Items: items, Count: env.Count, Next: env.Next, Previous: env.Previous}
	}

	if isJSONArray(env.Data) {
		var items []T
		if err := json.Unmarshal(env.Data, &items); err != nil {
			logger.Warn("data wrapper carries unexpected items", slog.Any("error", err))
			return ListPage[T]{Items: []T{}}
		}
		return ListPage[T]{Items: items, Count: len(items)}
	}

	logger.Warn("list response has an unknown shape, treating as empty")
	return ListPage[T]{Items: []T{}}
}

func isJSONArray(raw json.RawMessage) bool {
	trimmed := bytes.TrimSpace(raw)
	return len(trimmed) > 0 && trimmed[0] == '['
}
