package services

import (
	"cmp"
	"slices"
	"strings"

	"wildsafari/internal/models/request_models"
)

// listSpec describes how an admin list is searched, filtered and sorted.
type listSpec[T any] struct {
	text   func(T) []string
	status func(T) string
	sorts  map[string]func(a, b T) int
}

// apply never mutates items. Unknown sort fields keep the stored order.
func (s listSpec[T]) apply(items []T, q request_models.ListQuery) []T {
	needle := strings.ToLower(strings.TrimSpace(q.Q))
	status := strings.TrimSpace(q.Status)

	out := make([]T, 0, len(items))
	for _, item := range items {
		if status != "" && s.status != nil && !strings.EqualFold(s.status(item), status) {
			continue
		}
		if needle != "" && s.text != nil && !matchesAny(s.text(item), needle) {
			continue
		}
		out = append(out, item)
	}

	field, desc := strings.CutPrefix(strings.TrimSpace(q.Sort), "-")
	if less, ok := s.sorts[field]; ok {
		slices.SortStableFunc(out, func(a, b T) int {
			if desc {
				return less(b, a)
			}
			return less(a, b)
		})
	}
	return out
}

func matchesAny(fields []string, needle string) bool {
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), needle) {
			return true
		}
	}
	return false
}

func byString[T any](get func(T) string) func(a, b T) int {
	return func(a, b T) int {
		return cmp.Compare(strings.ToLower(get(a)), strings.ToLower(get(b)))
	}
}

func byNumber[T any, N cmp.Ordered](get func(T) N) func(a, b T) int {
	return func(a, b T) int { return cmp.Compare(get(a), get(b)) }
}
