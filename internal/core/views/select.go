package views

// SelectEntity picks the item whose key equals key. When nothing matches it
// falls back to the first item, and reports false only for an empty
// collection. previous does not influence the result: a refreshed
// collection always re-runs exact match, then first element.
func SelectEntity[T any](items []T, key string, keyOf func(T) string, previous *T) (T, bool) {
	for _, item := range items {
		if keyOf(item) == key {
			return item, true
		}
	}
	if len(items) > 0 {
		return items[0], true
	}

	var zero T
	return zero, false
}
