// Maybe use package slices instead

package slice

func Map[T any, U any](input []T, pred func(T) U) []U {
	result := make([]U, len(input))
	for i, v := range input {
		result[i] = pred(v)
	}
	return result
}

func Find[T any](input []T, pred func(T) bool) (T, bool) {
	for _, v := range input {
		if pred(v) {
			return v, true
		}
	}
	var zero T
	return zero, false
}

// ZipWith combines a and b pairwise. The result is as long as the shorter input,
// extra elements of the longer one are ignored.
func ZipWith[A any, B any, U any](a []A, b []B, fn func(A, B) U) []U {
	n := min(len(a), len(b))
	result := make([]U, n)
	for i := 0; i < n; i++ {
		result[i] = fn(a[i], b[i])
	}
	return result
}
