package lists

// The functions below are not methods because they need T to be comparable,
// while LinkedList itself accepts any T.

// RemoveFirst unlinks the first node, scanning from the head, whose value equals v.
// Returns ErrEmptyList for an empty list and ErrValueNotFound when no node matches.
func RemoveFirst[T comparable](ll *LinkedList[T], v T) error {
	return ll.RemoveFirstFunc(func(x T) bool {
		return x == v
	})
}

// IndexOf returns the index of the first node holding v, or -1.
func IndexOf[T comparable](ll *LinkedList[T], v T) int {
	return ll.IndexFunc(func(x T) bool {
		return x == v
	})
}

func Contains[T comparable](ll *LinkedList[T], v T) bool {
	return IndexOf(ll, v) >= 0
}
