package common

// Container is implemented by every collection in this module.
type Container interface {
	IsEmpty() bool
	Len() int
}

// Clearer is a Container that can release all of its elements in place.
// The persistent list does not implement it.
type Clearer interface {
	Container
	Clear()
}
