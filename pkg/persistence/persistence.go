// Package persistence defines the storage contract behind the runtime
// repositories.
package persistence

type Store[T any] interface {
	Save(key string, data T) error
	Load(key string) (T, error)
	LoadAll() ([]T, error)
	Delete(key string) error
}
