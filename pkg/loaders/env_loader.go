package loaders

import (
	"os"
	"reflect"
)

type EnvLoader struct{}

func NewEnvLoader() *EnvLoader {
	return &EnvLoader{}
}

func (e *EnvLoader) Load(dest any) error {
	val := reflect.ValueOf(dest).Elem()
	typ := val.Type()

	values := make(map[string]string)
	for i := range typ.NumField() {
		tag, ok := typ.Field(i).Tag.Lookup("env")
		if !ok {
			continue
		}
		if envValue, ok := os.LookupEnv(tag); ok {
			values[tag] = envValue
		}
	}

	return applyTagged(dest, values)
}
