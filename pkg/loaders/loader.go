// Package loaders fills tagged config structs from the process environment
// and dotenv/JSON files.
package loaders

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"
)

type Loader interface {
	Load(dest any) error
}

// ChainLoader runs its loaders in order; later loaders win.
type ChainLoader struct {
	loaders []Loader
}

func NewChainLoader(loaders ...Loader) *ChainLoader {
	return &ChainLoader{loaders: loaders}
}

func (c *ChainLoader) Load(dest any) error {
	for _, loader := range c.loaders {
		if err := loader.Load(dest); err != nil {
			return fmt.Errorf("unable to load config: %s", err.Error())
		}
	}

	return nil
}

// applyTagged walks dest's fields and assigns values[tag] to every settable
// field carrying the "env" tag. dest must be a struct pointer.
func applyTagged(dest any, values map[string]string) error {
	val := reflect.ValueOf(dest).Elem()
	typ := val.Type()

	if typ.Kind() != reflect.Struct {
		return fmt.Errorf("destination must be a struct pointer")
	}

	for i := range val.NumField() {
		field := val.Field(i)
		if !field.CanSet() {
			continue
		}

		tag, ok := typ.Field(i).Tag.Lookup("env")
		if !ok {
			continue
		}

		value, ok := values[tag]
		if !ok {
			continue
		}

		if err := setField(field, value); err != nil {
			return fmt.Errorf("unable to set %s: %s", tag, err.Error())
		}
	}

	return nil
}

func setField(field reflect.Value, value string) error {
	switch field.Kind() {
	case reflect.String:
		field.SetString(value)
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		num, err := strconv.ParseInt(value, 10, 64)
		if err != nil {
			return err
		}
		field.SetInt(num)
	case reflect.Bool:
		boolean, err := strconv.ParseBool(value)
		if err != nil {
			return err
		}
		field.SetBool(boolean)
	case reflect.Slice:
		if field.Type().Elem().Kind() == reflect.String {
			field.Set(reflect.ValueOf(strings.Split(value, ",")))
		}
	}
	return nil
}
