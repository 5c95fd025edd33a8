package loaders

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

type FileLoader struct {
	fileNames []string
}

func NewFileLoader(fileNames ...string) *FileLoader {
	return &FileLoader{
		fileNames: fileNames,
	}
}

func (f *FileLoader) Load(dest any) error {
	for _, file := range f.fileNames {
		var err error
		switch {
		case strings.HasSuffix(file, ".json"):
			err = f.loadJSON(dest, file)

		default:
			err = f.loadDotEnv(dest, file)
		}
		if err != nil {
			return fmt.Errorf("could not load file: %s: %s", file, err.Error())
		}
	}
	return nil
}

func (f *FileLoader) loadDotEnv(dest any, file string) error {
	values, err := godotenv.Read(file)
	if err != nil {
		// A missing dotenv file just means nothing to override.
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return err
	}

	return applyTagged(dest, values)
}

func (f *FileLoader) loadJSON(dest any, file string) error {
	data, err := os.ReadFile(file)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return err
	}

	return json.Unmarshal(data, dest)
}
