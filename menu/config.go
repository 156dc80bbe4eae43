package menu

import (
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"os"
)

//go:embed menu.json
var defaultMenu []byte

var ErrUnknownKey = errors.New("unknown menu key")

// Default is the built-in menu.
func Default() (Menu, error) {
	return parse(defaultMenu)
}

// Load reads a menu from path; an empty path selects the built-in menu.
func Load(path string) (Menu, error) {
	if path == "" {
		return Default()
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Menu{}, err
	}
	return parse(data)
}

func parse(data []byte) (Menu, error) {
	var m Menu
	if err := json.Unmarshal(data, &m); err != nil {
		return Menu{}, fmt.Errorf("menu: %w", err)
	}
	if len(m.Items) == 0 {
		return Menu{}, errors.New("menu: no items")
	}
	if err := check(m.Items); err != nil {
		return Menu{}, err
	}
	return m, nil
}

// check rejects leaf items whose key has no action.
func check(items []Item) error {
	for _, it := range items {
		if len(it.Items) > 0 {
			if err := check(it.Items); err != nil {
				return err
			}
			continue
		}
		if it.Key == keyBack || it.Key == keyExit {
			continue
		}
		if _, ok := actions[it.Key]; !ok {
			return fmt.Errorf("%w: %q", ErrUnknownKey, it.Key)
		}
	}
	return nil
}
