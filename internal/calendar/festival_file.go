package calendar

import (
	"fmt"
	"io"
	"os"

	"github.com/BurntSushi/toml"
)

type festivalFile struct {
	Festivals []festivalFileEntry `toml:"festival"`
}

type festivalFileEntry struct {
	Date string `toml:"date"`
	Name string `toml:"name"`
}

// LoadFestivalFile reads a TOML festival table from path.
func LoadFestivalFile(path string) (*FestivalTable, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open festival file: %w", err)
	}
	defer file.Close()

	table, err := DecodeFestivals(file)
	if err != nil {
		return nil, fmt.Errorf("load festival file %s: %w", path, err)
	}
	return table, nil
}

// DecodeFestivals parses [[festival]] entries with date and name keys.
func DecodeFestivals(reader io.Reader) (*FestivalTable, error) {
	var decoded festivalFile
	metadata, err := toml.NewDecoder(reader).Decode(&decoded)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFestivalTableInvalid, err)
	}
	if undecoded := metadata.Undecoded(); len(undecoded) > 0 {
		return nil, fmt.Errorf("%w: unknown key %s", ErrFestivalTableInvalid, undecoded[0].String())
	}

	entries := make([]Festival, 0, len(decoded.Festivals))
	for index, raw := range decoded.Festivals {
		date, err := ParseISO(raw.Date)
		if err != nil {
			return nil, fmt.Errorf("%w: entry %d: %v", ErrFestivalTableInvalid, index+1, err)
		}
		entries = append(entries, Festival{Date: date, Name: raw.Name})
	}
	return NewFestivalTable(entries)
}
