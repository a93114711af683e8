package cli

import (
	"fmt"

	"github.com/BurntSushi/toml"

	"github.com/wbrown/img2ascii"
)

// fileConfig mirrors the optional TOML defaults file. Every field is a
// pointer so absent keys leave the built-in defaults untouched.
// Command-line flags override the file in turn.
type fileConfig struct {
	CharSet    *string  `toml:"charset"`
	Font       *string  `toml:"font"`
	FontSize   *int     `toml:"font_size"`
	Contrast   *float64 `toml:"contrast"`
	HTileCount *int     `toml:"h_tile_count"`
	TileWidth  *float64 `toml:"tile_width"`
	TileHeight *float64 `toml:"tile_height"`
}

// loadConfig applies the TOML file at path on top of opts.
func loadConfig(path string, opts *img2ascii.Options) error {
	var fc fileConfig
	if _, err := toml.DecodeFile(path, &fc); err != nil {
		return fmt.Errorf("config %s: %w", path, err)
	}

	if fc.CharSet != nil {
		opts.CharSet = *fc.CharSet
	}
	if fc.Font != nil {
		opts.Font = *fc.Font
	}
	if fc.FontSize != nil {
		opts.FontSize = *fc.FontSize
	}
	if fc.Contrast != nil {
		opts.Contrast = *fc.Contrast
	}
	if fc.HTileCount != nil {
		opts.HTileCount = *fc.HTileCount
	}
	if fc.TileWidth != nil {
		opts.TileWidth = *fc.TileWidth
	}
	if fc.TileHeight != nil {
		opts.TileHeight = *fc.TileHeight
	}
	return nil
}
