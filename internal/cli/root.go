package cli

import (
	"fmt"
	"os"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/wbrown/img2ascii"
)

var (
	version string // semantic version (e.g., "v1.2.3")
	commit  string // git commit SHA
	date    string // build timestamp
)

// SetVersion sets the version information displayed by --version,
// typically injected by the main package via ldflags at build time.
func SetVersion(v, c, d string) {
	version = v
	commit = c
	date = d
}

// Execute runs the img2ascii CLI and returns an error if the
// conversion fails. Errors are also printed by cobra, so callers only
// need to translate a non-nil return into a non-zero exit status.
func Execute() error {
	return newRootCmd().Execute()
}

// newRootCmd builds the root command. Flag defaults mirror
// img2ascii.DefaultOptions; a TOML config file (--config) sits between
// the built-in defaults and explicit flags, with flags winning.
func newRootCmd() *cobra.Command {
	var (
		verbose    bool
		cfgPath    string
		outputPath string

		useTileDims bool
		contrast    float64
		charset     string
		fontName    string
		fontSize    int
		hTiles      int
		vTiles      int
		tileWidth   float64
		tileHeight  float64
		absWidth    bool
		absHeight   bool
		workers     int
	)

	root := &cobra.Command{
		Use:          "img2ascii [flags] image",
		Short:        "Convert an image to ascii art",
		Long: `img2ascii converts a raster image into a grid of text characters.
Each image tile is replaced by the character from the character set
whose rendered glyph is the closest visual match for the tile.

Sizing is controlled either by tile counts (-x/-y, the default mode)
or by tile dimensions (-d with -w/-l, in multiples of the font size
unless --absolute-width/--absolute-height are given).`,
		Version:      version,
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			level := charmlog.InfoLevel
			if verbose {
				level = charmlog.DebugLevel
			}
			logger := newLogger(os.Stderr, level)

			opts := img2ascii.DefaultOptions()
			if cfgPath != "" {
				if err := loadConfig(cfgPath, &opts); err != nil {
					return err
				}
			}

			flags := cmd.Flags()
			if flags.Changed("contrast") {
				opts.Contrast = contrast
			}
			if flags.Changed("charset") {
				opts.CharSet = charset
			}
			if flags.Changed("font") {
				opts.Font = fontName
			}
			if flags.Changed("font-size") {
				opts.FontSize = fontSize
			}
			if flags.Changed("tiles") {
				opts.HTileCount = hTiles
			}
			if flags.Changed("vtiles") {
				opts.VTileCount = vTiles
			}
			if flags.Changed("tile-width") {
				opts.TileWidth = tileWidth
			}
			if flags.Changed("tile-height") {
				opts.TileHeight = tileHeight
			}
			opts.UseTileDimensions = useTileDims
			opts.AbsoluteTileWidth = absWidth
			opts.AbsoluteTileHeight = absHeight
			opts.Workers = workers

			conv := img2ascii.NewConverter(
				img2ascii.WithOptions(opts),
				img2ascii.WithLogger(logger),
			)
			text, err := conv.ConvertFile(args[0])
			if err != nil {
				return err
			}

			if outputPath != "" {
				if err := os.WriteFile(outputPath, []byte(text+"\n"), 0o644); err != nil {
					return fmt.Errorf("writing %s: %w", outputPath, err)
				}
				logger.Info("output written", "path", outputPath)
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), text)
			return nil
		},
	}

	root.SetVersionTemplate(fmt.Sprintf(
		"img2ascii %s\ncommit: %s\nbuilt: %s\n", version, commit, date))

	flags := root.Flags()
	flags.BoolVarP(&verbose, "verbose", "v", false,
		"enable verbose logging")
	flags.StringVar(&cfgPath, "config", "",
		"path to a TOML defaults file")
	flags.StringVarP(&outputPath, "output", "o", "",
		"write output to a file instead of stdout")
	flags.BoolVarP(&useTileDims, "use-tile-dimensions", "d", false,
		"use tile dimensions to determine tile counts")
	flags.Float64VarP(&contrast, "contrast", "c", img2ascii.DefaultContrast,
		"contrast multiplier")
	flags.StringVarP(&charset, "charset", "C", img2ascii.DefaultCharSet,
		"available characters, in tie-break order")
	flags.StringVarP(&fontName, "font", "f", img2ascii.DefaultFont,
		"target font family or TTF path")
	flags.IntVarP(&fontSize, "font-size", "s", 0,
		"font size in pixels (0 = default or largest that fits)")
	flags.IntVarP(&hTiles, "tiles", "x", img2ascii.DefaultHTileCount,
		"horizontal tile count")
	flags.IntVarP(&vTiles, "vtiles", "y", 0,
		"vertical tile count (0 = derive from aspect ratio)")
	flags.Float64VarP(&tileWidth, "tile-width", "w", img2ascii.DefaultTileWidth,
		"tile width, as a multiple of font size unless --absolute-width")
	flags.Float64VarP(&tileHeight, "tile-height", "l", img2ascii.DefaultTileHeight,
		"tile height, as a multiple of font size unless --absolute-height")
	flags.BoolVar(&absWidth, "absolute-width", false,
		"treat --tile-width as absolute pixels")
	flags.BoolVar(&absHeight, "absolute-height", false,
		"treat --tile-height as absolute pixels")
	flags.IntVar(&workers, "workers", 0,
		"matching goroutines (0 = one per CPU)")

	return root
}
