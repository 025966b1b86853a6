package main

import (
	"fmt"
	_ "image/gif"
	_ "image/jpeg"
	"image/png"
	"io/ioutil"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/picoforge/pico8"
	"github.com/picoforge/pico8/sheet"
	"github.com/urfave/cli/v2"
)

const defaultDB = "pico8.db"

func init() {
	cli.VersionFlag = &cli.BoolFlag{
		Name:    "version",
		Aliases: []string{"V"},
		Usage:   "print the version",
	}
}

func newLogger(c *cli.Context) *log.Logger {
	logger := log.New(ioutil.Discard, "", 0)
	if c.Bool("verbose") {
		logger.SetOutput(os.Stderr)
	}
	return logger
}

func options(c *cli.Context) pico8.Options {
	return pico8.Options{
		CellSize: c.Int("size"),
		Pad:      c.Bool("pad"),
		Force:    c.Bool("force"),
	}
}

func writeSheet(path string, s *sheet.Sheet) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	return sheet.Encode(f, s)
}

func writePreview(path string, s *sheet.Sheet, scale int) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	return png.Encode(f, pico8.Preview(s, scale))
}

func main() {
	app := cli.NewApp()

	app.Name = "pico8"
	app.Usage = "PICO-8 sprite sheet conversion utility"
	app.Version = "1.0.0"

	cwd, err := os.Getwd()
	if err != nil {
		log.Fatal(err)
	}

	app.Flags = []cli.Flag{
		&cli.StringFlag{
			Name:    "db",
			EnvVars: []string{"PICO8_DB"},
			Value:   filepath.Join(cwd, defaultDB),
			Usage:   "path to the conversion cache database",
		},
		&cli.BoolFlag{
			Name:    "verbose",
			Aliases: []string{"v"},
			Usage:   "increase verbosity",
		},
	}

	sizeFlag := &cli.IntFlag{
		Name:    "size",
		Aliases: []string{"s"},
		Value:   8,
		Usage:   "sprite size in pixels (8, 16 or 32)",
	}
	padFlag := &cli.BoolFlag{
		Name:  "pad",
		Usage: "keep partial edge cells, padded with palette index 0",
	}
	forceFlag := &cli.BoolFlag{
		Name:  "force",
		Usage: "convert even if the cache already has this input",
	}
	scaleFlag := &cli.IntFlag{
		Name:  "scale",
		Value: 4,
		Usage: "preview upscale factor",
	}

	app.Commands = []*cli.Command{
		{
			Name:        "convert",
			Usage:       "Convert an image to a __gfx__ sprite sheet section",
			Description: "",
			ArgsUsage:   "FILE",
			Flags: []cli.Flag{
				sizeFlag,
				padFlag,
				forceFlag,
				&cli.StringFlag{
					Name:    "output",
					Aliases: []string{"o"},
					Usage:   "output filename prefix (default: input filename)",
				},
				&cli.BoolFlag{
					Name:  "preview",
					Usage: "also write an upscaled PNG preview of the sheet",
				},
				scaleFlag,
			},
			Action: func(c *cli.Context) error {
				if c.NArg() < 1 {
					cli.ShowCommandHelpAndExit(c, c.Command.FullName(), 1)
				}

				db, err := pico8.OpenCacheDB(c.String("db"))
				if err != nil {
					return cli.NewExitError(err, 1)
				}
				defer db.Close()

				p := pico8.New(db, newLogger(c))

				input := c.Args().First()

				res, err := p.ConvertFile(input, options(c))
				if err != nil {
					return cli.NewExitError(err, 1)
				}

				prefix := c.String("output")
				if prefix == "" {
					prefix = strings.TrimSuffix(input, filepath.Ext(input))
				}

				if err := writeSheet(prefix+".p8", res.Sheet); err != nil {
					return cli.NewExitError(err, 1)
				}

				if c.Bool("preview") {
					if err := writePreview(prefix+"_preview.png", res.Sheet, c.Int("scale")); err != nil {
						return cli.NewExitError(err, 1)
					}
				}

				fmt.Printf("%d sprites, %d dropped -> %s.p8\n", res.Sprites, res.Dropped, prefix)

				return nil
			},
		},
		{
			Name:        "scan",
			Usage:       "Convert every image under a directory tree",
			Description: "",
			ArgsUsage:   "DIRECTORY",
			Flags: []cli.Flag{
				sizeFlag,
				padFlag,
				forceFlag,
			},
			Action: func(c *cli.Context) error {
				if c.NArg() < 1 {
					cli.ShowCommandHelpAndExit(c, c.Command.FullName(), 1)
				}

				db, err := pico8.OpenCacheDB(c.String("db"))
				if err != nil {
					return cli.NewExitError(err, 1)
				}
				defer db.Close()

				p := pico8.New(db, newLogger(c))

				if err := p.Scan(c.Args().First(), options(c)); err != nil {
					return cli.NewExitError(err, 1)
				}

				return nil
			},
		},
		{
			Name:        "preview",
			Usage:       "Render the sprite sheet of a cartridge as a PNG image",
			Description: "",
			ArgsUsage:   "FILE",
			Flags: []cli.Flag{
				scaleFlag,
			},
			Action: func(c *cli.Context) error {
				if c.NArg() < 1 {
					cli.ShowCommandHelpAndExit(c, c.Command.FullName(), 1)
				}

				input := c.Args().First()

				f, err := os.Open(input)
				if err != nil {
					return cli.NewExitError(err, 1)
				}
				defer f.Close()

				s, err := sheet.Decode(f)
				if err != nil {
					return cli.NewExitError(err, 1)
				}

				prefix := strings.TrimSuffix(input, filepath.Ext(input))

				if err := writePreview(prefix+"_preview.png", s, c.Int("scale")); err != nil {
					return cli.NewExitError(err, 1)
				}

				return nil
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}
