package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"github.com/geoforge/go-geos/pkg/geos"
)

var fromFormat string
var toFormat string
var precision int

var convertCmd = &cobra.Command{
	Use:   "convert [IN] [OUT]",
	Short: "Convert newline-delimited geometries between wkt, wkb (hex) and geojson",
	Args: func(cmd *cobra.Command, args []string) error {
		if len(args) > 2 {
			return errors.New("at most an input and an output filename may be given")
		}
		if len(args) > 0 && args[0] != "-" {
			if _, err := os.Stat(args[0]); errors.Is(err, os.ErrNotExist) {
				return fmt.Errorf("input file '%s' does not exist", args[0])
			}
		}
		if !validFormat(fromFormat) {
			return fmt.Errorf("unknown input format '%s'", fromFormat)
		}
		if !validFormat(toFormat) {
			return fmt.Errorf("unknown output format '%s'", toFormat)
		}
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		in := io.Reader(os.Stdin)
		if len(args) > 0 && args[0] != "-" {
			f, err := os.Open(args[0])
			if err != nil {
				return err
			}
			defer f.Close()
			in = f
		}
		out := io.Writer(os.Stdout)
		if len(args) > 1 && args[1] != "-" {
			f, err := os.Create(args[1])
			if err != nil {
				return err
			}
			defer f.Close()
			out = f
		}
		return convert(in, out)
	},
	SilenceUsage: true,
}

func init() {
	convertCmd.Flags().StringVarP(&fromFormat, "from", "f", "wkt", "input format: wkt, wkb or geojson")
	convertCmd.Flags().StringVarP(&toFormat, "to", "t", "geojson", "output format: wkt, wkb or geojson")
	convertCmd.Flags().IntVarP(&precision, "precision", "p", -1, "decimal places for wkt output (-1 keeps full precision)")
}

func validFormat(f string) bool {
	switch f {
	case "wkt", "wkb", "geojson":
		return true
	}
	return false
}

type decoder func(line string) (*geos.Geometry, error)

type encoder func(g *geos.Geometry) (string, error)

func convert(in io.Reader, out io.Writer) error {
	ctx, err := geos.NewContext()
	if err != nil {
		return err
	}
	defer ctx.Close()

	dec, err := newDecoder(ctx, fromFormat)
	if err != nil {
		return err
	}
	enc, err := newEncoder(ctx, toFormat)
	if err != nil {
		return err
	}

	bar := progressbar.NewOptions(-1,
		progressbar.OptionSetWriter(os.Stderr),
		progressbar.OptionSetWidth(25),
		progressbar.OptionSetDescription("converting"),
		progressbar.OptionSpinnerType(14),
	)
	defer bar.Clear()

	w := bufio.NewWriter(out)
	defer w.Flush()

	scanner := bufio.NewScanner(in)
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	lineno := 0
	for scanner.Scan() {
		lineno++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		g, err := dec(line)
		if err != nil {
			return fmt.Errorf("line %d: %w", lineno, err)
		}
		s, err := enc(g)
		g.Free()
		if err != nil {
			return fmt.Errorf("line %d: %w", lineno, err)
		}
		if _, err := fmt.Fprintln(w, s); err != nil {
			return err
		}
		bar.Add(1)
	}
	return scanner.Err()
}

func newDecoder(ctx *geos.Context, format string) (decoder, error) {
	switch format {
	case "wkt":
		r, err := geos.NewWKTReader(ctx)
		if err != nil {
			return nil, err
		}
		return r.Read, nil
	case "wkb":
		r, err := geos.NewWKBReader(ctx)
		if err != nil {
			return nil, err
		}
		return r.ReadHex, nil
	case "geojson":
		r, err := geos.NewGeoJSONReader(ctx)
		if err != nil {
			return nil, err
		}
		return r.Read, nil
	}
	return nil, fmt.Errorf("unknown input format '%s'", format)
}

func newEncoder(ctx *geos.Context, format string) (encoder, error) {
	switch format {
	case "wkt":
		w, err := geos.NewWKTWriter(ctx)
		if err != nil {
			return nil, err
		}
		if precision >= 0 {
			if err := w.SetRoundingPrecision(precision); err != nil {
				return nil, err
			}
		}
		return w.Write, nil
	case "wkb":
		w, err := geos.NewWKBWriter(ctx)
		if err != nil {
			return nil, err
		}
		return w.WriteHex, nil
	case "geojson":
		w, err := geos.NewGeoJSONWriter(ctx)
		if err != nil {
			return nil, err
		}
		return func(g *geos.Geometry) (string, error) {
			return w.Write(g, -1)
		}, nil
	}
	return nil, fmt.Errorf("unknown output format '%s'", format)
}
