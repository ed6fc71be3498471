package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/geoforge/go-geos/pkg/geos"
)

var validateCmd = &cobra.Command{
	Use:   "validate [IN]",
	Short: "Report invalid geometries in newline-delimited WKT input",
	Args:  cobra.MaximumNArgs(1),
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
		return validate(in, os.Stdout)
	},
	SilenceUsage: true,
}

func validate(in io.Reader, out io.Writer) error {
	ctx, err := geos.NewContext()
	if err != nil {
		return err
	}
	defer ctx.Close()

	reader, err := geos.NewWKTReader(ctx)
	if err != nil {
		return err
	}

	scanner := bufio.NewScanner(in)
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	lineno := 0
	invalid := 0
	for scanner.Scan() {
		lineno++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		g, err := reader.Read(line)
		if err != nil {
			invalid++
			fmt.Fprintf(out, "line %d: unparseable: %v\n", lineno, err)
			continue
		}
		valid, err := g.IsValid()
		if err != nil {
			g.Free()
			return fmt.Errorf("line %d: %w", lineno, err)
		}
		if !valid {
			invalid++
			reason, err := g.IsValidReason()
			if err != nil {
				g.Free()
				return fmt.Errorf("line %d: %w", lineno, err)
			}
			fmt.Fprintf(out, "line %d: %s\n", lineno, reason)
		}
		g.Free()
	}
	if err := scanner.Err(); err != nil {
		return err
	}
	if invalid > 0 {
		return fmt.Errorf("%d invalid geometries", invalid)
	}
	return nil
}
