// SPDX-License-Identifier: EPL-2.0

package main

import (
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/ik5/q15"
)

// demoInputs are the values printed by the demo command.
var demoInputs = []float64{0.0, 0.1, 0.5, 0.9, -0.25}

type cli struct {
	log     zerolog.Logger
	plain   bool
	verbose bool
}

// NewCLI builds the q15 command tree. logger receives diagnostics only;
// conversion results go to the command's output writer.
func NewCLI(logger zerolog.Logger) *cobra.Command {
	c := &cli{log: logger}

	rootCmd := &cobra.Command{
		Use:   "q15",
		Short: "Convert between floats and Q1.15 fixed-point codes",
		Long: "Convert between floats and Q1.15 fixed-point codes.\n\n" +
			"Without a subcommand q15 runs the demo. Pass negative values after --,\n" +
			"for example: q15 encode -- -0.25",
		Args:          cobra.NoArgs,
		SilenceErrors: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// Disable usage printing on errors
			cmd.SilenceUsage = true

			level := zerolog.InfoLevel
			if c.verbose {
				level = zerolog.DebugLevel
			}
			c.log = c.log.Level(level)
		},
		RunE: c.demoHandler,
	}

	rootCmd.PersistentFlags().BoolVar(&c.plain, "plain", false, "Print space separated values instead of a table")
	rootCmd.PersistentFlags().BoolVarP(&c.verbose, "verbose", "v", false, "Log every conversion")

	demoCmd := &cobra.Command{
		Use:   "demo",
		Short: "Encode and decode a fixed set of sample values",
		Args:  cobra.NoArgs,
		RunE:  c.demoHandler,
	}

	encodeCmd := &cobra.Command{
		Use:   "encode VALUE [VALUE...]",
		Short: "Encode float values as Q1.15 codes",
		Args:  cobra.MinimumNArgs(1),
		RunE:  c.encodeHandler,
	}

	decodeCmd := &cobra.Command{
		Use:   "decode CODE [CODE...]",
		Short: "Decode 16-bit Q1.15 codes (decimal, 0x hex or 0b binary)",
		Args:  cobra.MinimumNArgs(1),
		RunE:  c.decodeHandler,
	}

	rootCmd.AddCommand(demoCmd, encodeCmd, decodeCmd)

	return rootCmd
}

func (c *cli) demoHandler(cmd *cobra.Command, args []string) error {
	return c.encodeValues(cmd.OutOrStdout(), demoInputs)
}

func (c *cli) encodeHandler(cmd *cobra.Command, args []string) error {
	values := make([]float64, 0, len(args))

	for _, arg := range args {
		x, err := strconv.ParseFloat(arg, 64)
		if err != nil {
			return fmt.Errorf("parse value %q: %w", arg, err)
		}
		values = append(values, x)
	}

	return c.encodeValues(cmd.OutOrStdout(), values)
}

func (c *cli) encodeValues(w io.Writer, values []float64) error {
	codes := make([]q15.Code, 0, len(values))

	for _, x := range values {
		code, err := q15.Encode(x)
		if err != nil {
			return err
		}
		codes = append(codes, code)
	}

	var data [][]string

	for i, x := range values {
		code := codes[i]
		decoded := code.Float64()
		c.log.Debug().
			Float64("input", x).
			Str("code", code.String()).
			Float64("decoded", decoded).
			Msg("encoded")

		if c.plain {
			fmt.Fprintf(w, "%s %#x %s\n", formatPlainFloat(x), uint16(code), formatPlainFloat(decoded))
			continue
		}

		data = append(data, []string{formatFloat(x), code.String(), formatFloat(decoded)})
	}

	if !c.plain {
		renderTable(w, []string{"INPUT", "CODE", "DECODED"}, data)
	}

	return nil
}

func (c *cli) decodeHandler(cmd *cobra.Command, args []string) error {
	w := cmd.OutOrStdout()

	codes := make([]q15.Code, 0, len(args))

	for _, arg := range args {
		v, err := strconv.ParseInt(arg, 0, 64)
		if err != nil {
			return fmt.Errorf("parse code %q: %w", arg, err)
		}

		if _, err := q15.ToFloat(int(v)); err != nil {
			return err
		}
		codes = append(codes, q15.Code(v))
	}

	var data [][]string

	for _, code := range codes {
		decoded := code.Float64()
		c.log.Debug().
			Str("code", code.String()).
			Int("signed", code.Int()).
			Float64("decoded", decoded).
			Msg("decoded")

		if c.plain {
			fmt.Fprintf(w, "%#x %d %s\n", uint16(code), code.Int(), formatPlainFloat(decoded))
			continue
		}

		data = append(data, []string{code.String(), strconv.Itoa(code.Int()), formatFloat(decoded)})
	}

	if !c.plain {
		renderTable(w, []string{"CODE", "SIGNED", "VALUE"}, data)
	}

	return nil
}

func formatFloat(x float64) string {
	return strconv.FormatFloat(x, 'g', -1, 64)
}

// formatPlainFloat prints the shortest representation of x, always with a
// fraction or an exponent: 0 is "0.0", 1e-05 stays in exponent form.
// Exponent form is used below 1e-4 and from 1e16 up.
func formatPlainFloat(x float64) string {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return strconv.FormatFloat(x, 'g', -1, 64)
	}

	sci := strconv.FormatFloat(x, 'e', -1, 64)
	exp, err := strconv.Atoi(sci[strings.IndexByte(sci, 'e')+1:])
	if err != nil {
		return sci
	}

	if x != 0 && (exp < -4 || exp >= 16) {
		return sci
	}

	s := strconv.FormatFloat(x, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}

	return s
}

func renderTable(w io.Writer, header []string, data [][]string) {
	table := tablewriter.NewWriter(w)
	table.SetHeader(header)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetHeaderLine(false)
	table.SetBorder(false)
	table.SetNoWhiteSpace(true)
	table.SetTablePadding("    ")
	table.AppendBulk(data)
	table.Render()
}
