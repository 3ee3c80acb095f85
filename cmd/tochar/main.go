// Copyright 2023 The Cockroach Authors.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or
// implied. See the License for the specific language governing
// permissions and limitations under the License.

// Command tochar renders a numeric value under a TO_CHAR numeric format
// string, or validates a format string on its own:
//
//	tochar --format '9,999.99' 1234.5
//	tochar validate 'S9.99EEEE'
package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/cockroachdb/tochar"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var (
	formatString string
	maxWidth     int
)

var rootCmd = &cobra.Command{
	Use:          "tochar <value>",
	Short:        "Render a numeric value with a TO_CHAR numeric format string",
	Args:         cobra.ExactArgs(1),
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		tochar.FormatMaxOutputWidth = maxWidth
		v, err := parseValue(args[0])
		if err != nil {
			return err
		}
		out, err := tochar.NumericalToStringWithFormat(v, formatString, tochar.ProductExternal)
		if err != nil {
			return err
		}
		fmt.Printf("%q\n", out)
		return nil
	},
}

var validateCmd = &cobra.Command{
	Use:          "validate <format>",
	Short:        "Validate a TO_CHAR numeric format string",
	Args:         cobra.ExactArgs(1),
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		tochar.FormatMaxOutputWidth = maxWidth
		if err := tochar.ValidateFormat(args[0]); err != nil {
			return err
		}
		fmt.Println("ok")
		return nil
	},
}

// parseValue picks the narrowest datum kind for the input: signed integer,
// unsigned integer, then decimal.
func parseValue(s string) (tochar.Datum, error) {
	if !strings.ContainsAny(s, ".eE") {
		if i, err := strconv.ParseInt(s, 10, 64); err == nil {
			return tochar.DInt(i), nil
		}
		if u, err := strconv.ParseUint(s, 10, 64); err == nil {
			return tochar.DUint(u), nil
		}
	}
	d, err := tochar.NewDDecimalFromString(s)
	if err != nil {
		return nil, fmt.Errorf("cannot parse %q as a number: %w", s, err)
	}
	return d, nil
}

func main() {
	rootCmd.AddCommand(validateCmd)
	rootCmd.Flags().StringVar(&formatString, "format", "", "numeric format string (required)")
	rootCmd.PersistentFlags().IntVar(&maxWidth, "max-format-width", 1024,
		"maximum accepted format string length")
	if err := rootCmd.MarkFlagRequired("format"); err != nil {
		panic(err)
	}

	if err := rootCmd.Execute(); err != nil {
		color.New(color.FgRed).Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
