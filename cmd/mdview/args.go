package main

import (
	"fmt"
	"strconv"
	"strings"
)

type options struct {
	help        bool
	print       bool
	tree        bool
	writeConfig bool
	width       int
	path        string
}

func parseArgs(args []string) (options, error) {
	var opts options
	for i := 0; i < len(args); i++ {
		arg := args[i]
		switch {
		case arg == "-h" || arg == "--help":
			opts.help = true
		case arg == "-p" || arg == "--print":
			opts.print = true
		case arg == "-t" || arg == "--tree":
			opts.tree = true
		case arg == "--write-config":
			opts.writeConfig = true
		case arg == "-w" || arg == "--width":
			if i+1 >= len(args) {
				return opts, fmt.Errorf("%s requires a value", arg)
			}
			i++
			width, err := parseWidth(args[i])
			if err != nil {
				return opts, err
			}
			opts.width = width
		case strings.HasPrefix(arg, "--width="):
			width, err := parseWidth(strings.TrimPrefix(arg, "--width="))
			if err != nil {
				return opts, err
			}
			opts.width = width
		case arg != "-" && strings.HasPrefix(arg, "-"):
			return opts, fmt.Errorf("unknown option %s", arg)
		default:
			if opts.path != "" {
				return opts, fmt.Errorf("unexpected argument %s", arg)
			}
			opts.path = arg
		}
	}
	return opts, nil
}

func parseWidth(value string) (int, error) {
	width, err := strconv.Atoi(value)
	if err != nil || width < 1 {
		return 0, fmt.Errorf("invalid width %q", value)
	}
	return width, nil
}
