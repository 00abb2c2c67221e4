// Package flagx lets several configuration layers read their own flags from
// one command line without tripping over each other.
package flagx

import (
	"flag"
	"io"
	"strings"
)

// FilterArgs keeps only the allowed flags of args, together with their
// values. Both "-f value" and "-f=value" forms are recognised. A token that
// starts with '-' is never consumed as a value.
func FilterArgs(args []string, allowedFlags []string) []string {
	allowed := make(map[string]struct{}, len(allowedFlags))
	for _, f := range allowedFlags {
		allowed[f] = struct{}{}
	}

	kept := make([]string, 0, len(args))
	for i := 0; i < len(args); i++ {
		arg := args[i]

		if name, _, found := strings.Cut(arg, "="); found && strings.HasPrefix(arg, "-") {
			if _, ok := allowed[name]; ok {
				kept = append(kept, arg)
			}
			continue
		}

		if _, ok := allowed[arg]; !ok {
			continue
		}
		kept = append(kept, arg)
		if i+1 < len(args) && !strings.HasPrefix(args[i+1], "-") {
			kept = append(kept, args[i+1])
			i++
		}
	}

	return kept
}

// LookupString returns the value given to any of the aliases in args (for
// example "-c" and "-config"). When a flag is repeated the last value wins.
// Missing flags yield "".
func LookupString(args []string, aliases ...string) string {
	var value string

	fs := flag.NewFlagSet("lookup", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	for _, a := range aliases {
		fs.StringVar(&value, strings.TrimLeft(a, "-"), "", "")
	}
	_ = fs.Parse(FilterArgs(args, aliases))

	return value
}

// ConfigFilePath extracts the JSON config path given via -c or -config.
func ConfigFilePath(args []string) string {
	return LookupString(args, "-c", "-config")
}

// EnvFilePath extracts the dotenv file path given via -e or -env.
func EnvFilePath(args []string) string {
	return LookupString(args, "-e", "-env")
}
