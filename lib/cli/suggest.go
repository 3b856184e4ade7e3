// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"strings"

	"github.com/agnivade/levenshtein"
	"github.com/spf13/pflag"
)

// suggestionThreshold is the largest edit distance still worth
// suggesting. Three catches common typos (transpositions, dropped
// characters, extra characters) without suggesting unrelated names.
const suggestionThreshold = 3

// suggestCommand returns the registered name closest to the unknown
// token, or "" if nothing is close enough. The comparison ignores case,
// as lookup does; the suggestion keeps its declared spelling.
func suggestCommand(unknown string, names []string) string {
	folded := make([]string, len(names))
	for i, name := range names {
		folded[i] = strings.ToLower(name)
	}
	best := closest(strings.ToLower(unknown), folded)
	for i, name := range folded {
		if name == best && best != "" {
			return names[i]
		}
	}
	return ""
}

// suggestOption returns the closest long option ("--name") to an
// unknown option token, or "". Unknown short options get no
// suggestion: one character carries too little to compare.
func suggestOption(option string, flagSet *pflag.FlagSet) string {
	if !strings.HasPrefix(option, "--") {
		return ""
	}
	var names []string
	flagSet.VisitAll(func(flag *pflag.Flag) {
		names = append(names, flag.Name)
	})
	if best := closest(strings.TrimPrefix(option, "--"), names); best != "" {
		return "--" + best
	}
	return ""
}

func closest(unknown string, candidates []string) string {
	bestName := ""
	bestDistance := suggestionThreshold + 1
	for _, candidate := range candidates {
		distance := levenshtein.ComputeDistance(unknown, candidate)
		if distance < bestDistance {
			bestDistance = distance
			bestName = candidate
		}
	}
	return bestName
}

// unknownOption finds the first option token in args that names no
// flag in flagSet, returning it as typed without any "=value" part.
// Values consumed by value-taking options are skipped.
func unknownOption(args []string, flagSet *pflag.FlagSet) string {
	for index := 0; index < len(args); index++ {
		arg := args[index]
		if arg == "--" {
			return ""
		}
		if len(arg) < 2 || arg[0] != '-' {
			continue
		}

		if strings.HasPrefix(arg, "--") {
			name, _, hasValue := strings.Cut(arg[2:], "=")
			flag := flagSet.Lookup(name)
			if flag == nil {
				return "--" + name
			}
			if !hasValue && flag.NoOptDefVal == "" {
				index++
			}
			continue
		}

		shorthands := arg[1:]
		for position := 0; position < len(shorthands); position++ {
			flag := flagSet.ShorthandLookup(shorthands[position : position+1])
			if flag == nil {
				return "-" + shorthands[position:position+1]
			}
			if flag.NoOptDefVal == "" {
				// The rest of the token, or the next arg, is the value.
				if position == len(shorthands)-1 {
					index++
				}
				break
			}
		}
	}
	return ""
}
