package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

const (
	booleanFlagTypeName               = "bool"
	booleanFlagTrueLiteral            = "true"
	booleanFlagAcceptedValuesListing  = "true, false, yes, no, on, off, 1, 0"
	booleanFlagInvalidValueErrorLabel = "invalid boolean value"
	longFlagPrefix                    = "--"
	flagValueSeparator                = "="
)

var booleanFlagLiterals = map[string]bool{
	"true":  true,
	"t":     true,
	"1":     true,
	"yes":   true,
	"y":     true,
	"on":    true,
	"false": false,
	"f":     false,
	"0":     false,
	"no":    false,
	"n":     false,
	"off":   false,
}

// parseBooleanLiteral interprets input as a boolean literal. Empty input is true.
func parseBooleanLiteral(input string) (bool, bool) {
	normalized := strings.ToLower(strings.TrimSpace(input))
	if normalized == "" {
		return true, true
	}
	parsed, ok := booleanFlagLiterals[normalized]
	return parsed, ok
}

// booleanFlagValue is a pflag.Value accepting the literals in booleanFlagLiterals.
type booleanFlagValue struct {
	target  *bool
	flagKey string
}

func (value *booleanFlagValue) Set(input string) error {
	if value == nil || value.target == nil {
		return fmt.Errorf("%s %q", booleanFlagInvalidValueErrorLabel, input)
	}
	parsed, ok := parseBooleanLiteral(input)
	if !ok {
		return fmt.Errorf("%s %q for --%s; accepted values: %s", booleanFlagInvalidValueErrorLabel, input, value.flagKey, booleanFlagAcceptedValuesListing)
	}
	*value.target = parsed
	return nil
}

func (value *booleanFlagValue) String() string {
	if value == nil || value.target == nil {
		return strconv.FormatBool(false)
	}
	return strconv.FormatBool(*value.target)
}

func (value *booleanFlagValue) Type() string {
	return booleanFlagTypeName
}

// registerBooleanFlag binds a boolean flag that also accepts literal values
// such as "--name no". An empty shorthand registers no short form.
func registerBooleanFlag(flagSet *pflag.FlagSet, target *bool, name string, shorthand string, defaultValue bool, usage string) {
	if flagSet == nil || target == nil {
		return
	}
	*target = defaultValue
	flagSet.VarP(&booleanFlagValue{target: target, flagKey: name}, name, shorthand, usage)
	if lookup := flagSet.Lookup(name); lookup != nil {
		lookup.DefValue = strconv.FormatBool(defaultValue)
		lookup.NoOptDefVal = booleanFlagTrueLiteral
	}
}

// normalizeBooleanFlagArguments joins "--name literal" pairs into
// "--name=literal" for boolean flags of command and its subcommands, so the
// literal is not mistaken for the positional path. Arguments after "--" are
// left untouched.
func normalizeBooleanFlagArguments(command *cobra.Command, arguments []string) []string {
	if command == nil || len(arguments) == 0 {
		return arguments
	}
	booleanFlags := map[string]struct{}{}
	collectBooleanFlagNames(command, booleanFlags)
	if len(booleanFlags) == 0 {
		return arguments
	}
	normalized := make([]string, 0, len(arguments))
	for index := 0; index < len(arguments); index++ {
		currentArgument := arguments[index]
		if currentArgument == longFlagPrefix {
			normalized = append(normalized, arguments[index:]...)
			break
		}
		if joined, consumed := joinBooleanLiteral(currentArgument, arguments[index+1:], booleanFlags); consumed {
			normalized = append(normalized, joined)
			index++
			continue
		}
		normalized = append(normalized, currentArgument)
	}
	return normalized
}

func joinBooleanLiteral(currentArgument string, remaining []string, booleanFlags map[string]struct{}) (string, bool) {
	if !strings.HasPrefix(currentArgument, longFlagPrefix) || strings.Contains(currentArgument, flagValueSeparator) || len(remaining) == 0 {
		return "", false
	}
	flagName := strings.TrimPrefix(currentArgument, longFlagPrefix)
	if _, exists := booleanFlags[flagName]; !exists {
		return "", false
	}
	nextArgument := remaining[0]
	if strings.HasPrefix(nextArgument, "-") || strings.TrimSpace(nextArgument) == "" {
		return "", false
	}
	if _, valid := parseBooleanLiteral(nextArgument); !valid {
		return "", false
	}
	return longFlagPrefix + flagName + flagValueSeparator + nextArgument, true
}

func collectBooleanFlagNames(command *cobra.Command, target map[string]struct{}) {
	if command == nil || target == nil {
		return
	}
	visit := func(flag *pflag.Flag) {
		if flag != nil && flag.Value != nil && flag.Value.Type() == booleanFlagTypeName {
			target[flag.Name] = struct{}{}
		}
	}
	command.PersistentFlags().VisitAll(visit)
	command.Flags().VisitAll(visit)
	for _, child := range command.Commands() {
		collectBooleanFlagNames(child, target)
	}
}
