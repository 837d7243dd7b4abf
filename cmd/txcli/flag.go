package main

import (
	"encoding/hex"
	"flag"
	"fmt"
	"os"
	"strings"
)

// flHex returns a value that is being initialized with given default value
// and optionally overwritten by a command line argument if provided. This
// function follows Go's flag package convention.
// If given value cannot be deserialized to required type, process is
// terminated.
func flHex(fl *flag.FlagSet, name, defaultVal, usage string) *[]byte {
	var b flagbyte
	if defaultVal != "" {
		if err := b.Set(defaultVal); err != nil {
			fmt.Fprintf(os.Stderr, "Cannot parse %q hex encoded flag value. %s", name, err)
			os.Exit(2)
		}
	}
	fl.Var(&b, name, usage)
	return (*[]byte)(&b)
}

type flagbyte []byte

func (b flagbyte) String() string {
	return strings.ToUpper(hex.EncodeToString(b))
}

func (b *flagbyte) Set(raw string) error {
	val, err := hex.DecodeString(strings.TrimPrefix(raw, "0x"))
	if err != nil {
		return err
	}
	*b = val
	return nil
}

// flStrings returns a list of values, one for each time the flag was given.
func flStrings(fl *flag.FlagSet, name, usage string) *[]string {
	var s flagstrings
	fl.Var(&s, name, usage)
	return (*[]string)(&s)
}

type flagstrings []string

func (s flagstrings) String() string {
	return strings.Join(s, ",")
}

func (s *flagstrings) Set(raw string) error {
	*s = append(*s, raw)
	return nil
}
