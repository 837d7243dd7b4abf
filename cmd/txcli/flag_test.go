package main

import (
	"bytes"
	"flag"
	"testing"
)

func TestHexFlag(t *testing.T) {
	fl := flag.NewFlagSet("", flag.ContinueOnError)
	v := flHex(fl, "val", "0xAB", "")
	if !bytes.Equal(*v, []byte{0xab}) {
		t.Fatalf("unexpected default: %x", *v)
	}
	if err := fl.Parse([]string{"-val", "01ff"}); err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(*v, []byte{0x01, 0xff}) {
		t.Fatalf("unexpected value: %x", *v)
	}

	fl = flag.NewFlagSet("", flag.ContinueOnError)
	fl.SetOutput(&bytes.Buffer{})
	flHex(fl, "val", "", "")
	if err := fl.Parse([]string{"-val", "xyz"}); err == nil {
		t.Fatal("want invalid hex to fail")
	}
}

func TestStringsFlag(t *testing.T) {
	fl := flag.NewFlagSet("", flag.ContinueOnError)
	v := flStrings(fl, "o", "")
	if err := fl.Parse([]string{"-o", "a", "-o", "b", "-o", "a"}); err != nil {
		t.Fatal(err)
	}
	if got := *v; len(got) != 3 || got[0] != "a" || got[1] != "b" || got[2] != "a" {
		t.Fatalf("unexpected values: %q", got)
	}
}
