// Command dbusgen is a thin front end over the marshalgen library: it
// parses a signature off the command line, runs the generator, and writes
// the result to a path. Argument parsing and file I/O stay out of the
// library itself.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	marshalgen "github.com/dbus-codegen/marshalgen"
	"github.com/dbus-codegen/marshalgen/internal/sig"
)

const defaultWritePermission = 0644 // -rw-r--r--

type args struct {
	signature *string
	iterName  *string
	valueName *string
	oomBlock  *string
	outPath   *string
	fieldsCSV *string
}

func readArgs() *args {
	a := &args{
		signature: flag.String("signature", "", "Bus type signature to generate marshalling code for"),
		iterName:  flag.String("iter", "iter", "Name of the destination bus message iterator"),
		valueName: flag.String("value", "value", "Name of the value being marshaled"),
		oomBlock:  flag.String("oom", "return -ENOMEM;\n", "Code to inline at every fallible call on allocation failure"),
		outPath:   flag.String("output", "/dev/stdout", "Path to write the generated code to"),
		fieldsCSV: flag.String("fields", "", "Comma-separated struct field names, overriding item<N>"),
	}
	flag.Parse()
	return a
}

func main() {
	a := readArgs()

	if *a.signature == "" {
		log.Fatal("signature not informed")
	}

	cursor, err := sig.Parse(*a.signature)
	if err != nil {
		log.Fatalf("can't parse signature: %s", err.Error())
	}

	cfg := marshalgen.NewConfig()
	if *a.fieldsCSV != "" {
		cfg.FieldName = fieldNameFromCSV(*a.fieldsCSV)
	}

	result, err := marshalgen.Generate(cfg, cursor, *a.iterName, *a.valueName, *a.oomBlock)
	if err != nil {
		log.Fatalf("can't generate code: %s", err.Error())
	}

	output := renderFunctionBody(result)
	if err := os.WriteFile(*a.outPath, []byte(output), defaultWritePermission); err != nil {
		log.Fatalf("can't write output: %s", err.Error())
	}
}

// renderFunctionBody prefixes the emitted code with a C comment listing
// the declarations its Inputs/Locals lists describe, a minimal stand-in
// for whatever assembles a full function body around the generated
// marshalling code.
func renderFunctionBody(r marshalgen.Result) string {
	out := "/* inputs:\n"
	for _, v := range r.Inputs {
		out += fmt.Sprintf(" *   %s %s;\n", v.Type, v.Name)
	}
	out += " * locals:\n"
	for _, v := range r.Locals {
		out += fmt.Sprintf(" *   %s %s;\n", v.Type, v.Name)
	}
	out += " */\n"
	return out + r.Code
}

func fieldNameFromCSV(csv string) func(int) string {
	var names []string
	start := 0
	for i := 0; i <= len(csv); i++ {
		if i == len(csv) || csv[i] == ',' {
			names = append(names, csv[start:i])
			start = i + 1
		}
	}
	return func(index int) string {
		if index < len(names) {
			return names[index]
		}
		return fmt.Sprintf("item%d", index)
	}
}
