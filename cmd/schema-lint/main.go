// schema-lint compiles a GraphQL SDL file and reports every well-formedness
// violation as a JSON record, one per line.
package main

import (
	"fmt"
	"os"

	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"
	"github.com/spf13/pflag"

	"github.com/graphty/schemac"
	"github.com/graphty/schemac/sdl"
)

func main() {
	schemaPath := pflag.StringP("schema", "s", "", "the path to the SDL schema file")
	verbose := pflag.BoolP("verbose", "v", false, "enable debug logging")
	pflag.Parse()

	if *schemaPath == "" {
		fmt.Fprintln(os.Stderr, "the --schema flag is required")
		os.Exit(1)
	}

	logger := logrus.New()
	logger.SetOutput(os.Stderr)
	if *verbose {
		logger.SetLevel(logrus.DebugLevel)
	}

	src, err := os.ReadFile(*schemaPath)
	if err != nil {
		logger.Fatal("error reading schema: " + err.Error())
	}

	decls, err := sdl.ParseDeclarations(*schemaPath, string(src))
	if err != nil {
		logger.Fatal("error parsing schema: " + err.Error())
	}
	base, exts := sdl.SplitExtensions(decls)

	compiler := schemac.New(&schemac.Config{
		Logger: logger,
	})

	s, err := compiler.Compile(base)
	if err != nil {
		logger.Fatal(err.Error())
	}
	if !s.HasErrors() && len(exts) > 0 {
		if s, err = compiler.Extend(s, exts); err != nil {
			logger.Fatal(err.Error())
		}
	}

	for _, schemaErr := range s.Errors {
		buf, err := jsoniter.Marshal(schemaErr)
		if err != nil {
			logger.Fatal("error encoding report: " + err.Error())
		}
		fmt.Fprintln(os.Stdout, string(buf))
	}
	if s.HasErrors() {
		os.Exit(1)
	}
}
