package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"

	"github.com/anirudhraja/protoserial"
)

func main() {
	parallel := flag.Int("parallel", 1, "declarations rendered concurrently")
	debug := flag.Bool("debug", false, "log generator progress to stderr")
	flag.Parse()

	logger := level.NewFilter(log.NewLogfmtLogger(log.NewSyncWriter(os.Stderr)), level.AllowInfo())
	if *debug {
		logger = level.NewFilter(log.NewLogfmtLogger(log.NewSyncWriter(os.Stderr)), level.AllowDebug())
	}

	ps := protoserial.New([]string{"testdata"},
		protoserial.WithLogger(logger),
		protoserial.WithParallelism(*parallel),
	)

	// user.proto imports post.proto, which is loaded with it.
	for _, f := range []string{"post.proto", "user.proto"} {
		if err := ps.LoadSchemaFromFile(f); err != nil {
			level.Error(logger).Log("msg", "failed to load schema", "file", f, "err", err)
			os.Exit(1)
		}
	}

	fmt.Println("Messages:", strings.Join(ps.ListMessages(), ", "))
	fmt.Println("Enums:   ", strings.Join(ps.ListEnums(), ", "))

	files, err := ps.Generate()
	for _, f := range files {
		fmt.Println()
		fmt.Println(strings.Repeat("=", 70))
		fmt.Printf("%s (package %s)\n", f.Name, f.GoImportPath)
		fmt.Println(strings.Repeat("=", 70))
		fmt.Print(string(f.Content))
	}
	if err != nil {
		level.Error(logger).Log("msg", "generation failed", "err", err)
		os.Exit(1)
	}
}
