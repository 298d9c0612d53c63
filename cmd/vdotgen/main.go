// Command vdotgen regenerates the embedded equivalence table blob.
//
// It computes every grid row from the physiological model, dumps them as
// a SQL script, and emits the gzipped base64 form that internal/store
// embeds. Run it after changing the model or the grid range and paste
// the output into internal/store/blob.go.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"vdot/internal/table"
)

func main() {
	out := flag.String("o", "", "output file (default stdout)")
	flag.Parse()

	rows, err := table.Generate()
	if err != nil {
		log.Fatalf("generating table: %v", err)
	}

	blob, err := table.Encode(rows)
	if err != nil {
		log.Fatalf("encoding table: %v", err)
	}

	if *out == "" {
		fmt.Println(blob)
		return
	}

	if err := os.WriteFile(*out, []byte(blob+"\n"), 0644); err != nil {
		log.Fatalf("writing %s: %v", *out, err)
	}
}
