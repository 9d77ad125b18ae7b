package main

import (
	"context"
	"fmt"
	"go/format"
	"log"
	"os"
	"time"

	"github.com/delaneyj/patchbay/cmd/codegen/templates"
	"github.com/urfave/cli/v3"
)

const (
	combineCountKey = "count"
	outputKey       = "out"
)

func main() {
	cmd := &cli.Command{
		Name:  "generate",
		Usage: "Generate the CombineN sources for package wire",
		Flags: []cli.Flag{
			&cli.UintFlag{
				Name:  combineCountKey,
				Usage: "Largest number of observables a generated Combine accepts",
				Value: 4,
			},
			&cli.StringFlag{
				Name:  outputKey,
				Usage: "File to write the generated code to",
				Value: "wire/combine_gen.go",
			},
		},
		Action: generate,
	}
	if err := cmd.Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}

func generate(ctx context.Context, cmd *cli.Command) error {
	start := time.Now()
	log.Printf("Codegen for wire started !")
	defer func() {
		log.Printf("Codegen for wire finished in %v", time.Since(start))
	}()

	count := int(cmd.Uint(combineCountKey))
	if count < 2 {
		return fmt.Errorf("--%s must be at least 2, got %d", combineCountKey, count)
	}
	out := cmd.String(outputKey)
	log.Printf("Combine arity: 2..%d -> %s", count, out)

	contents, err := format.Source([]byte(templates.CombineGen(count)))
	if err != nil {
		return fmt.Errorf("formatting generated code: %w", err)
	}
	if err := os.WriteFile(out, contents, 0644); err != nil {
		return err
	}

	return nil
}
