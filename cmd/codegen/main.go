package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/delaneyj/trackparty/cmd/codegen/templates"
	"github.com/urfave/cli/v3"
)

const (
	packageKey = "package"
	nameKey    = "name"
	fieldsKey  = "fields"
	outKey     = "out"
)

func main() {
	cmd := &cli.Command{
		Name:  "generate",
		Usage: "Generate typed accessor wrappers over tracked records",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  packageKey,
				Usage: "Package name for the generated file",
				Value: "state",
			},
			&cli.StringFlag{
				Name:     nameKey,
				Usage:    "State struct name, e.g. Todo",
				Required: true,
			},
			&cli.StringFlag{
				Name:     fieldsKey,
				Usage:    "Comma-separated name:type pairs, e.g. title:string,count:int",
				Required: true,
			},
			&cli.StringFlag{
				Name:  outKey,
				Usage: "Output file, stdout when empty",
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
	log.Printf("Codegen for tracked state started!")
	defer func() {
		log.Printf("Codegen for tracked state finished in %v", time.Since(start))
	}()

	fields, err := parseFields(cmd.String(fieldsKey))
	if err != nil {
		return err
	}

	contents := templates.AccessorsGen(cmd.String(packageKey), cmd.String(nameKey), fields)

	out := cmd.String(outKey)
	if out == "" {
		fmt.Print(contents)
		return nil
	}
	return os.WriteFile(out, []byte(contents), 0644)
}

func parseFields(raw string) ([]templates.Field, error) {
	var fields []templates.Field
	for _, pair := range strings.Split(raw, ",") {
		pair = strings.TrimSpace(pair)
		if pair == "" {
			continue
		}
		name, goType, ok := strings.Cut(pair, ":")
		if !ok {
			return nil, fmt.Errorf("field %q: want name:type", pair)
		}
		fields = append(fields, templates.Field{Name: name, GoType: goType})
	}
	if len(fields) == 0 {
		return nil, fmt.Errorf("no fields given")
	}
	return fields, nil
}
