package main

import (
	"fmt"
	"text/tabwriter"

	"marketplace/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/urfave/cli/v2"
)

var targetsCommand = &cli.Command{
	Name:  "targets",
	Usage: "Print the businesses a request would notify, in ranked order",
	Flags: []cli.Flag{
		&cli.StringFlag{Name: "type", Aliases: []string{"t"}, Usage: "request type (item, delivery, price, rent, ...)", Required: true},
		&cli.StringFlag{Name: "country", Aliases: []string{"c"}, Usage: "ISO 3166-1 alpha-2 country code"},
		&cli.StringFlag{Name: "category", Usage: "category id"},
		&cli.StringFlag{Name: "subcategory", Usage: "subcategory id"},
		&cli.BoolFlag{Name: "json", Usage: "print the full result as JSON"},
	},
	Action: func(c *cli.Context) error {
		req := &entity.RequestDescriptor{
			RequestID:     "marketctl-" + uuid.NewString(),
			RequestType:   entity.RequestType(c.String("type")),
			CategoryID:    c.String("category"),
			SubcategoryID: c.String("subcategory"),
			CountryCode:   c.String("country"),
		}

		return withDirectory(c.Context, func(dir directory) error {
			result, err := dir.Targeting.GetBusinessesToNotify(c.Context, req)
			if err != nil {
				return err
			}

			if c.Bool("json") {
				return printJSON(c.App.Writer, result)
			}

			return printTargets(c, result)
		})
	},
}

func printTargets(c *cli.Context, result *entity.TargetingResult) error {
	fmt.Fprintf(c.App.Writer, "rule: %s  country: %s  candidates: %d\n", result.Rule, result.CountryCode, len(result.Candidates))

	tw := tabwriter.NewWriter(c.App.Writer, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "#\tREASON\tBUSINESS\tEMAIL\tUSER")
	for idx, candidate := range result.Candidates {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\n",
			idx+1, candidate.Reason, candidate.BusinessName, candidate.BusinessEmail, candidate.UserID)
	}

	return tw.Flush()
}
