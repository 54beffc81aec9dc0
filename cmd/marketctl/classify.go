package main

import (
	"marketplace/internal/domain/entity"
	"marketplace/internal/domain/policy"

	"github.com/urfave/cli/v2"
)

var classifyCommand = &cli.Command{
	Name:  "classify",
	Usage: "Classify ad-hoc business type values without touching the database",
	Flags: []cli.Flag{
		&cli.StringFlag{Name: "lookup", Usage: "business_types.name value"},
		&cli.StringFlag{Name: "category", Usage: "legacy business_category value"},
		&cli.StringFlag{Name: "legacy", Usage: "legacy business_type enum (product_selling, delivery_service, both)"},
	},
	Action: func(c *cli.Context) error {
		class := policy.ClassifyBusiness(&entity.BusinessRecord{
			BusinessTypeName: c.String("lookup"),
			LegacyCategory:   c.String("category"),
			LegacyType:       entity.LegacyBusinessType(c.String("legacy")),
		})

		return printJSON(c.App.Writer, class)
	},
}
