package main

import (
	"marketplace/internal/domain/entity"
	domainerrors "marketplace/internal/domain/errors"
	"marketplace/internal/domain/policy"
	"marketplace/internal/errors"

	"github.com/google/uuid"
	"github.com/urfave/cli/v2"
)

// rightsReport pairs the rights with the field each classification flag came from.
type rightsReport struct {
	Rights         *entity.AccessRights   `json:"rights"`
	Classification *policy.Classification `json:"classification,omitempty"`
}

var rightsCommand = &cli.Command{
	Name:  "rights",
	Usage: "Print a user's access rights and how their business was classified",
	Flags: []cli.Flag{
		&cli.StringFlag{Name: "user", Aliases: []string{"u"}, Usage: "account id", Required: true},
	},
	Action: func(c *cli.Context) error {
		userID, err := uuid.Parse(c.String("user"))
		if err != nil {
			return errors.Wrap(err, "invalid --user")
		}

		return withDirectory(c.Context, func(dir directory) error {
			rights, err := dir.AccessRights.GetAccessRights(c.Context, userID)
			if err != nil {
				return err
			}

			report := rightsReport{Rights: rights}

			business, err := dir.Business.GetBusiness(c.Context, userID)
			switch {
			case err == nil:
				class := policy.ClassifyBusiness(business)
				report.Classification = &class
			case !errors.Is(err, domainerrors.ErrBusinessNotFound):
				return err
			}

			return printJSON(c.App.Writer, report)
		})
	},
}
