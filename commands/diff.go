package commands

import (
	"errors"
	"fmt"

	"github.com/go-zoox/cli"
	"github.com/go-zoox/jobspec/model"
	"github.com/go-zoox/logger"
)

// ErrModelsDiffer is returned by diff when the payloads decode to different
// models.
var ErrModelsDiffer = errors.New("models differ")

func RegistryDiff(app *cli.MultipleProgram) {
	app.Register("diff", &cli.Command{
		Name:  "diff",
		Usage: "compare two JSON payloads as models, exit 1 when they differ",
		Flags: append([]cli.Flag{
			&cli.StringFlag{
				Name:     "left",
				Usage:    "first payload path",
				Required: true,
			},
			&cli.StringFlag{
				Name:     "right",
				Usage:    "second payload path",
				Required: true,
			},
			kindFlag(),
		}, validationFlags()...),
		Action: func(ctx *cli.Context) (err error) {
			cfg, err := loadConfiguration(ctx)
			if err != nil {
				return err
			}

			report, err := compareFiles(ctx.String("left"), ctx.String("right"), ctx.String("kind"), cfg)
			if report != "" {
				fmt.Print(report)
			}
			return err
		},
	})
}

// compareFiles decodes both payloads as kind. When they differ it returns a
// report of both models and ErrModelsDiffer.
func compareFiles(leftPath, rightPath, kind string, cfg *model.Configuration) (string, error) {
	left, err := readModel(leftPath, kind, cfg)
	if err != nil {
		return "", err
	}

	right, err := readModel(rightPath, kind, cfg)
	if err != nil {
		return "", err
	}

	if model.Equal(left, right) {
		logger.Infof("[jobspec] %s: equal", left.ModelName())
		return "", nil
	}

	report := fmt.Sprintf("--- %s\n%s\n+++ %s\n%s\n", leftPath, model.Format(left), rightPath, model.Format(right))
	return report, fmt.Errorf("%w: %s and %s", ErrModelsDiffer, leftPath, rightPath)
}
