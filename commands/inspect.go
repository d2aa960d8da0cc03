package commands

import (
	"fmt"

	"github.com/go-zoox/cli"
	"github.com/go-zoox/jobspec/model"
)

func RegistryInspect(app *cli.MultipleProgram) {
	app.Register("inspect", &cli.Command{
		Name:  "inspect",
		Usage: "decode a JSON payload and print the model",
		Flags: append([]cli.Flag{
			&cli.StringFlag{
				Name:     "file",
				Usage:    "payload path",
				Aliases:  []string{"f"},
				EnvVars:  []string{"JOBSPEC_FILE"},
				Required: true,
			},
			kindFlag(),
		}, validationFlags()...),
		Action: func(ctx *cli.Context) (err error) {
			cfg, err := loadConfiguration(ctx)
			if err != nil {
				return err
			}

			m, err := readModel(ctx.String("file"), ctx.String("kind"), cfg)
			if err != nil {
				return err
			}

			fmt.Println(model.Format(m))
			return nil
		},
	})
}
