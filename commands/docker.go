package commands

import (
	"fmt"

	"github.com/go-zoox/cli"
	"github.com/go-zoox/jobspec/entities"
	"github.com/go-zoox/jobspec/model"
	"github.com/go-zoox/logger"
)

func RegistryDocker(app *cli.MultipleProgram) {
	app.Register("docker", &cli.Command{
		Name:  "docker",
		Usage: "build a container execution spec from flags",
		Flags: append([]cli.Flag{
			&cli.StringFlag{
				Name:    "image",
				Usage:   "image to run, pullable by docker",
				Aliases: []string{"i"},
				EnvVars: []string{"JOBSPEC_IMAGE"},
			},
			&cli.StringSliceFlag{
				Name:    "entrypoint",
				Usage:   "override the image entrypoint, repeat for each argument",
				EnvVars: []string{"JOBSPEC_ENTRYPOINT"},
			},
			&cli.StringSliceFlag{
				Name:    "env",
				Usage:   "environment variable, KEY=VALUE",
				Aliases: []string{"e"},
				EnvVars: []string{"JOBSPEC_ENV"},
			},
			&cli.StringFlag{
				Name:    "workdir",
				Usage:   "working directory inside the container",
				Aliases: []string{"w"},
				EnvVars: []string{"JOBSPEC_WORKDIR"},
			},
		}, validationFlags()...),
		Action: func(ctx *cli.Context) (err error) {
			cfg, err := loadConfiguration(ctx)
			if err != nil {
				return err
			}

			spec, err := entities.NewContainerExecutionSpec(cfg, dockerAssignments(ctx)...)
			if err != nil {
				return fmt.Errorf("failed to build container execution spec: %s", err)
			}

			raw, err := model.Marshal(spec)
			if err != nil {
				return fmt.Errorf("failed to marshal container execution spec: %s", err)
			}

			logger.Debugf("[jobspec] %s", spec)
			fmt.Println(string(raw))
			return nil
		},
	})
}

// flagSource is the part of *cli.Context the docker command reads.
type flagSource interface {
	IsSet(name string) bool
	String(name string) string
	StringSlice(name string) []string
}

// dockerAssignments only assigns the flags given on the command line, so
// unset flags stay unset fields.
func dockerAssignments(flags flagSource) []model.Assignment {
	var assignments []model.Assignment
	if flags.IsSet("entrypoint") {
		assignments = append(assignments, model.With("entrypoint", flags.StringSlice("entrypoint")))
	}
	if flags.IsSet("env") {
		assignments = append(assignments, model.With("environmentVariables", flags.StringSlice("env")))
	}
	if flags.IsSet("image") {
		assignments = append(assignments, model.With("image", flags.String("image")))
	}
	if flags.IsSet("workdir") {
		assignments = append(assignments, model.With("workingDirectory", flags.String("workdir")))
	}

	return assignments
}
