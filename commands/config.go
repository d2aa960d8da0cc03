package commands

import (
	"fmt"

	"github.com/go-zoox/cli"
	"github.com/go-zoox/fs"
	"github.com/go-zoox/jobspec/entities"
	"github.com/go-zoox/jobspec/model"
	"github.com/go-zoox/logger"
)

func validationFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "profile",
			Usage:   "validation profile (yaml)",
			EnvVars: []string{"JOBSPEC_PROFILE"},
		},
		&cli.BoolFlag{
			Name:    "strict",
			Usage:   "reject values the service would refuse",
			EnvVars: []string{"JOBSPEC_STRICT"},
		},
	}
}

func kindFlag() cli.Flag {
	return &cli.StringFlag{
		Name:    "kind",
		Usage:   fmt.Sprintf("model kind, one of %v", entities.KindNames()),
		Aliases: []string{"k"},
		EnvVars: []string{"JOBSPEC_KIND"},
		Value:   "docker",
	}
}

func loadConfiguration(ctx *cli.Context) (*model.Configuration, error) {
	if profile := ctx.String("profile"); profile != "" {
		logger.Debugf("[jobspec] load profile: %s", profile)
		return model.LoadProfile(profile)
	}

	if ctx.Bool("strict") {
		return entities.StrictConfiguration(), nil
	}

	return model.NewConfiguration(), nil
}

func readModel(path, kind string, cfg *model.Configuration) (model.Model, error) {
	if ok := fs.IsExist(path); !ok {
		return nil, fmt.Errorf("file not found: %s", path)
	}

	text, err := fs.ReadFileAsString(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read file(%s): %s", path, err)
	}

	m, err := entities.New(kind, cfg)
	if err != nil {
		return nil, err
	}

	if err := model.Unmarshal(m, []byte(text)); err != nil {
		return nil, fmt.Errorf("failed to decode %s(%s): %s", m.ModelName(), path, err)
	}

	return m, nil
}
