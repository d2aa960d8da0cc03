package main

import (
	"github.com/go-zoox/cli"
	"github.com/go-zoox/jobspec/commands"
)

func main() {
	app := cli.NewMultipleProgram(&cli.MultipleProgramConfig{
		Name:    "jobspec",
		Usage:   "jobspec builds, inspects and compares job execution specs",
		Version: Version,
	})

	commands.RegistryInspect(app)
	commands.RegistryDocker(app)
	commands.RegistryDiff(app)

	app.Run()
}
