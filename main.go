package main

import (
	"fmt"
	"os"

	"github.com/akasprzok/ragbadge/internal/commands"
	"github.com/alecthomas/kong"
	"github.com/joho/godotenv"
)

func main() {
	// .env is optional
	_ = godotenv.Load()

	var cli commands.CLI
	ctx := kong.Parse(&cli,
		kong.Name("ragbadge"),
		kong.Description("Status, rating and lifecycle colors for catalog badges, legends and charts."),
		kong.UsageOnError(),
	)

	runCtx, err := cli.NewContext()
	if err != nil {
		fmt.Fprintln(os.Stderr, commands.ErrorStyle.Render("Error: ")+err.Error())
		os.Exit(1)
	}

	err = ctx.Run(runCtx)
	ctx.FatalIfErrorf(err)
}
