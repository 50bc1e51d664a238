package main

import (
	"github.com/MakeNowJust/heredoc"

	basecmd "go.ntppool.org/stratify/cmd"
	"go.ntppool.org/stratify/selector/cmd"
)

func main() {
	basecmd.Run(&cmd.CLI{}, "stratify", heredoc.Doc(`
		Select elements so their categories match a target distribution.

		Elements are read as "category,element" CSV rows. The distribution
		is given as category=fraction pairs separated by semicolons and
		must sum to 1.0.
	`))
}
