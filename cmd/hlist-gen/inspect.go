package main

import (
	"github.com/davecgh/go-spew/spew"
	"github.com/spf13/cobra"

	"hlist-support/internal/analyze"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect <package>...",
	Short: "Show the records hlist-gen sees in the given packages",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runInspect,
}

// recordView is the flattened form of a record used for dumping.
type recordView struct {
	Type   string
	Fields []string
}

func runInspect(cmd *cobra.Command, args []string) error {
	analyzer := analyze.NewAnalyzer()

	infos, err := analyzer.LoadPackages(args...)
	if err != nil {
		return err
	}

	for _, info := range infos {
		for _, id := range info.Records {
			rec, err := analyzer.Record(id.PkgPath, id.Name)
			if err != nil {
				return err
			}

			view := recordView{Type: rec.ID.String()}
			for _, field := range rec.Fields {
				view.Fields = append(view.Fields, field.Name+" "+field.Type.String())
			}

			cmd.Print(spew.Sdump(view))
		}
	}

	return nil
}
