package cli

import (
	"fmt"
	"log/slog"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/heartmarshall/lenslearn/pkg/capture"
	"github.com/heartmarshall/lenslearn/pkg/workflow"
)

func newIdentifyCommand(e *env) *cobra.Command {
	var (
		save    bool
		maxSide int
	)

	cmd := &cobra.Command{
		Use:   "identify <image>",
		Short: "Name the objects in a photo",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			lang, err := e.language()
			if err != nil {
				return err
			}
			session, err := e.session(save)
			if err != nil {
				return err
			}
			c, err := e.client()
			if err != nil {
				return err
			}

			image, err := capture.FromFile(args[0], capture.Options{MaxSide: maxSide})
			if err != nil {
				return err
			}

			stderr := cmd.ErrOrStderr()
			studio, err := workflow.NewStudio(workflow.Deps{
				Recognizer: c,
				Words:      c,
				Pronouncer: c,
				Notifier: workflow.NotifierFunc(func(msg string) {
					fmt.Fprintln(stderr, msg)
				}),
				Logger: e.log,
			}, session, lang)
			if err != nil {
				return err
			}

			view, err := studio.Identify(cmd.Context(), image)
			if err != nil {
				return err
			}
			if view == nil {
				fmt.Fprintln(cmd.OutOrStdout(), "no objects found")
				return nil
			}
			defer view.Close()

			if save {
				for _, obj := range view.Objects() {
					if err := view.Save(obj.ID); err != nil {
						e.log.Warn("save failed", slog.String("object", obj.ID), slog.String("error", err.Error()))
					}
				}
			}

			objects := view.Objects()
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "ID\tNAME\tTRANSLATION\tX\tY\tSAVED")
			for i, m := range view.Markers() {
				fmt.Fprintf(tw, "%s\t%s\t%s\t%.0f\t%.0f\t%s\n",
					m.ID, m.Name, objects[i].Translation, m.X, m.Y, yesNo(m.Saved))
			}
			return tw.Flush()
		},
	}

	cmd.Flags().BoolVar(&save, "save", false, "save every identified object as a word")
	cmd.Flags().IntVar(&maxSide, "max-side", capture.DefaultMaxSide, "downscale images whose longest side exceeds this many pixels")
	return cmd
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}
