package cli

import (
	"fmt"
	"text/tabwriter"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/heartmarshall/lenslearn/pkg/client"
	"github.com/heartmarshall/lenslearn/pkg/workflow"
)

func newWordsCommand(e *env) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "words",
		Short: "Manage saved words",
	}
	cmd.AddCommand(newWordsListCommand(e), newWordsSaveCommand(e), newWordsDeleteCommand(e))
	return cmd
}

func newWordsListCommand(e *env) *cobra.Command {
	var filter string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List saved words, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			lang := workflow.All
			if filter != "" && filter != string(workflow.All) {
				var err error
				if lang, err = parseLanguage(filter); err != nil {
					return err
				}
			}

			session, err := e.session(true)
			if err != nil {
				return err
			}
			c, err := e.client()
			if err != nil {
				return err
			}

			lib := workflow.NewLibrary(c, session)
			if err := lib.Load(cmd.Context()); err != nil {
				return err
			}

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "ID\tWORD\tTRANSLATION\tSECONDARY\tLANGUAGE\tSAVED AT")
			for _, w := range lib.Filter(lang) {
				secondary := ""
				if w.SecondaryTranslation != nil {
					secondary = *w.SecondaryTranslation
				}
				fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\n",
					w.ID, w.Word, w.Translation, secondary, w.Language, w.CreatedAt.Local().Format(time.DateTime))
			}
			return tw.Flush()
		},
	}

	cmd.Flags().StringVar(&filter, "filter", string(workflow.All), "only show words in this language")
	return cmd
}

func newWordsSaveCommand(e *env) *cobra.Command {
	var translation, secondary string

	cmd := &cobra.Command{
		Use:   "save <word>",
		Short: "Save a word",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			lang, err := e.language()
			if err != nil {
				return err
			}
			session, err := e.session(true)
			if err != nil {
				return err
			}
			c, err := e.client()
			if err != nil {
				return err
			}

			nw := client.NewWord{Word: args[0], Translation: translation, Language: lang}
			if secondary != "" {
				nw.SecondaryTranslation = &secondary
			}

			saved, err := c.CreateWord(cmd.Context(), session, nw)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "saved %s (%s) as %s\n", saved.Word, saved.Translation, saved.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&translation, "translation", "", "primary translation (built by the server when empty)")
	cmd.Flags().StringVar(&secondary, "secondary", "", "secondary translation")
	return cmd
}

func newWordsDeleteCommand(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a saved word",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := uuid.Parse(args[0])
			if err != nil {
				return fmt.Errorf("word id %q is not a UUID", args[0])
			}
			session, err := e.session(true)
			if err != nil {
				return err
			}
			c, err := e.client()
			if err != nil {
				return err
			}

			if err := workflow.NewLibrary(c, session).Delete(cmd.Context(), id); err != nil {
				if client.IsNotFound(err) {
					return fmt.Errorf("word %s not found", id)
				}
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "deleted %s\n", id)
			return nil
		},
	}
}
