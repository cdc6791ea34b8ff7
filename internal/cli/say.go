package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/heartmarshall/lenslearn/pkg/audio"
)

func newSayCommand(e *env) *cobra.Command {
	var out string

	cmd := &cobra.Command{
		Use:   "say <text>",
		Short: "Fetch a pronunciation and write it as WAV",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			lang, err := e.language()
			if err != nil {
				return err
			}
			session, err := e.session(false)
			if err != nil {
				return err
			}
			c, err := e.client()
			if err != nil {
				return err
			}

			clip, err := c.Pronounce(cmd.Context(), session, args[0], lang)
			if err != nil {
				return err
			}
			if clip == nil {
				return errors.New("no audio available for this text")
			}

			f, err := os.Create(out)
			if err != nil {
				return fmt.Errorf("create %s: %w", out, err)
			}
			if err := audio.WriteWAV(f, clip.PCM, clip.SampleRate, clip.Channels); err != nil {
				f.Close()
				return err
			}
			if err := f.Close(); err != nil {
				return fmt.Errorf("close %s: %w", out, err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "wrote %s (%.1fs)\n", out,
				audio.Duration(clip.PCM, clip.SampleRate, clip.Channels))
			return nil
		},
	}

	cmd.Flags().StringVarP(&out, "out", "o", "pronunciation.wav", "output WAV file")
	return cmd
}
