package cli

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/heartmarshall/lenslearn/pkg/client"
)

// Config keys.
const (
	keyServer   = "server"
	keyUserID   = "user_id"
	keyToken    = "token"
	keyLanguage = "language"
	keyVerbose  = "verbose"
	keySecret   = "auth.jwt_secret"
	keyIssuer   = "auth.jwt_issuer"
	keyAudience = "auth.jwt_audience"
)

// env is shared by all subcommands of one root command.
type env struct {
	v     *viper.Viper
	flags *Flags
	log   *slog.Logger
}

// NewRootCommand creates the lenslearn command tree.
func NewRootCommand(flags *Flags, version string) *cobra.Command {
	e := &env{v: viper.New(), flags: flags, log: slog.New(slog.DiscardHandler)}

	root := &cobra.Command{
		Use:   "lenslearn",
		Short: "Learn vocabulary from photos",
		Long: `lenslearn identifies everyday objects in a photo, names them in the
language you are learning and keeps the ones you save as vocabulary.

Examples:
  lenslearn identify desk.jpg -l Japanese        # name the objects in a photo
  lenslearn identify desk.jpg -l French --save   # and save all of them
  lenslearn words list --filter Spanish          # show saved Spanish words
  lenslearn say "la tasse" -l French -o tasse.wav`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return e.init(cmd.ErrOrStderr())
		},
	}

	setupFlags(root, flags)
	bindFlags(e.v, root.PersistentFlags())

	root.AddCommand(
		newIdentifyCommand(e),
		newWordsCommand(e),
		newSayCommand(e),
		newTokenCommand(e),
	)
	return root
}

func setupFlags(cmd *cobra.Command, flags *Flags) {
	pf := cmd.PersistentFlags()
	pf.StringVar(&flags.CfgFile, "config", "", "config file (default is $HOME/.lenslearn.yaml)")
	pf.StringVar(&flags.Server, "server", flags.Server, "LensLearn server base URL")
	pf.StringVar(&flags.UserID, "user", "", "user id (UUID)")
	pf.StringVar(&flags.Token, "token", "", "bearer token")
	pf.StringVarP(&flags.Language, "language", "l", flags.Language, "learning language: "+languageList())
	pf.BoolVarP(&flags.Verbose, "verbose", "v", false, "log requests to stderr")
}

func bindFlags(v *viper.Viper, fs *pflag.FlagSet) {
	v.BindPFlag(keyServer, fs.Lookup("server"))     //nolint:errcheck
	v.BindPFlag(keyUserID, fs.Lookup("user"))       //nolint:errcheck
	v.BindPFlag(keyToken, fs.Lookup("token"))       //nolint:errcheck
	v.BindPFlag(keyLanguage, fs.Lookup("language")) //nolint:errcheck
	v.BindPFlag(keyVerbose, fs.Lookup("verbose"))   //nolint:errcheck
}

// init reads the config file and environment and sets up logging.
func (e *env) init(stderr io.Writer) error {
	if e.flags.CfgFile != "" {
		e.v.SetConfigFile(e.flags.CfgFile)
	} else {
		if home, err := os.UserHomeDir(); err == nil {
			e.v.AddConfigPath(home)
		}
		e.v.SetConfigType("yaml")
		e.v.SetConfigName(".lenslearn")
	}

	e.v.SetEnvPrefix("LENSLEARN")
	e.v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	e.v.AutomaticEnv()

	if err := e.v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if e.flags.CfgFile != "" || !errors.As(err, &notFound) {
			return fmt.Errorf("read config: %w", err)
		}
	}

	level := slog.LevelWarn
	if e.v.GetBool(keyVerbose) {
		level = slog.LevelDebug
	}
	e.log = slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))
	if used := e.v.ConfigFileUsed(); used != "" {
		e.log.Debug("using config file", slog.String("path", used))
	}
	return nil
}

func (e *env) client() (*client.Client, error) {
	return client.New(e.v.GetString(keyServer), client.WithLogger(e.log))
}

func (e *env) language() (client.Language, error) {
	return parseLanguage(e.v.GetString(keyLanguage))
}

// session returns the configured identity. requireUser rejects a missing user id.
func (e *env) session(requireUser bool) (client.Session, error) {
	s := client.Session{Token: e.v.GetString(keyToken)}

	raw := strings.TrimSpace(e.v.GetString(keyUserID))
	if raw == "" {
		if requireUser {
			return s, errors.New("user id required: pass --user or set user_id in the config")
		}
		return s, nil
	}

	id, err := uuid.Parse(raw)
	if err != nil {
		return s, fmt.Errorf("user id %q is not a UUID", raw)
	}
	s.UserID = id
	return s, nil
}

func parseLanguage(s string) (client.Language, error) {
	for _, l := range client.Languages {
		if strings.EqualFold(strings.TrimSpace(s), string(l)) {
			return l, nil
		}
	}
	return "", fmt.Errorf("unsupported language %q (want one of %s)", s, languageList())
}

func languageList() string {
	names := make([]string, len(client.Languages))
	for i, l := range client.Languages {
		names[i] = string(l)
	}
	return strings.Join(names, ", ")
}
