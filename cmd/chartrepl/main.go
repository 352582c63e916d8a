package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/chzyer/readline"
	"github.com/npillmayer/chartparse/lexicon"
	"github.com/npillmayer/schuko/gconf"
	"github.com/npillmayer/schuko/schukonf/viperadapter"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/npillmayer/schuko/tracing/trace2go"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "chartrepl [sentence]",
	Short: "Interactive chart parser for a tiny English grammar",
	Long: `chartrepl parses sentences of a tiny English grammar (determiners,
nouns and prepositions) with a bottom-up chart parser. Readings are ranked by
the number of grammatical errors they contain; only readings up to a rank bound
are displayed.`,
	SilenceErrors: true,
	SilenceUsage:  true,
	RunE:          run,
}

func init() {
	cobra.OnInitialize(initConfig)
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&cfgFile, "config", "", "config file (default: ./chartrepl.yaml)")
	flags.String("trace", "Info", "Trace level [Debug|Info|Error]")
	flags.String("max-rank", "0", "Initial rank bound (a number or 'inf')")
	flags.String("lexicon", "", "YAML lexicon file")
	flags.String("tokenizer", "words", "Tokenizer for sentences [words|go]")
	flags.Bool("panic-on-merge-failure", false, "Panic if a grammar rule fails")
	for _, key := range []string{"trace", "max-rank", "lexicon", "tokenizer", "panic-on-merge-failure"} {
		_ = viper.BindPFlag(key, flags.Lookup(key))
	}
}

// initConfig reads in a config file and ENV variables.
func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.AddConfigPath(".")
		viper.SetConfigType("yaml")
		viper.SetConfigName("chartrepl")
	}
	viper.SetEnvPrefix("CHARTREPL")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()
	if err := viper.ReadInConfig(); err == nil {
		tracer().Infof("Using config file: %s", viper.ConfigFileUsed())
	}
}

// main() starts an interactive CLI, where users may enter sentences. The
// REPL will parse each sentence and print out all of its readings.
func main() {
	if err := rootCmd.Execute(); err != nil {
		pterm.Error.Println(err.Error())
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	initDisplay()
	tlevel := viper.GetString("trace")
	configure(tlevel)
	pterm.Info.Println("Welcome to chartrepl")
	tracer().Infof("Trace level is %s", tlevel)
	maxRank, err := parseRank(viper.GetString("max-rank"))
	if err != nil {
		return err
	}
	lex, err := loadLexicon(viper.GetString("lexicon"))
	if err != nil {
		return err
	}
	intp, err := NewIntp(lex, maxRank)
	if err != nil {
		return err
	}
	if err = intp.UseTokenizer(viper.GetString("tokenizer")); err != nil {
		return err
	}
	if input := strings.TrimSpace(strings.Join(args, " ")); input != "" {
		tracer().Infof("Input argument is \"%s\"", input)
		if _, err = intp.Eval(input); err != nil {
			pterm.Error.Println(err.Error())
		}
	}
	intp.repl, err = readline.New("chart> ")
	if err != nil {
		return err
	}
	defer intp.repl.Close()
	tracer().Infof("Quit with <ctrl>D or :quit")
	intp.REPL()
	return nil
}

// traceKeys are the tracers of this module. Their level is set by flag --trace,
// unless configured individually by keys tracelevel.<key>.
var traceKeys = []string{
	"chartparse.chart",
	"chartparse.grammar",
	"chartparse.babyenglish",
	"chartparse.lexicon",
	"chartparse.scanner",
	"chartparse.repl",
}

// configure makes the viper configuration available to the library packages
// through schuko's gconf (e.g., flag 'panic-on-merge-failure') and sets up
// tracing with Go loggers.
func configure(tlevel string) {
	tracing.RegisterTraceAdapter("go", gologadapter.GetAdapter(), false)
	viper.SetDefault("tracelevel.root", tlevel)
	for _, key := range traceKeys {
		viper.SetDefault("tracelevel."+key, tlevel)
	}
	for _, key := range []string{"tracinginterpreter", "tracingcommands", "tracingequations",
		"tracingsyntax", "tracinggraphics", "tracingscripting", "tracingcore", "tracingengine"} {
		viper.SetDefault(key, "Error")
	}
	conf := viperadapter.New("chartrepl")
	gconf.Initialize(conf)
	if err := trace2go.ConfigureRoot(conf, "tracelevel", trace2go.ReplaceTracers(true)); err != nil {
		pterm.Error.Println(err.Error())
		return
	}
	tracing.SetTraceSelector(trace2go.Selector())
}

// We use pterm for moderately fancy output.
func initDisplay() {
	pterm.EnableDebugMessages()
	pterm.Info.Prefix = pterm.Prefix{
		Text:  "  >>",
		Style: pterm.NewStyle(pterm.BgCyan, pterm.FgBlack),
	}
	pterm.Error.Prefix = pterm.Prefix{
		Text:  "  Error",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}
}

// loadLexicon loads a lexicon file. An empty file name selects the built-in
// lexicon.
func loadLexicon(filename string) (*lexicon.Lexicon, error) {
	if filename == "" {
		return nil, nil
	}
	f, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("unable to open lexicon file: %w", err)
	}
	defer f.Close()
	lex, err := lexicon.Load(f)
	if err != nil {
		return nil, fmt.Errorf("lexicon file %s: %w", filename, err)
	}
	tracer().Infof("Loaded lexicon %q with %d words", lex.Name, len(lex.Words()))
	return lex, nil
}
