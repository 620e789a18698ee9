package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"pkt.systems/version"

	"pkt.systems/mdpdf"
	"pkt.systems/mdpdf/pdf"
)

const (
	defaultInput     = "masterclass.md"
	defaultLogLevel  = "info"
	defaultLogFormat = "console"
	configName       = "mdpdf"
	envPrefix        = "MDPDF"
)

// settings is the resolved configuration after merging flags, environment
// and the optional config file.
type settings struct {
	Output         string
	PageSize       string
	RegularFont    string
	BoldFont       string
	ItalicFont     string
	BoldItalicFont string
	Title          string
	Author         string
	Subject        string
	FrontMatter    bool
	Outline        string
	LogLevel       string
	LogFormat      string
	CreationDate   time.Time
}

func newFlagSet(stderr io.Writer) *pflag.FlagSet {
	defaults := pdf.DefaultConfig()
	flags := pflag.NewFlagSet("mdpdf", pflag.ContinueOnError)
	flags.SetOutput(stderr)
	flags.StringP("output", "o", "", "Output PDF path (default: input with .pdf extension, - for stdout)")
	flags.String("page-size", defaults.PageSize, "Page size: A3, A4, A5, Letter or Legal")
	flags.String("regular-font", "", "TTF path for regular font")
	flags.String("bold-font", "", "TTF path for bold font")
	flags.String("italic-font", "", "TTF path for italic font")
	flags.String("bold-italic-font", "", "TTF path for bold-italic font")
	flags.String("title", "", "Document title (default: first # heading)")
	flags.String("author", "", "Document author")
	flags.String("subject", "", "Document subject")
	flags.Bool("front-matter", false, "Read title/author/subject from a leading YAML or TOML block")
	flags.String("outline", "", "Print the block outline instead of rendering: text|yaml")
	flags.String("log-level", defaultLogLevel, "Log level: trace|debug|info|warn|error")
	flags.String("log-format", defaultLogFormat, "Log format: console|json|pretty")
	flags.String("config", "", "Config file (default: ./mdpdf.yaml or ~/.config/mdpdf/mdpdf.yaml)")
	flags.Bool("version", false, "Print version and exit")

	flags.SetInterspersed(true)
	flags.Usage = func() {
		fmt.Fprintln(stderr, version.Module(), version.Current())
		fmt.Fprintf(stderr, "Usage: mdpdf [flags] [input.md]\n")
		fmt.Fprintf(stderr, "\nIf no input is provided, %s is converted.\n", defaultInput)
		fmt.Fprintln(stderr, "\nFlags:")
		flags.PrintDefaults()
	}
	return flags
}

// loadSettings merges parsed flags with MDPDF_* environment variables and
// the config file. Explicit flags win over the environment, which wins over
// the file.
func loadSettings(flags *pflag.FlagSet) (settings, error) {
	v := viper.New()
	if err := v.BindPFlags(flags); err != nil {
		return settings{}, fmt.Errorf("bind flags: %w", err)
	}
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if cfgFile := v.GetString("config"); cfgFile != "" {
		v.SetConfigFile(normalizePath(cfgFile))
		if err := v.ReadInConfig(); err != nil {
			return settings{}, fmt.Errorf("read config %s: %w", cfgFile, err)
		}
	} else {
		v.SetConfigName(configName)
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".config", configName))
		}
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return settings{}, fmt.Errorf("read config: %w", err)
			}
		}
	}

	s := settings{
		Output:         strings.TrimSpace(v.GetString("output")),
		PageSize:       v.GetString("page-size"),
		RegularFont:    fontPath(v.GetString("regular-font")),
		BoldFont:       fontPath(v.GetString("bold-font")),
		ItalicFont:     fontPath(v.GetString("italic-font")),
		BoldItalicFont: fontPath(v.GetString("bold-italic-font")),
		Title:          v.GetString("title"),
		Author:         v.GetString("author"),
		Subject:        v.GetString("subject"),
		FrontMatter:    v.GetBool("front-matter"),
		Outline:        strings.ToLower(strings.TrimSpace(v.GetString("outline"))),
		LogLevel:       v.GetString("log-level"),
		LogFormat:      v.GetString("log-format"),
	}
	switch s.Outline {
	case "", mdpdf.OutlineText, mdpdf.OutlineYAML:
	default:
		return settings{}, fmt.Errorf("invalid --outline %q: expected text|yaml", s.Outline)
	}
	created, err := sourceDateEpoch()
	if err != nil {
		return settings{}, err
	}
	s.CreationDate = created
	return s, nil
}

// sourceDateEpoch honours SOURCE_DATE_EPOCH for reproducible output.
func sourceDateEpoch() (time.Time, error) {
	raw := strings.TrimSpace(os.Getenv("SOURCE_DATE_EPOCH"))
	if raw == "" {
		return time.Time{}, nil
	}
	secs, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid SOURCE_DATE_EPOCH %q: %w", raw, err)
	}
	return time.Unix(secs, 0).UTC(), nil
}

func (s settings) pdfConfig() pdf.Config {
	return pdf.Config{
		PageSize:       s.PageSize,
		RegularFont:    s.RegularFont,
		BoldFont:       s.BoldFont,
		ItalicFont:     s.ItalicFont,
		BoldItalicFont: s.BoldItalicFont,
		CreationDate:   s.CreationDate,
		Title:          s.Title,
		Author:         s.Author,
		Subject:        s.Subject,
	}
}

func (s settings) translateOptions() []mdpdf.TranslateOption {
	return []mdpdf.TranslateOption{mdpdf.WithFrontMatter(s.FrontMatter)}
}

// outputPath returns the destination for input: the explicit output, or the
// input path with its extension replaced by .pdf.
func outputPath(input, output string) string {
	if output == "-" {
		return output
	}
	if output != "" {
		return normalizePath(output)
	}
	return strings.TrimSuffix(input, filepath.Ext(input)) + ".pdf"
}

func fontPath(path string) string {
	path = strings.TrimSpace(path)
	if path == "" {
		return ""
	}
	return normalizePath(path)
}

func normalizePath(path string) string {
	if strings.HasPrefix(path, "~/") || path == "~" {
		home, err := os.UserHomeDir()
		if err == nil {
			if path == "~" {
				path = home
			} else {
				path = filepath.Join(home, path[2:])
			}
		}
	}
	abs, err := filepath.Abs(path)
	if err == nil {
		return abs
	}
	return path
}
