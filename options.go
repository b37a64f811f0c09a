package mdrsort

import (
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/woozymasta/pathrules"
)

// Options holds configuration for the Pipeline and Splitter.
type Options struct {
	logger      zerolog.Logger
	retry       RetryPolicy
	sleep       func(time.Duration)
	readFile    ReadFileFunc
	encoding    TextEncoding
	export      bool
	rules       []Rule
	ignoreRules []pathrules.Rule
}

// defaultIgnoreRules skips Office owner files ("~$Book.xlsx"), which carry a
// workbook extension but no workbook.
var defaultIgnoreRules = []pathrules.Rule{
	{Action: pathrules.ActionExclude, Pattern: "~$*"},
}

func defaultOptions() *Options {
	return &Options{
		logger:      zerolog.Nop(),
		retry:       DefaultRetryPolicy,
		sleep:       time.Sleep,
		readFile:    os.ReadFile,
		encoding:    EncodingUTF8,
		export:      true,
		ignoreRules: defaultIgnoreRules,
	}
}

func buildOptions(opts []Option) *Options {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// Option configures the Pipeline.
type Option func(*Options)

// WithLogger sets the logger receiving per-file events (default: no-op).
func WithLogger(l zerolog.Logger) Option {
	return func(o *Options) { o.logger = l }
}

// WithRetryPolicy sets the lock-wait policy used when splitting (default: 3 attempts, 2s apart).
func WithRetryPolicy(p RetryPolicy) Option {
	return func(o *Options) { o.retry = p }
}

// WithSleep replaces time.Sleep between retry attempts.
func WithSleep(fn func(time.Duration)) Option {
	return func(o *Options) { o.sleep = fn }
}

// WithReadFile replaces os.ReadFile for loading tabular files.
func WithReadFile(fn ReadFileFunc) Option {
	return func(o *Options) { o.readFile = fn }
}

// WithEncoding sets the character encoding of exported text (default: utf-8).
func WithEncoding(enc TextEncoding) Option {
	return func(o *Options) { o.encoding = enc }
}

// WithExport controls whether moved files are exported to text (default: true).
func WithExport(export bool) Option {
	return func(o *Options) { o.export = export }
}

// WithRules replaces DefaultRules. Every rule must target MDR1..MDR4.
func WithRules(rules []Rule) Option {
	return func(o *Options) { o.rules = rules }
}

// WithIgnoreRules adds gitignore-style exclusions applied to the directory
// snapshot, after the built-in extension filter.
func WithIgnoreRules(rules []pathrules.Rule) Option {
	return func(o *Options) { o.ignoreRules = append(o.ignoreRules, rules...) }
}
