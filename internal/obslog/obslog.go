// Package obslog configures the structured logger used by the CLI.
// The core packages (regex, automata, lexer, generator) never log —
// they return errors and let callers decide what to report.
package obslog

import "github.com/sirupsen/logrus"

// New returns a logrus.Logger with lexgen's CLI formatting: a plain
// text formatter with timestamps, at Debug level when verbose is set
// and Info level otherwise.
func New(verbose bool) *logrus.Logger {
	log := logrus.New()
	log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	if verbose {
		log.SetLevel(logrus.DebugLevel)
	} else {
		log.SetLevel(logrus.InfoLevel)
	}
	return log
}
