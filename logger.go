package pencil

import (
	"github.com/sirupsen/logrus"
)

var packageLogger logrus.FieldLogger = newDefaultLogger()

func newDefaultLogger() logrus.FieldLogger {
	l := logrus.New()
	l.SetLevel(logrus.WarnLevel)
	return l
}

// SetLogger replaces the logger used by pencil. By default only warnings and
// errors are written to stderr. Pass nil to restore the default.
//
// Debug level reports redraws and configuration changes, trace level reports
// every cell dropped outside the surface.
//
// SetLogger must not be called while an engine is drawing.
func SetLogger(l logrus.FieldLogger) {
	if l == nil {
		l = newDefaultLogger()
	}
	packageLogger = l
}

func logger() logrus.FieldLogger {
	return packageLogger
}
