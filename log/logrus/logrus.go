package logrus

import (
	"github.com/sirupsen/logrus"
	"github.com/unkn0wn-root/hexcodec"
)

var _ hexcodec.Logger = Logger{}

// Logger adapts a *logrus.Entry. Error values are attached with WithError
// when stored under "err".
type Logger struct{ E *logrus.Entry }

func New(l *logrus.Logger) Logger { return Logger{E: logrus.NewEntry(l)} }

func (l Logger) Debug(msg string, f hexcodec.Fields) { l.with(f).Debug(msg) }
func (l Logger) Info(msg string, f hexcodec.Fields)  { l.with(f).Info(msg) }
func (l Logger) Warn(msg string, f hexcodec.Fields)  { l.with(f).Warn(msg) }
func (l Logger) Error(msg string, f hexcodec.Fields) { l.with(f).Error(msg) }

func (l Logger) with(f hexcodec.Fields) *logrus.Entry {
	if len(f) == 0 {
		return l.E
	}
	out := make(logrus.Fields, len(f))
	for k, v := range f {
		if err, ok := v.(error); ok && k == "err" {
			out[logrus.ErrorKey] = err
			continue
		}
		out[k] = v
	}
	return l.E.WithFields(out)
}
