package zap

import (
	"sort"

	"github.com/unkn0wn-root/hexcodec"
	"go.uber.org/zap"
)

var _ hexcodec.Logger = Logger{}

// Logger adapts a *zap.Logger. Fields are emitted in key order.
type Logger struct{ L *zap.Logger }

func New(l *zap.Logger) Logger { return Logger{L: l} }

func (z Logger) Debug(msg string, f hexcodec.Fields) { z.L.Debug(msg, fields(f)...) }
func (z Logger) Info(msg string, f hexcodec.Fields)  { z.L.Info(msg, fields(f)...) }
func (z Logger) Warn(msg string, f hexcodec.Fields)  { z.L.Warn(msg, fields(f)...) }
func (z Logger) Error(msg string, f hexcodec.Fields) { z.L.Error(msg, fields(f)...) }

func fields(f hexcodec.Fields) []zap.Field {
	if len(f) == 0 {
		return nil
	}
	keys := make([]string, 0, len(f))
	for k := range f {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	out := make([]zap.Field, 0, len(f))
	for _, k := range keys {
		if err, ok := f[k].(error); ok {
			out = append(out, zap.NamedError(k, err))
			continue
		}
		out = append(out, zap.Any(k, f[k]))
	}
	return out
}
