package main

import (
	"fmt"
	"io"
	stdslog "log/slog"

	"github.com/sirupsen/logrus"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/unkn0wn-root/hexcodec"
	hexlogrus "github.com/unkn0wn-root/hexcodec/log/logrus"
	hexslog "github.com/unkn0wn-root/hexcodec/log/slog"
	hexzap "github.com/unkn0wn-root/hexcodec/log/zap"
)

// newLogger builds the configured backend writing to w. The returned func
// flushes buffered output.
func newLogger(cfg config, w io.Writer) (hexcodec.Logger, func(), error) {
	switch cfg.Logger {
	case "zap":
		lvl, err := zapcore.ParseLevel(cfg.Level)
		if err != nil {
			return nil, nil, err
		}
		enc := zap.NewDevelopmentEncoderConfig()
		enc.TimeKey = ""
		core := zapcore.NewCore(zapcore.NewConsoleEncoder(enc), zapcore.AddSync(w), lvl)
		l := zap.New(core).Named("hexc")
		return hexzap.New(l), func() { _ = l.Sync() }, nil
	case "logrus":
		lvl, err := logrus.ParseLevel(cfg.Level)
		if err != nil {
			return nil, nil, err
		}
		l := logrus.New()
		l.SetOutput(w)
		l.SetLevel(lvl)
		l.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
		return hexlogrus.New(l), func() {}, nil
	case "slog":
		var lvl stdslog.Level
		if err := lvl.UnmarshalText([]byte(cfg.Level)); err != nil {
			return nil, nil, err
		}
		h := stdslog.NewTextHandler(w, &stdslog.HandlerOptions{Level: lvl})
		return hexslog.New(stdslog.New(h)), func() {}, nil
	default:
		return nil, nil, fmt.Errorf("unknown logger %q", cfg.Logger)
	}
}
