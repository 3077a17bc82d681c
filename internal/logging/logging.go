package logging

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// L is the process-wide sugared logger. Init must run before anything logs;
// until then L is a no-op so tests don't have to set up files.
var L = zap.NewNop().Sugar()

// Init wires zap to a rolling file. The client runs windowed, so stdout is
// useless; a capped file keeps diagnostics without growing forever.
func Init(filePath string) error {
	lj := &lumberjack.Logger{
		Filename:   filePath,
		MaxSize:    10, // MB
		MaxBackups: 3,
		MaxAge:     7, // days
	}

	encCfg := zapcore.EncoderConfig{
		TimeKey:      "ts",
		LevelKey:     "level",
		CallerKey:    "caller",
		MessageKey:   "msg",
		LineEnding:   zapcore.DefaultLineEnding,
		EncodeLevel:  zapcore.CapitalLevelEncoder,
		EncodeTime:   zapcore.ISO8601TimeEncoder,
		EncodeCaller: zapcore.ShortCallerEncoder,
	}
	core := zapcore.NewCore(zapcore.NewConsoleEncoder(encCfg), zapcore.AddSync(lj), zapcore.DebugLevel)
	L = zap.New(core, zap.AddCaller()).Sugar()
	return nil
}

// Sync flushes buffered entries; call on shutdown.
func Sync() {
	if L != nil {
		_ = L.Sync()
	}
}
