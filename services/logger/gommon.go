package logsvc

import (
	glog "github.com/labstack/gommon/log"

	"github.com/jmnolasco/pasedelista/core"
)

// GommonLogger is the core.Logger used by the app; the diagnostic channel
// for storage corruption and lifecycle messages.
type GommonLogger struct {
	log *glog.Logger
}

var _ core.Logger = (*GommonLogger)(nil)

func NewGommonLogger() *GommonLogger {
	l := glog.New(core.Conf.GetString("appName"))
	l.SetHeader("${time_rfc3339} ${level} ${prefix}")
	if core.Conf.GetBool("debug") {
		l.SetLevel(glog.DEBUG)
	} else {
		l.SetLevel(glog.INFO)
	}
	return &GommonLogger{log: l}
}

func (l *GommonLogger) Debug(format string, args ...interface{}) { l.log.Debugf(format, args...) }
func (l *GommonLogger) Info(format string, args ...interface{})  { l.log.Infof(format, args...) }
func (l *GommonLogger) Warn(format string, args ...interface{})  { l.log.Warnf(format, args...) }
func (l *GommonLogger) Error(format string, args ...interface{}) { l.log.Errorf(format, args...) }
func (l *GommonLogger) Fatal(format string, args ...interface{}) { l.log.Fatalf(format, args...) }
