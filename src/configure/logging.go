package configure

import (
	"io"

	"github.com/sirupsen/logrus"
)

func initLogging(level string, disabled bool) {
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp: true,
	})

	if disabled {
		logrus.SetOutput(io.Discard)
		return
	}

	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		logrus.Warnf("unknown log level %q, using info", level)
		lvl = logrus.InfoLevel
	}

	logrus.SetLevel(lvl)
}
