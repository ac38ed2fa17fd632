package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/bugsnag/panicwrap"
	"github.com/sirupsen/logrus"

	"github.com/seventv/LogoAnimator/src/aws"
	"github.com/seventv/LogoAnimator/src/configure"
	"github.com/seventv/LogoAnimator/src/global"
	"github.com/seventv/LogoAnimator/src/job"
	"github.com/seventv/LogoAnimator/src/rmq"
	"github.com/seventv/LogoAnimator/src/task"
)

var (
	Version = "development"
	Unix    = ""
	Time    = "unknown"
	User    = "unknown"
)

func init() {
	if i, err := strconv.Atoi(Unix); err == nil {
		Time = time.Unix(int64(i), 0).Format(time.RFC3339)
	}
}

func main() {
	config := configure.New()

	exitStatus, err := panicwrap.BasicWrap(func(s string) {
		logrus.Error(s)
	})
	if err != nil {
		logrus.Error("failed to setup panic handler: ", err)
		os.Exit(2)
	}

	if exitStatus >= 0 {
		os.Exit(exitStatus)
	}

	if !config.NoHeader {
		logrus.Info("Logo Animator")
		logrus.Infof("Version: %s", Version)
		logrus.Infof("build.Time: %s", Time)
		logrus.Infof("build.User: %s", User)
	}

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)

	c, cancel := context.WithCancel(context.Background())

	ctx := global.New(c, config)

	if ctx.Config().Rmq.ServerURL != "" {
		ctx.Instances().Rmq = rmq.New(ctx)
	}
	if ctx.Config().Aws.Region != "" {
		ctx.Instances().AwsS3 = aws.NewS3(ctx)
	}

	go func() {
		<-sig
		logrus.Info("shutting down")
		cancel()

		select {
		case <-time.After(time.Minute):
		case <-sig:
		}
		logrus.Fatal("force shutdown")
	}()

	code := run(ctx)
	cancel()
	os.Exit(code)
}

// run generates the animation and returns the process exit code. The rmq connection is
// closed before returning on every path so the final result is flushed.
func run(ctx global.Context) int {
	defer func() {
		if ctx.Instances().Rmq != nil {
			ctx.Instances().Rmq.Shutdown()
		}
	}()

	j, err := job.New(ctx)
	if err != nil {
		logrus.Error("failed to create job: ", err)
		return 1
	}

	if err := task.Run(ctx, j); err != nil {
		// a missing icon is reported, not treated as a crash.
		if errors.Is(err, task.ErrSourceNotFound) {
			logrus.Errorf("Error: %s not found.", j.Source)
			return 0
		}

		logrus.Error("failed to generate animation: ", err)
		return 1
	}

	logrus.Infof("GIF saved to %s", j.Destination)
	return 0
}
