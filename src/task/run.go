package task

import (
	"github.com/sirupsen/logrus"
	"github.com/streadway/amqp"

	"github.com/seventv/LogoAnimator/src/global"
	"github.com/seventv/LogoAnimator/src/job"
)

type RmqResult struct {
	JobID   string     `json:"job_id"`
	Success bool       `json:"success"`
	Files   []job.File `json:"files"`
	Error   string     `json:"error"`
}

// Run executes j to completion, forwarding every task event and the final result to rmq when
// it is configured. The returned error is the task's failure, if any.
func Run(ctx global.Context, j job.Job) error {
	ctx.AddTask(1)
	defer ctx.DoneTask()

	task := New(ctx, j)

	logrus.Info("starting new task: ", j.ID)

	task.Start(ctx)

	for event := range task.Events() {
		logrus.WithField("job", j.ID).Debug("task event: ", event.Type)

		body, err := json.Marshal(event)
		if err != nil {
			logrus.Warn("failed to marshal update: ", err)
			continue
		}
		publish(ctx, ctx.Config().Rmq.UpdateQueueName, amqp.Transient, body)
	}
	<-task.Done()

	errStr := ""
	if err := task.Failed(); err != nil {
		errStr = err.Error()
	}

	resp, err := json.Marshal(RmqResult{
		JobID:   j.ID,
		Success: task.Failed() == nil,
		Error:   errStr,
		Files:   task.Files(),
	})
	if err != nil {
		logrus.Error("failed to marshal result: ", err)
	} else {
		publish(ctx, ctx.Config().Rmq.ResultQueueName, amqp.Persistent, resp)
	}

	logrus.Info("finished task: ", j.ID)

	return task.Failed()
}

func publish(ctx global.Context, queue string, deliveryMode uint8, body []byte) {
	if ctx.Instances().Rmq == nil {
		return
	}

	if err := ctx.Instances().Rmq.Publish(queue, "application/json", deliveryMode, body); err != nil {
		logrus.Warnf("failed to publish to %s: %s", queue, err)
	}
}
