package rmq

import (
	"time"

	"github.com/sirupsen/logrus"
	"github.com/streadway/amqp"

	"github.com/seventv/LogoAnimator/src/global"
)

type RmqInstance struct {
	rmq   *amqp.Connection
	chRmq *amqp.Channel
}

func New(ctx global.Context) global.Rmq {
	rmq, err := amqp.Dial(ctx.Config().Rmq.ServerURL)
	if err != nil {
		logrus.Fatal("failed to connect to rmq: ", err)
	}

	chRmq, err := rmq.Channel()
	if err != nil {
		logrus.Fatal("failed to connect to rmq: ", err)
	}

	for _, queue := range []string{
		ctx.Config().Rmq.UpdateQueueName,
		ctx.Config().Rmq.ResultQueueName,
	} {
		_, err = chRmq.QueueDeclare(
			queue, // queue name
			true,  // durable
			false, // auto delete
			false, // exclusive
			false, // no wait
			nil,   // arguments
		)
		if err != nil {
			logrus.Fatalf("failed to declare queue %s: %s", queue, err)
		}
	}

	return &RmqInstance{
		rmq:   rmq,
		chRmq: chRmq,
	}
}

func (r *RmqInstance) Publish(queue string, contentType string, deliveryMode uint8, msg []byte) error {
	return r.chRmq.Publish(
		"",    // exchange
		queue, // queue name
		false, // mandatory
		false, // immediate
		amqp.Publishing{
			ContentType:  contentType,
			DeliveryMode: deliveryMode,
			Timestamp:    time.Now(),
			Body:         msg,
		},
	)
}

func (r *RmqInstance) Shutdown() {
	_ = r.chRmq.Close()
	_ = r.rmq.Close()
}
