package internal

import (
	"context"
	"encoding/json"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/service/sqs"
	"github.com/aws/aws-sdk-go/service/sqs/sqsiface"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// Enqueuer publishes JSON messages to SQS queues looked up by name. Queue
// URLs are cached after the first lookup.
type Enqueuer struct {
	client    sqsiface.SQSAPI
	log       *logrus.Entry
	queueURLs map[string]string
}

func (e *Enqueuer) SendMsg(ctx context.Context, msg interface{}, queue string) error {
	msgBytes, err := json.Marshal(msg)
	if err != nil {
		return err
	}

	queueURL, err := e.queueURL(ctx, queue)
	if err != nil {
		return err
	}

	out, err := e.client.SendMessageWithContext(ctx, &sqs.SendMessageInput{
		MessageBody: aws.String(string(msgBytes)),
		QueueUrl:    aws.String(queueURL),
	})
	if err != nil {
		return errors.Wrapf(err, "sending message to %v", queue)
	}

	e.log.WithFields(logrus.Fields{
		"queue":      queue,
		"message_id": aws.StringValue(out.MessageId),
	}).Debug("message sent")
	return nil
}

func (e *Enqueuer) queueURL(ctx context.Context, queue string) (string, error) {
	if url, ok := e.queueURLs[queue]; ok {
		return url, nil
	}

	out, err := e.client.GetQueueUrlWithContext(ctx, &sqs.GetQueueUrlInput{
		QueueName: aws.String(queue),
	})
	if err != nil {
		return "", errors.Wrapf(err, "looking up queue %v", queue)
	}

	url := aws.StringValue(out.QueueUrl)
	e.queueURLs[queue] = url
	return url, nil
}

func NewEnqueuer(client sqsiface.SQSAPI, log *logrus.Entry) *Enqueuer {
	return &Enqueuer{
		client:    client,
		log:       log,
		queueURLs: map[string]string{},
	}
}
