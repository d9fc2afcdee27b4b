package notifier

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Client публикует уведомления о резервациях в очередь RabbitMQ.
// Доставка клиенту (письмо, push) — забота консьюмера очереди.
//
// Публикация выполняется строго после коммита транзакции бронирования
// и никогда не влияет на её результат: любая ошибка здесь логируется
// и возвращается вызывающему только как признак "не уведомлено".
type Client struct {
	conn    *amqp.Connection
	channel *amqp.Channel
	queue   string
	timeout time.Duration
	log     Logger
}

// NewClient подключается к RabbitMQ и объявляет durable-очередь уведомлений
func NewClient(url, queue string, timeout time.Duration, log Logger) (*Client, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("%w: dial %s: %v", ErrConnect, url, err)
	}

	channel, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("%w: open channel: %v", ErrConnect, err)
	}

	// Идемпотентно: очередь переживает рестарты брокера
	if _, err := channel.QueueDeclare(queue, true, false, false, false, nil); err != nil {
		_ = channel.Close()
		_ = conn.Close()
		return nil, fmt.Errorf("%w: declare queue %s: %v", ErrConnect, queue, err)
	}

	return &Client{
		conn:    conn,
		channel: channel,
		queue:   queue,
		timeout: timeout,
		log:     log,
	}, nil
}

// Publish отправляет сводку резервации в очередь уведомлений
func (c *Client) Publish(ctx context.Context, summary *ReservationSummary) error {
	body, err := json.Marshal(summary)
	if err != nil {
		return fmt.Errorf("%w: marshal summary: %v", ErrPublish, err)
	}

	pubCtx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	err = c.channel.PublishWithContext(pubCtx,
		"",      // default exchange
		c.queue, // routing key = имя очереди
		false,   // mandatory
		false,   // immediate
		amqp.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp.Persistent,
			Timestamp:    time.Now().UTC(),
			Body:         body,
		},
	)
	if err != nil {
		return fmt.Errorf("%w: reservation_id=%d: %v", ErrPublish, summary.ReservationID, err)
	}

	c.log.Info("Notifier: published summary for reservation_id=%d to queue=%s", summary.ReservationID, c.queue)
	return nil
}

// Close закрывает канал и соединение с брокером
func (c *Client) Close() error {
	if err := c.channel.Close(); err != nil {
		_ = c.conn.Close()
		return err
	}
	return c.conn.Close()
}

// Noop заглушка нотификатора для конфигураций с выключенными уведомлениями
type Noop struct{}

// NewNoop создает нотификатор, который ничего не отправляет
func NewNoop() *Noop {
	return &Noop{}
}

// Publish ничего не делает
func (n *Noop) Publish(_ context.Context, _ *ReservationSummary) error {
	return nil
}
