package notifier

import "errors"

var (
	// ErrConnect возвращается при ошибке подключения к брокеру
	ErrConnect = errors.New("notifier client: failed to connect")

	// ErrPublish возвращается при ошибке публикации уведомления.
	// Не фатальна для бронирования: резервация к этому моменту уже закоммичена.
	ErrPublish = errors.New("notifier client: failed to publish")
)
