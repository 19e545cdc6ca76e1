package sync

import "github.com/iudanet/gophsync/internal/models"

//go:generate moq -out monitor_mock.go . Monitor

// Monitor источник состояния сети для координатора
type Monitor interface {
	IsOnline() bool
	Subscribe() (<-chan models.ConnectivityState, func())
	// ReportUnreachable сообщает о транспортной ошибке при обращении к серверу
	ReportUnreachable()
}
