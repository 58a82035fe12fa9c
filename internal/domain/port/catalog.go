package port

import "builds-bot/internal/domain/entity"

// HeroCatalog — каталог персонажей, загруженный при старте процесса
// и неизменяемый дальше. Безопасен для конкурентного чтения.
type HeroCatalog interface {
	// Get возвращает запись по каноническому имени (с учётом регистра).
	Get(name string) (entity.BuildRecord, bool)

	// Names возвращает канонические имена в порядке загрузки источника.
	// Этот порядок задаёт нумерацию в списке персонажей.
	Names() []string
}

// AliasTable — таблица альтернативных написаний имён персонажей.
type AliasTable interface {
	// Resolve сопоставляет токен каноническому имени без учёта регистра.
	Resolve(token string) (string, bool)
}
