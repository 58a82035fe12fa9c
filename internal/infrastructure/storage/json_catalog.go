package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"builds-bot/internal/domain/entity"
	"builds-bot/internal/domain/port"
)

// JSONCatalog — каталог персонажей из JSON-файла.
// Порядок ключей исходного объекта сохраняется: он задаёт нумерацию
// в списке персонажей и в числовом разрешении ввода.
type JSONCatalog struct {
	records map[string]entity.BuildRecord
	names   []string
}

// LoadCatalog читает каталог из файла. Отсутствующий, битый или пустой
// каталог — фатальная ошибка старта, деградированного режима нет.
func LoadCatalog(path string) (*JSONCatalog, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open catalog: %w", err)
	}
	defer f.Close()

	return ParseCatalog(f)
}

// ParseCatalog разбирает каталог из потока. Объект читается потоковым
// декодером, а не в map: порядок записей должен пережить загрузку.
func ParseCatalog(r io.Reader) (*JSONCatalog, error) {
	dec := json.NewDecoder(r)

	tok, err := dec.Token()
	if err != nil {
		return nil, fmt.Errorf("parse catalog: %w", err)
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return nil, fmt.Errorf("parse catalog: expected object, got %v", tok)
	}

	c := &JSONCatalog{records: make(map[string]entity.BuildRecord)}
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, fmt.Errorf("parse catalog: %w", err)
		}
		name := tok.(string)
		if strings.TrimSpace(name) == "" {
			return nil, errors.New("parse catalog: empty hero name")
		}
		if _, dup := c.records[name]; dup {
			return nil, fmt.Errorf("parse catalog: duplicate hero %q", name)
		}

		var rec entity.BuildRecord
		if err := dec.Decode(&rec); err != nil {
			return nil, fmt.Errorf("parse catalog: hero %q: %w", name, err)
		}
		c.records[name] = rec
		c.names = append(c.names, name)
	}

	if len(c.names) == 0 {
		return nil, errors.New("catalog is empty")
	}
	return c, nil
}

// Get возвращает запись по каноническому имени.
func (c *JSONCatalog) Get(name string) (entity.BuildRecord, bool) {
	rec, ok := c.records[name]
	return rec, ok
}

// Names возвращает канонические имена в порядке загрузки.
func (c *JSONCatalog) Names() []string {
	return c.names
}

// Проверка реализации интерфейса
var _ port.HeroCatalog = (*JSONCatalog)(nil)
