package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"builds-bot/internal/domain/port"
)

// defaultAliases — встроенные альтернативные написания имён персонажей,
// в основном русские. Раньше эта таблица жила прямо в коде обработчиков.
var defaultAliases = map[string]string{
	"пудж":          "Pudge",
	"мясник":        "Pudge",
	"инвокер":       "Invoker",
	"воид":          "Faceless Void",
	"фейслес":       "Faceless Void",
	"снайпер":       "Sniper",
	"джаггернаут":   "Juggernaut",
	"джагга":        "Juggernaut",
	"кристалка":     "Crystal Maiden",
	"цм":            "Crystal Maiden",
	"cm":            "Crystal Maiden",
	"акс":           "Axe",
	"лион":          "Lion",
	"виндрейнджер":  "Windranger",
	"вр":            "Windranger",
	"wr":            "Windranger",
}

// StaticAliasTable — неизменяемая таблица псевдонимов.
// Токены хранятся в нижнем регистре, поиск регистронезависимый.
type StaticAliasTable struct {
	byToken map[string]string
}

// NewAliasTable строит таблицу из пар токен → каноническое имя.
// Псевдоним, указывающий на отсутствующего в каталоге персонажа, —
// ошибка данных, загрузка прерывается.
func NewAliasTable(pairs map[string]string, catalog port.HeroCatalog) (*StaticAliasTable, error) {
	t := &StaticAliasTable{byToken: make(map[string]string, len(pairs))}
	for token, canonical := range pairs {
		if strings.TrimSpace(token) == "" {
			return nil, fmt.Errorf("empty alias for hero %q", canonical)
		}
		if _, ok := catalog.Get(canonical); !ok {
			return nil, fmt.Errorf("alias %q points to unknown hero %q", token, canonical)
		}
		t.byToken[strings.ToLower(token)] = canonical
	}
	return t, nil
}

// LoadAliases читает таблицу из JSON-файла (объект токен → имя).
// Пустой путь — берётся встроенная таблица.
func LoadAliases(path string, catalog port.HeroCatalog) (*StaticAliasTable, error) {
	pairs := defaultAliases
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("open aliases: %w", err)
		}
		pairs = nil
		if err := json.Unmarshal(data, &pairs); err != nil {
			return nil, fmt.Errorf("parse aliases: %w", err)
		}
	}
	return NewAliasTable(pairs, catalog)
}

// Resolve сопоставляет токен каноническому имени без учёта регистра.
func (t *StaticAliasTable) Resolve(token string) (string, bool) {
	name, ok := t.byToken[strings.ToLower(strings.TrimSpace(token))]
	return name, ok
}

// Проверка реализации интерфейса
var _ port.AliasTable = (*StaticAliasTable)(nil)
