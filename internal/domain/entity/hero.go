package entity

import (
	"encoding/json"
	"errors"
	"strings"
)

// ErrMalformedRecord — запись каталога не соответствует ни одной известной схеме.
var ErrMalformedRecord = errors.New("malformed catalog record")

// BuildRecord — сырая запись персонажа из каталога.
// Исторически записи используют одну из двух схем именования полей:
// длинную (role/items/talents/skill_order/tips) или короткую (r/i/u/s/t).
// Значение поля — строка либо список строк.
type BuildRecord map[string]json.RawMessage

// BuildFields — поля билда, извлечённые в единый вид.
type BuildFields struct {
	Role       string
	Items      string
	Talents    string
	SkillOrder string
	Tips       string
}

// Пары ключей двух схем: длинный и короткий вариант каждого поля.
var fieldKeys = [...][2]string{
	{"role", "r"},
	{"items", "i"},
	{"talents", "u"},
	{"skill_order", "s"},
	{"tips", "t"},
}

// Fields определяет схему записи по наличию ключей и извлекает поля билда.
// Если ни одна схема не заполнена целиком, возвращает ErrMalformedRecord.
func (rec BuildRecord) Fields() (*BuildFields, error) {
	for shape := 0; shape < len(fieldKeys[0]); shape++ {
		if !rec.hasShape(shape) {
			continue
		}
		return rec.extract(shape)
	}
	return nil, ErrMalformedRecord
}

// hasShape проверяет, что все ключи схемы присутствуют в записи.
func (rec BuildRecord) hasShape(shape int) bool {
	for _, keys := range fieldKeys {
		if _, ok := rec[keys[shape]]; !ok {
			return false
		}
	}
	return true
}

func (rec BuildRecord) extract(shape int) (*BuildFields, error) {
	values := make([]string, len(fieldKeys))
	for i, keys := range fieldKeys {
		text, err := fieldText(rec[keys[shape]])
		if err != nil {
			return nil, err
		}
		values[i] = text
	}
	return &BuildFields{
		Role:       values[0],
		Items:      values[1],
		Talents:    values[2],
		SkillOrder: values[3],
		Tips:       values[4],
	}, nil
}

// fieldText декодирует значение поля: строка берётся как есть,
// список строк склеивается через перенос строки.
func fieldText(raw json.RawMessage) (string, error) {
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s, nil
	}
	var list []string
	if err := json.Unmarshal(raw, &list); err != nil {
		return "", ErrMalformedRecord
	}
	return strings.Join(list, "\n"), nil
}

// ResolvedHero — результат успешного разрешения: каноническое имя
// плюс ссылка на запись каталога. Живёт в пределах одного запроса.
type ResolvedHero struct {
	Name   string
	Record BuildRecord
}
