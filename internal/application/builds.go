package app

import (
	"fmt"
	"strings"

	"builds-bot/internal/domain/entity"
	"builds-bot/internal/domain/port"
)

// BuildService форматирует ответы с билдами и список персонажей.
type BuildService struct {
	catalog port.HeroCatalog
}

func NewBuildService(catalog port.HeroCatalog) *BuildService {
	return &BuildService{catalog: catalog}
}

// Render собирает текст билда по фиксированному шаблону.
// Шаблон — внешний контракт: пользователи читают его как есть,
// порядок секций и подписи менять нельзя.
func (s *BuildService) Render(hero *entity.ResolvedHero) (string, error) {
	f, err := hero.Record.Fields()
	if err != nil {
		return "", fmt.Errorf("hero %q: %w", hero.Name, err)
	}

	return fmt.Sprintf(
		"%s:\n\nRole: %s\n\nItems:\n%s\n\nTalents/Runes:\n%s\nSkill order:\n%s\n\nTips:\n%s",
		hero.Name, f.Role, f.Items, f.Talents, f.SkillOrder, f.Tips,
	), nil
}

// CatalogList возвращает пронумерованный список персонажей.
// Порядок и нумерация те же, что принимает числовое разрешение:
// номер, который видит пользователь, обязан совпасть с номером,
// который поймёт резолвер.
func (s *BuildService) CatalogList() string {
	var b strings.Builder
	for i, name := range s.catalog.Names() {
		fmt.Fprintf(&b, "%d. %s\n", i+1, name)
	}
	return strings.TrimRight(b.String(), "\n")
}
