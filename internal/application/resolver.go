package app

import (
	"strconv"
	"strings"

	fuzzy "github.com/paul-mannino/go-fuzzywuzzy"

	"builds-bot/internal/domain/entity"
	"builds-bot/internal/domain/port"
)

// Scorer оценивает похожесть двух строк по шкале 0–100.
type Scorer func(a, b string) int

// DefaultThreshold — минимальный проходной балл нечёткого совпадения.
// Ниже — слишком много ложных срабатываний с чужими билдами,
// выше — отвергаются обычные опечатки.
const DefaultThreshold = 70

// TokenSortScorer — оценка, нечувствительная к порядку слов:
// "ranked ahri" и "ahri ranked" получают одинаковый балл.
func TokenSortScorer(a, b string) int {
	return fuzzy.TokenSortRatio(a, b)
}

// ResolverService разрешает произвольный пользовательский ввод
// в ровно одного персонажа каталога. Сервис чистый: без состояния
// и побочных эффектов, безопасен для конкурентных вызовов.
type ResolverService struct {
	catalog   port.HeroCatalog
	aliases   port.AliasTable
	scorer    Scorer
	threshold int
}

// NewResolverService создаёт резолвер. Нулевые scorer и threshold
// заменяются значениями по умолчанию.
func NewResolverService(catalog port.HeroCatalog, aliases port.AliasTable, scorer Scorer, threshold int) *ResolverService {
	if scorer == nil {
		scorer = TokenSortScorer
	}
	if threshold <= 0 {
		threshold = DefaultThreshold
	}
	return &ResolverService{
		catalog:   catalog,
		aliases:   aliases,
		scorer:    scorer,
		threshold: threshold,
	}
}

// Resolve применяет стратегии сопоставления в строгом порядке:
// номер в списке, точное имя, псевдоним, нечёткое совпадение.
// Первая сработавшая стратегия решает исход: номер вне диапазона
// не уходит в нечёткий поиск, а точное имя всегда побеждает догадки.
func (s *ResolverService) Resolve(raw string) (*entity.ResolvedHero, error) {
	input := strings.TrimSpace(raw)
	if input == "" {
		return nil, &entity.ResolutionError{Reason: entity.FailureEmptyInput}
	}

	names := s.catalog.Names()

	// Номер позиции в списке, нумерация с единицы.
	if n, err := strconv.Atoi(input); err == nil {
		if n < 1 || n > len(names) {
			return nil, &entity.ResolutionError{Reason: entity.FailureOutOfRange}
		}
		return s.resolved(names[n-1]), nil
	}

	// Точное каноническое имя, с учётом регистра.
	if _, ok := s.catalog.Get(input); ok {
		return s.resolved(input), nil
	}

	// Псевдоним, без учёта регистра.
	if name, ok := s.aliases.Resolve(input); ok {
		return s.resolved(name), nil
	}

	// Нечёткое совпадение. При равных баллах побеждает персонаж,
	// который идёт раньше в порядке загрузки.
	best, bestScore := "", -1
	query := strings.ToLower(input)
	for _, name := range names {
		if score := s.scorer(query, strings.ToLower(name)); score > bestScore {
			best, bestScore = name, score
		}
	}
	if bestScore < s.threshold {
		return nil, &entity.ResolutionError{Reason: entity.FailureNotFound, BestScore: bestScore}
	}
	return s.resolved(best), nil
}

func (s *ResolverService) resolved(name string) *entity.ResolvedHero {
	rec, _ := s.catalog.Get(name)
	return &entity.ResolvedHero{Name: name, Record: rec}
}
