package faq

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/LouYuanbo1/seoulcrawler/internal/domain/entity"
	"github.com/LouYuanbo1/seoulcrawler/internal/infra/crawler/chrome"
	"github.com/LouYuanbo1/seoulcrawler/internal/infra/crawler/wait"
	"github.com/LouYuanbo1/seoulcrawler/param"
	"go.uber.org/zap"
)

type Service struct {
	pass   *param.FaqPass
	clock  wait.Clock
	logger *zap.Logger
}

func InitService(pass *param.FaqPass, clock wait.Clock, logger *zap.Logger) *Service {
	return &Service{pass: pass, clock: clock, logger: logger}
}

type category struct {
	name   string
	script string
}

// Run harvests every page of every category. On a fatal error the entries
// collected so far are returned along with it.
func (s *Service) Run(ctx context.Context, session chrome.Session) (entity.Harvest[entity.FaqEntry], error) {
	var harvest entity.Harvest[entity.FaqEntry]
	if err := session.Navigate(s.pass.URL); err != nil {
		return harvest, fmt.Errorf("navigate %s: %w", s.pass.URL, err)
	}
	if err := s.clock.Sleep(ctx, s.pass.LoadSettle); err != nil {
		return harvest, err
	}

	categories, err := s.categories(session)
	if err != nil {
		return harvest, err
	}
	s.logger.Info("categories found", zap.Int("count", len(categories)))

	for _, c := range categories {
		if err := s.crawlCategory(ctx, session, c, &harvest); err != nil {
			return harvest, err
		}
	}
	return harvest, nil
}

func (s *Service) categories(session chrome.Session) ([]category, error) {
	controls, err := session.QueryAll(s.pass.CategorySelector)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	var out []category
	for i, control := range controls {
		text, err := control.Text()
		if err != nil {
			return nil, fmt.Errorf("category %d text: %w", i, err)
		}
		name := strings.TrimSpace(text)
		if name == "" || slices.Contains(s.pass.ExcludedCategories, name) {
			continue
		}
		script, ok, err := control.Attribute("onclick")
		if err != nil {
			return nil, fmt.Errorf("category %q onclick: %w", name, err)
		}
		if !ok || strings.TrimSpace(script) == "" {
			s.logger.Warn("category has no activation script", zap.String("category", name))
			continue
		}
		out = append(out, category{name: name, script: script})
	}
	return out, nil
}

// crawlCategory walks CategorySelected -> PageLoaded -> ItemsHarvested ->
// next page or done. Only activation and session failures are returned.
func (s *Service) crawlCategory(ctx context.Context, session chrome.Session, c category, harvest *entity.Harvest[entity.FaqEntry]) error {
	log := s.logger.With(zap.String("category", c.name))
	log.Info("crawling category")

	if err := session.ExecuteScript(c.script); err != nil {
		return fmt.Errorf("activate category %q: %w", c.name, err)
	}
	if err := s.clock.Sleep(ctx, s.pass.CategorySettle); err != nil {
		return err
	}

	cursor := entity.NewPaginationCursor()
	for {
		items, err := session.WaitAll(s.pass.ItemSelector, s.pass.ItemTimeout)
		if err != nil {
			if fatal(ctx, err) {
				return err
			}
			log.Warn("page not loaded", zap.Int("page", cursor.Page), zap.Error(err))
			harvest.Skip(entity.Skip{Scope: entity.ScopePage, Category: c.name, Page: cursor.Page, Err: err})
			return nil
		}
		log.Info("page loaded", zap.Int("page", cursor.Page), zap.Int("items", len(items)))

		if err := s.harvestPage(ctx, c.name, cursor.Page, items, harvest); err != nil {
			return err
		}

		next, err := s.nextPage(session)
		if err != nil {
			if fatal(ctx, err) {
				return err
			}
			log.Info("no next page", zap.Int("page", cursor.Page), zap.Error(err))
			return nil
		}
		if next == nil {
			log.Info("category done", zap.Int("pages", cursor.Page))
			return nil
		}
		cursor.HasNext = true
		if err := next.Click(); err != nil {
			if fatal(ctx, err) {
				return err
			}
			log.Warn("next page click failed", zap.Int("page", cursor.Page), zap.Error(err))
			return nil
		}
		if err := s.clock.Sleep(ctx, s.pass.PageSettle); err != nil {
			return err
		}
		cursor.Advance()
	}
}

func (s *Service) nextPage(session chrome.Session) (chrome.Element, error) {
	controls, err := session.QueryAll(s.pass.PagingSelector)
	if err != nil {
		return nil, err
	}
	return NextControl(controls, s.pass.CurrentClass)
}

func (s *Service) harvestPage(ctx context.Context, categoryName string, page int, items []chrome.Element, harvest *entity.Harvest[entity.FaqEntry]) error {
	for i, item := range items {
		entry, err := s.harvestItem(ctx, categoryName, item)
		if err == nil {
			harvest.Add(entry)
			continue
		}
		if fatal(ctx, err) {
			return err
		}
		s.logger.Warn("item skipped",
			zap.String("category", categoryName),
			zap.Int("page", page),
			zap.Int("item", i),
			zap.String("reason", entity.Reason(err)),
			zap.Error(err))
		harvest.Skip(entity.Skip{Scope: entity.ScopeItem, Category: categoryName, Page: page, Index: i, Err: err})
	}
	return nil
}

func (s *Service) harvestItem(ctx context.Context, categoryName string, item chrome.Element) (entity.FaqEntry, error) {
	questionEl, err := chrome.Query(item, s.pass.QuestionSelector)
	if err != nil {
		return entity.FaqEntry{}, fmt.Errorf("question: %w", err)
	}
	question, err := questionEl.Text()
	if err != nil {
		return entity.FaqEntry{}, fmt.Errorf("question text: %w", err)
	}

	if err := item.ScrollIntoView(); err != nil {
		return entity.FaqEntry{}, err
	}
	if err := s.clock.Sleep(ctx, s.pass.ScrollSettle); err != nil {
		return entity.FaqEntry{}, err
	}

	reveal, err := chrome.Query(item, s.pass.RevealSelector)
	if err != nil {
		return entity.FaqEntry{}, fmt.Errorf("reveal control: %w", err)
	}
	if err := reveal.Click(); err != nil {
		return entity.FaqEntry{}, fmt.Errorf("reveal: %w", err)
	}
	if err := s.clock.Sleep(ctx, s.pass.RevealSettle); err != nil {
		return entity.FaqEntry{}, err
	}

	answerEl, err := chrome.Query(item, s.pass.AnswerSelector)
	if err != nil {
		return entity.FaqEntry{}, fmt.Errorf("answer: %w", err)
	}
	answer, err := answerEl.Text()
	if err != nil {
		return entity.FaqEntry{}, fmt.Errorf("answer text: %w", err)
	}

	return entity.FaqEntry{
		Category: categoryName,
		Question: strings.TrimSpace(question),
		Answer:   NormalizeAnswer(answer, s.pass.AnswerPrefix, s.pass.AnswerMarker),
	}, nil
}

func fatal(ctx context.Context, err error) bool {
	return ctx.Err() != nil || errors.Is(err, entity.ErrSessionFailure)
}
