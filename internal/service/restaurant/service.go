package restaurant

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/LouYuanbo1/seoulcrawler/internal/domain/entity"
	"github.com/LouYuanbo1/seoulcrawler/internal/infra/crawler/chrome"
	"github.com/LouYuanbo1/seoulcrawler/internal/infra/crawler/snapshot"
	"github.com/LouYuanbo1/seoulcrawler/internal/infra/crawler/wait"
	"github.com/LouYuanbo1/seoulcrawler/param"
	"go.uber.org/zap"
)

// Service runs one category pass per configured category, strictly in order,
// on a single shared session.
type Service struct {
	pass   *param.RestaurantPass
	render wait.Policy
	logger *zap.Logger
}

func InitService(pass *param.RestaurantPass, render wait.Policy, logger *zap.Logger) *Service {
	return &Service{pass: pass, render: render, logger: logger}
}

// CategoryURL builds the list page URL for "<region> <category>".
func (s *Service) CategoryURL(category string) string {
	query := url.QueryEscape(s.pass.Region + " " + category)
	return s.pass.BaseURL + "?query=" + strings.ReplaceAll(query, "+", "%20")
}

// Run returns every record harvested before a fatal error together with that error.
func (s *Service) Run(ctx context.Context, session chrome.Session) (entity.Harvest[entity.Restaurant], error) {
	var harvest entity.Harvest[entity.Restaurant]
	for _, category := range s.pass.Categories {
		if err := ctx.Err(); err != nil {
			return harvest, err
		}
		records, skips, err := s.crawlCategory(ctx, session, category)
		harvest.Skip(skips...)
		if err != nil {
			if errors.Is(err, entity.ErrSessionFailure) || ctx.Err() != nil {
				return harvest, err
			}
			s.logger.Warn("category abandoned", zap.String("category", category), zap.Error(err))
			harvest.Skip(entity.Skip{Scope: entity.ScopeCategory, Category: category, Page: 1, Err: err})
			continue
		}
		s.logger.Info("category done",
			zap.String("category", category),
			zap.Int("records", len(records)),
			zap.Int("skipped", len(skips)))
		harvest.Add(records...)
	}
	return harvest, nil
}

func (s *Service) crawlCategory(ctx context.Context, session chrome.Session, category string) ([]entity.Restaurant, []entity.Skip, error) {
	target := s.CategoryURL(category)
	s.logger.Debug("navigate", zap.String("category", category), zap.String("url", target))
	if err := session.Navigate(target); err != nil {
		return nil, nil, fmt.Errorf("navigate %s: %w", category, err)
	}
	if err := s.render.Wait(ctx, session); err != nil {
		if !errors.Is(err, entity.ErrRenderTimeout) {
			return nil, nil, fmt.Errorf("render wait %s: %w", category, err)
		}
		// nothing rendered in time; the snapshot decides whether anything is usable
		s.logger.Warn("render wait timed out", zap.String("category", category))
	}

	html, err := session.HTML()
	if err != nil {
		return nil, nil, fmt.Errorf("snapshot %s: %w", category, err)
	}
	doc, err := snapshot.Parse(html)
	if err != nil {
		return nil, nil, fmt.Errorf("snapshot %s: %w", category, err)
	}

	cards := doc.FindFirst(s.pass.CardSelectors...)
	markers := doc.Find(s.pass.MarkerSelector)
	if len(cards) == 0 {
		s.logger.Info("no cards found", zap.String("category", category))
		s.logger.Debug("page classes", zap.String("category", category), zap.Strings("classes", doc.Classes(20)))
		return nil, nil, nil
	}
	s.logger.Debug("snapshot parsed",
		zap.String("category", category),
		zap.Int("cards", len(cards)),
		zap.Int("markers", len(markers)))

	records, skips := Reconcile(category, cards, markers, s.pass)
	for _, skip := range skips {
		s.logger.Warn("skipped",
			zap.String("category", category),
			zap.String("scope", string(skip.Scope)),
			zap.Int("index", skip.Index),
			zap.String("reason", skip.Reason()),
			zap.Error(skip.Err))
	}
	return records, skips, nil
}
