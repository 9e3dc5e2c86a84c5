package param

import (
	"time"

	"github.com/LouYuanbo1/seoulcrawler/internal/config"
)

// RestaurantPass 餐厅类别爬取参数: selectors and text-shape contract of the
// category list page.
type RestaurantPass struct {
	BaseURL        string
	Region         string
	Categories     []string
	CardSelectors  []string
	MarkerSelector string
	TitleSelector  string
	ScoreSelector  string
	CountSelector  string
	LatAttr        string
	LngAttr        string
}

func NewRestaurantPass(cfg *config.Restaurant) *RestaurantPass {
	return &RestaurantPass{
		BaseURL:        cfg.BaseURL,
		Region:         cfg.Region,
		Categories:     cfg.Categories,
		CardSelectors:  cfg.CardSelectors,
		MarkerSelector: cfg.MarkerSelector,
		TitleSelector:  cfg.TitleSelector,
		ScoreSelector:  cfg.ScoreSelector,
		CountSelector:  cfg.CountSelector,
		LatAttr:        cfg.LatAttr,
		LngAttr:        cfg.LngAttr,
	}
}

// FaqPass FAQ分页爬取参数
type FaqPass struct {
	URL                string
	CategorySelector   string
	ExcludedCategories []string
	ItemSelector       string
	QuestionSelector   string
	RevealSelector     string
	AnswerSelector     string
	PagingSelector     string
	CurrentClass       string
	AnswerPrefix       string
	AnswerMarker       string

	LoadSettle     time.Duration
	CategorySettle time.Duration
	ScrollSettle   time.Duration
	RevealSettle   time.Duration
	PageSettle     time.Duration
	ItemTimeout    time.Duration
}

func NewFaqPass(cfg *config.Faq) *FaqPass {
	return &FaqPass{
		URL:                cfg.URL,
		CategorySelector:   cfg.CategorySelector,
		ExcludedCategories: cfg.ExcludedCategories,
		ItemSelector:       cfg.ItemSelector,
		QuestionSelector:   cfg.QuestionSelector,
		RevealSelector:     cfg.RevealSelector,
		AnswerSelector:     cfg.AnswerSelector,
		PagingSelector:     cfg.PagingSelector,
		CurrentClass:       cfg.CurrentClass,
		AnswerPrefix:       cfg.AnswerPrefix,
		AnswerMarker:       cfg.AnswerMarker,
		LoadSettle:         millis(cfg.LoadSettleMillis),
		CategorySettle:     millis(cfg.CategorySettleMillis),
		ScrollSettle:       millis(cfg.ScrollSettleMillis),
		RevealSettle:       millis(cfg.RevealSettleMillis),
		PageSettle:         millis(cfg.PageSettleMillis),
		ItemTimeout:        millis(cfg.ItemTimeoutMillis),
	}
}

func millis(n int) time.Duration {
	return time.Duration(n) * time.Millisecond
}
