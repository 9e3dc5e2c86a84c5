package main

import (
	"context"
	_ "embed"
	"errors"
	"io/fs"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/LouYuanbo1/seoulcrawler/internal/config"
	"github.com/LouYuanbo1/seoulcrawler/internal/domain/entity"
	"github.com/LouYuanbo1/seoulcrawler/internal/domain/model"
	"github.com/LouYuanbo1/seoulcrawler/internal/infra/crawler/chrome"
	"github.com/LouYuanbo1/seoulcrawler/internal/infra/crawler/wait"
	"github.com/LouYuanbo1/seoulcrawler/internal/infra/logger"
	"github.com/LouYuanbo1/seoulcrawler/internal/infra/persistence/csv"
	"github.com/LouYuanbo1/seoulcrawler/internal/infra/persistence/es"
	"github.com/LouYuanbo1/seoulcrawler/internal/service/pipeline"
	"github.com/LouYuanbo1/seoulcrawler/internal/service/restaurant"
	"github.com/LouYuanbo1/seoulcrawler/param"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

//使用go:embed嵌入appconfig.json文件,下方注释不能删除
//go:embed appconfig/appconfig.json
var appConfig []byte

func main() {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		log.Fatalf("加载.env失败: %v", err)
	}
	appcfg, err := config.ParseConfig(appConfig)
	if err != nil {
		log.Fatalf("解析配置失败: %v", err)
	}
	zl, err := logger.New(appcfg)
	if err != nil {
		log.Fatalf("初始化日志失败: %v", err)
	}
	defer zl.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, appcfg, zl); err != nil {
		zl.Error("restaurant crawl failed", zap.Error(err))
		zl.Sync()
		os.Exit(1)
	}
}

func run(ctx context.Context, appcfg *config.Config, zl *zap.Logger) error {
	sinks := []pipeline.Sink[entity.Restaurant]{
		csv.NewRestaurantWriter(filepath.Join(appcfg.Output.Dir, appcfg.Restaurant.OutputFile)),
	}
	if appcfg.Elasticsearch.Enabled {
		client, err := es.InitTypedEsClient[*model.RestaurantDoc](appcfg, zl)
		if err != nil {
			return err
		}
		sinks = append(sinks, es.NewSink[entity.Restaurant, *model.RestaurantDoc](client, nil, zl))
	}

	svc := restaurant.InitService(
		param.NewRestaurantPass(&appcfg.Restaurant),
		wait.FromConfig(appcfg.Restaurant.RenderWait, wait.RealClock()),
		zl,
	)
	open := func(ctx context.Context) (chrome.Session, error) {
		return chrome.Open(ctx, appcfg)
	}

	harvest, err := pipeline.Run[entity.Restaurant](ctx, open, svc.Run, sinks...)
	pipeline.LogSummary(zl, harvest, func(r entity.Restaurant) string { return r.Category })
	return err
}
