package entity

import (
	"github.com/LouYuanbo1/seoulcrawler/internal/domain/model"
)

// Crawlable 可爬取的实体: every record kind emitted by a pipeline converts itself
// into the document type it is indexed as.
type Crawlable[D model.Document] interface {
	Restaurant | FaqEntry
	ToDocument() D
}
