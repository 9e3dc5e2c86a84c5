package config

var defaultCategories = []string{
	"한식", "중식", "일식", "양식", "아시안", "해산물", "치킨", "피자", "버거", "도시락",
	"샐러드", "샌드위치", "맥시칸", "채식", "분식", "카페", "디저트", "베이커리", "간식", "죽",
}

func orString(v *string, def string) {
	if *v == "" {
		*v = def
	}
}

// newConfig carries the numeric defaults. The file is decoded over it, so a
// key set to 0 stays 0 and only missing keys keep the default.
func newConfig() Config {
	var c Config
	c.Chromedp.LifeTime = 3600
	c.Embedder.BatchSize = 16
	c.Restaurant.RenderWait.StandardMillis = 3000
	c.Restaurant.RenderWait.TimeoutMillis = 10000
	c.Faq.LoadSettleMillis = 3000
	c.Faq.CategorySettleMillis = 2000
	c.Faq.ScrollSettleMillis = 300
	c.Faq.RevealSettleMillis = 500
	c.Faq.PageSettleMillis = 2000
	c.Faq.ItemTimeoutMillis = 10000
	return c
}

// applyDefaults fills empty strings and lists after decoding.
func (c *Config) applyDefaults() {
	orString(&c.Browser.Driver, DriverRod)
	orString(&c.Log.Level, "info")
	orString(&c.Output.Dir, "data")

	r := &c.Restaurant
	orString(&r.BaseURL, "https://www.diningcode.com/list.dc")
	orString(&r.Region, "서울")
	if len(r.Categories) == 0 {
		r.Categories = append([]string(nil), defaultCategories...)
	}
	if len(r.CardSelectors) == 0 {
		r.CardSelectors = []string{"div.Poi__List__Wrap", ".Poi__List__Wrap"}
	}
	orString(&r.MarkerSelector, "a.Marker")
	orString(&r.TitleSelector, "h2")
	orString(&r.ScoreSelector, ".score-text")
	orString(&r.CountSelector, ".count-text")
	orString(&r.LatAttr, "data-lat")
	orString(&r.LngAttr, "data-lng")
	orString(&r.RenderWait.Mode, RenderWaitFixed)
	orString(&r.RenderWait.Selector, r.CardSelectors[0])
	orString(&r.OutputFile, "seoul_restaurant.csv")

	f := &c.Faq
	orString(&f.URL, "https://korean.visitseoul.net/faq")
	orString(&f.CategorySelector, "div.tag-element--faq a")
	if f.ExcludedCategories == nil {
		f.ExcludedCategories = []string{"전체"}
	}
	orString(&f.ItemSelector, "div.faq-list-cont")
	orString(&f.QuestionSelector, "span.text-cont")
	orString(&f.RevealSelector, "div.faq-q a")
	orString(&f.AnswerSelector, "div.faq-a")
	orString(&f.PagingSelector, "div.paging-lst a")
	orString(&f.CurrentClass, "on")
	orString(&f.AnswerPrefix, "A.")
	orString(&f.AnswerMarker, "(답변 아이콘)")
	orString(&f.OutputFile, "seoul_faq.csv")
}
